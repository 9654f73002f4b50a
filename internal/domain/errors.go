package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado       = errors.New("recurso no encontrado")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrValidacion         = errors.New("validación fallida")
	ErrMonedaDistinta     = errors.New("las monedas no coinciden")
	ErrSaldoInconsistente = errors.New("saldo pendiente inconsistente")
	ErrSinSaldoPendiente  = errors.New("el comprobante no tiene saldo pendiente")
)
