package billing

import (
	"context"

	"github.com/alefeas/payto-engine/internal/application/dto"
)

// PaymentGateway puerto hacia la API remota de pagos. El motor arma el cuerpo
// de cada pago; el transporte (HTTP, cola, etc.) es responsabilidad de la
// implementación anfitriona.
type PaymentGateway interface {
	SendPayment(ctx context.Context, req dto.PaymentRequest) error
}
