package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración que la aplicación anfitriona le inyecta al
// motor y a sus colaboradores (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	AFIP   AFIPConfig
	API    APIConfig
	Engine EngineConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// AFIPConfig contexto de facturación electrónica AFIP (Argentina).
// El motor no llama a los webservices: estos valores identifican el ambiente
// y el contribuyente para la capa colaboradora que sí lo hace.
type AFIPConfig struct {
	Environment string // "1" = Producción, "2" = Homologación
	CUIT        string // CUIT del contribuyente emisor
	PointOfSale int    // Punto de venta habilitado
}

// APIConfig API remota de comprobantes y pagos (colaborador externo).
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// EngineConfig parámetros propios del motor de cálculo.
type EngineConfig struct {
	BaseCurrency string // moneda por defecto para comprobantes sin moneda reconocible
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, AFIP_CUIT, API_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "payto-engine"),
		},
		AFIP: AFIPConfig{
			Environment: getString(v, "AFIP_ENVIRONMENT", "2"),
			CUIT:        getString(v, "AFIP_CUIT", ""),
			PointOfSale: getInt(v, "AFIP_POINT_OF_SALE", 1),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", ""),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
		},
		Engine: EngineConfig{
			BaseCurrency: getString(v, "ENGINE_BASE_CURRENCY", "ARS"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
