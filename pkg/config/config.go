package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del terminal (lectura vía Viper desde env y
// opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	POS     POSConfig
	Sandbox SandboxConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig acceso al backend de ventas.
type APIConfig struct {
	BaseURL        string // ej. https://api.tienda.example.com
	Token          string // bearer token opaco; se reenvía tal cual
	TimeoutSeconds int    // timeout por llamada (crear venta, detalle, catálogo)
}

// Timeout devuelve el timeout por llamada como duración.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// POSConfig contexto de la sesión de venta.
type POSConfig struct {
	StoreID    int64
	CashierID  int64
	DebounceMS int // espera tras la última tecla antes de consultar catálogo
}

// Debounce devuelve el intervalo de debounce de búsqueda.
func (c POSConfig) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// SandboxConfig servidor sandbox local (backend de desarrollo en memoria).
type SandboxConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c SandboxConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: POS_API_BASE_URL,
// POS_STORE_ID, POS_CASHIER_ID, etc.
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
			Name: getString(v, "APP_NAME", "pos-terminal"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "POS_API_BASE_URL", "http://localhost:8080"),
			Token:          getString(v, "POS_API_TOKEN", ""),
			TimeoutSeconds: getInt(v, "POS_HTTP_TIMEOUT_SECONDS", 10),
		},
		POS: POSConfig{
			StoreID:    getInt64(v, "POS_STORE_ID", 0),
			CashierID:  getInt64(v, "POS_CASHIER_ID", 0),
			DebounceMS: getInt(v, "POS_DEBOUNCE_MS", 300),
		},
		Sandbox: SandboxConfig{
			Host: getString(v, "SANDBOX_HOST", "0.0.0.0"),
			Port: getInt(v, "SANDBOX_PORT", 8080),
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

func getInt64(v *viper.Viper, key string, def int64) int64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.ParseInt(v.GetString(key), 10, 64)
			return n
		default:
			return v.GetInt64(key)
		}
	}
	return def
}
