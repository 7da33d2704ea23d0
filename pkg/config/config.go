package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Drafts DraftsConfig
	Logo   LogoConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DraftsConfig sesiones de edición y reglas de los borradores.
type DraftsConfig struct {
	SessionTTL   time.Duration
	MaxSessions  int
	NumberPrefix string
	DueDays      int
	GSTRate      decimal.Decimal
}

// LogoConfig límites del logo subido por el emisor.
type LogoConfig struct {
	MaxWidth  int
	MaxHeight int
	MaxBytes  int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DRAFT_SESSION_TTL_MINUTES, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	gst, err := getDecimal(v, "DRAFT_GST_RATE", decimal.NewFromInt(18))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "invoice-builder"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Drafts: DraftsConfig{
			SessionTTL:   time.Duration(getInt(v, "DRAFT_SESSION_TTL_MINUTES", 120)) * time.Minute,
			MaxSessions:  getInt(v, "DRAFT_MAX_SESSIONS", 10000),
			NumberPrefix: getString(v, "DRAFT_NUMBER_PREFIX", "INV"),
			DueDays:      getInt(v, "DRAFT_DUE_DAYS", 15),
			GSTRate:      gst,
		},
		Logo: LogoConfig{
			MaxWidth:  getInt(v, "LOGO_MAX_WIDTH", 400),
			MaxHeight: getInt(v, "LOGO_MAX_HEIGHT", 200),
			MaxBytes:  getInt(v, "LOGO_MAX_BYTES", 2<<20),
		},
	}

	if cfg.Drafts.SessionTTL <= 0 {
		return nil, fmt.Errorf("config: DRAFT_SESSION_TTL_MINUTES debe ser positivo")
	}
	if cfg.Drafts.MaxSessions <= 0 {
		return nil, fmt.Errorf("config: DRAFT_MAX_SESSIONS debe ser positivo")
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
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
