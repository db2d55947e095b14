package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Folio   FolioConfig
	Search  SearchConfig
	Catalog CatalogConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	Institution string // encabezado de los PDF de resguardo
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el DSN construido.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig validación de tokens emitidos por el servicio de identidad.
type JWTConfig struct {
	Secret     string
	Issuer     string
	AdminRoles []string // roles con permiso de reasignar muebles
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

// FolioConfig formato y contador de los folios de resguardo.
type FolioConfig struct {
	CounterKey string // clave del contador compartido, ej. RESGUARDO
	Prefix     string // prefijo alfabético, ej. RES
	Width      int    // dígitos del consecutivo
}

// SearchConfig parámetros del omnibox.
type SearchConfig struct {
	SuggestionLimit int           // 7–10
	SettleDelay     time.Duration // espera tras la última tecla antes de reclasificar
	PageSize        int
}

// CatalogConfig carga de la instantánea de muebles.
type CatalogConfig struct {
	RefreshDelay time.Duration // coalescencia de refrescos solicitados
	BatchSize    int           // tamaño de página al leer del almacén
}

// SessionConfig límites de las sesiones de búsqueda y de resguardo en memoria.
type SessionConfig struct {
	TTL time.Duration // inactividad tras la cual la sesión expira
	Max int           // sesiones abiertas por tipo; al llenarse se descarta la menos usada
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, FOLIO_PREFIX, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "resguardos-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			Institution: getString(v, "APP_INSTITUTION", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Issuer:     getString(v, "JWT_ISSUER", "inventario"),
			AdminRoles: getList(v, "JWT_ADMIN_ROLES", []string{"admin"}),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Folio: FolioConfig{
			CounterKey: getString(v, "FOLIO_COUNTER_KEY", "RESGUARDO"),
			Prefix:     getString(v, "FOLIO_PREFIX", "RES"),
			Width:      getInt(v, "FOLIO_WIDTH", 4),
		},
		Search: SearchConfig{
			SuggestionLimit: clamp(getInt(v, "SEARCH_SUGGESTION_LIMIT", 7), 7, 10),
			SettleDelay:     time.Duration(getInt(v, "SEARCH_SETTLE_MS", 250)) * time.Millisecond,
			PageSize:        getInt(v, "SEARCH_PAGE_SIZE", 10),
		},
		Catalog: CatalogConfig{
			RefreshDelay: time.Duration(getInt(v, "CATALOG_REFRESH_MS", 500)) * time.Millisecond,
			BatchSize:    getInt(v, "CATALOG_BATCH_SIZE", 1000),
		},
		Session: SessionConfig{
			TTL: time.Duration(getInt(v, "SESSION_TTL_MIN", 120)) * time.Minute,
			Max: getInt(v, "SESSION_MAX", 5000),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getList lee una lista separada por comas.
func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	var out []string
	for _, p := range strings.Split(v.GetString(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
