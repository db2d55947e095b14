package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Resguardos-api/pkg/config"
)

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, []string{"admin"}, cfg.JWT.AdminRoles)
	assert.Equal(t, "RESGUARDO", cfg.Folio.CounterKey)
	assert.Equal(t, "RES", cfg.Folio.Prefix)
	assert.Equal(t, 4, cfg.Folio.Width)
	assert.Equal(t, 7, cfg.Search.SuggestionLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.SettleDelay)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5000, cfg.Session.Max)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ADMIN_ROLES", " admin , inventarios ,")
	t.Setenv("FOLIO_PREFIX", "RSG")
	t.Setenv("FOLIO_WIDTH", "6")
	t.Setenv("SEARCH_SUGGESTION_LIMIT", "25")
	t.Setenv("SEARCH_SETTLE_MS", "100")
	t.Setenv("CATALOG_BATCH_SIZE", "no-es-numero")
	t.Setenv("APP_INSTITUTION", "Instituto Estatal")
	t.Setenv("SESSION_TTL_MIN", "30")
	t.Setenv("SESSION_MAX", "200")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "inventarios"}, cfg.JWT.AdminRoles)
	assert.Equal(t, "RSG", cfg.Folio.Prefix)
	assert.Equal(t, 6, cfg.Folio.Width)
	assert.Equal(t, 10, cfg.Search.SuggestionLimit, "el tope de sugerencias se acota a 7–10")
	assert.Equal(t, 100*time.Millisecond, cfg.Search.SettleDelay)
	assert.Equal(t, 1000, cfg.Catalog.BatchSize, "un entero inválido cae al valor por defecto")
	assert.Equal(t, "Instituto Estatal", cfg.App.Institution)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 200, cfg.Session.Max)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
