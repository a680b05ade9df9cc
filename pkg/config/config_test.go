package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gloor0717/a4c-backlog/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 120, cfg.JWT.Expiration, "el token expira a las 2 horas por defecto")
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, []string{"http://localhost:5173", "https://backlog.a4c.ch"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("PORT", "3000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "p@ss:word")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ,")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3000, cfg.HTTP.Port, "PORT se usa si HTTP_PORT no está definido")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://a.example,https://b.example", cfg.CORS.Origins())
	assert.Contains(t, cfg.DB.ConnectionString(), "db.internal:5432")
	assert.Contains(t, cfg.DB.ConnectionString(), "p%40ss%3Aword", "la contraseña debe ir codificada")
}

func TestLoad_HTTPPortPrevaleceSobrePort(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_DatabaseURLTienePrioridad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@remote:6543/backlog?sslmode=require")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@remote:6543/backlog?sslmode=require", cfg.DB.ConnectionString())
}

func TestValidate_SinSecretoFalla(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
