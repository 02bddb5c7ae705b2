package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "financial_data.db", cfg.Database.DSN)
	assert.Equal(t, "₹", cfg.App.CurrencySymbol)
	assert.Equal(t, 50, cfg.App.InsightHistoryLimit)
	assert.False(t, cfg.App.ClearOnStartup)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.False(t, cfg.HistoryResync.Enabled)
	assert.Equal(t, "8000", cfg.Server.Port)
}

func TestNewConfig_Environment(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_USER", "finance")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/finance")
	t.Setenv("CORS_ORIGINS", "http://a.local,http://b.local")
	t.Setenv("CLEAR_ON_STARTUP", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://finance:secret@db:5432/finance", cfg.Database.DSN)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.App.CORSOrigins)
	assert.True(t, cfg.App.ClearOnStartup)
}

func TestNewConfig_UnknownDriver(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := NewConfig()
	assert.Error(t, err)
}
