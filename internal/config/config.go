package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Rules         Rules         `mapstructure:",squash"`
	HistoryResync HistoryResync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Path     string `mapstructure:"database_path"`
}

type App struct {
	LogLevel            string   `mapstructure:"log_level"`
	CurrencySymbol      string   `mapstructure:"currency_symbol"`
	ClearOnStartup      bool     `mapstructure:"clear_on_startup"`
	InsightHistoryLimit int      `mapstructure:"insight_history_limit"`
	UploadMaxBytes      int64    `mapstructure:"upload_max_bytes"`
	CORSOrigins         []string `mapstructure:"cors_origins"`
}

type Rules struct {
	// File é um YAML opcional que substitui as tabelas de impostos e benchmarks
	File string `mapstructure:"rules_file"`
}

type HistoryResync struct {
	CronSchedule string `mapstructure:"history_resync_cron"`
	Enabled      bool   `mapstructure:"history_resync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_PATH", "financial_data.db")
	viper.SetDefault("DATABASE_URL", "localhost:5432/finance?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CURRENCY_SYMBOL", "₹")
	viper.SetDefault("CLEAR_ON_STARTUP", false)
	viper.SetDefault("INSIGHT_HISTORY_LIMIT", 50)
	viper.SetDefault("UPLOAD_MAX_BYTES", 10<<20) // 10 MB
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.SetDefault("RULES_FILE", "")

	viper.SetDefault("HISTORY_RESYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("HISTORY_RESYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Database.resolveDSN(); err != nil {
		return nil, err
	}

	return config, nil
}

func (d *Database) resolveDSN() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))

	switch d.Driver {
	case DriverSQLite:
		d.DSN = d.Path
	case DriverPostgres:
		d.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			d.Driver,
			d.User,
			d.Password,
			d.URL,
		)
	default:
		return fmt.Errorf("driver de banco não suportado: %q", d.Driver)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
