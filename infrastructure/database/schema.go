package database

import (
	"context"
	"fmt"

	"github.com/vfg2006/finance-insights-api/internal/config"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS revenue_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		month TEXT NOT NULL,
		revenue REAL NOT NULL,
		expenses REAL NOT NULL,
		business_type TEXT NOT NULL,
		tax_type TEXT NOT NULL,
		service_revenue REAL NOT NULL DEFAULT 0,
		product_revenue REAL NOT NULL DEFAULT 0,
		source_file TEXT NOT NULL DEFAULT 'manual',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS insights (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		insight_type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		impact TEXT NOT NULL,
		recommendation TEXT NOT NULL,
		confidence REAL NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS file_uploads (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		file_type TEXT NOT NULL,
		records_count INTEGER NOT NULL,
		insights_generated INTEGER NOT NULL,
		upload_date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_revenue_data_source ON revenue_data (source_file)`,
	`CREATE INDEX IF NOT EXISTS idx_insights_created_at ON insights (created_at)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS revenue_data (
		id BIGSERIAL PRIMARY KEY,
		month TEXT NOT NULL,
		revenue DOUBLE PRECISION NOT NULL,
		expenses DOUBLE PRECISION NOT NULL,
		business_type TEXT NOT NULL,
		tax_type TEXT NOT NULL,
		service_revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
		product_revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
		source_file TEXT NOT NULL DEFAULT 'manual',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS insights (
		id BIGSERIAL PRIMARY KEY,
		insight_type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		impact TEXT NOT NULL,
		recommendation TEXT NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS file_uploads (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		file_type TEXT NOT NULL,
		records_count INTEGER NOT NULL,
		insights_generated INTEGER NOT NULL,
		upload_date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_revenue_data_source ON revenue_data (source_file)`,
	`CREATE INDEX IF NOT EXISTS idx_insights_created_at ON insights (created_at)`,
}

// Migrate cria as tabelas que ainda não existem
func Migrate(ctx context.Context, conn *Connection) error {
	statements := sqliteSchema
	if conn.Dialect() == config.DriverPostgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar schema: %w", err)
		}
	}

	return nil
}
