// Package database abre a conexão SQL do repositório e esconde as diferenças
// entre SQLite e Postgres (placeholders, formato de timestamps e DDL).
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/vfg2006/finance-insights-api/internal/config"
)

// sqliteTimeLayout tem largura fixa para que a ordenação textual siga a cronológica
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Conn interface {
	Dialect() string
	Builder() squirrel.StatementBuilderType
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
	dialect string
}

var _ Conn = (*Connection)(nil)

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		// uma única conexão mantém o banco ":memory:" compartilhado e serializa as escritas
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, dialect: cfg.Driver}, nil
}

// NewSQLite abre um banco SQLite no caminho informado e aplica o schema
func NewSQLite(ctx context.Context, path string) (*Connection, error) {
	conn, err := NewConnection(ctx, config.Database{Driver: config.DriverSQLite, DSN: path})
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Dialect() string {
	return c.dialect
}

// Builder retorna o builder do squirrel com o placeholder do dialeto
func (c *Connection) Builder() squirrel.StatementBuilderType {
	if c.dialect == config.DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// TimeArg converte um timestamp para o formato gravado pelo dialeto
func (c *Connection) TimeArg(t time.Time) any {
	if c.dialect == config.DriverPostgres {
		return t.UTC()
	}
	return t.UTC().Format(sqliteTimeLayout)
}

// ParseTime lê um timestamp escaneado como texto por qualquer um dos dialetos
func ParseTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05.999999999Z07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp inválido: %q", value)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
