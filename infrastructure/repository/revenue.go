package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/finance-insights-api/infrastructure/database"
	"github.com/vfg2006/finance-insights-api/internal/domain"
)

const revenueTable = "revenue_data"

var revenueColumns = []string{
	"id", "month", "revenue", "expenses", "business_type", "tax_type",
	"service_revenue", "product_revenue", "source_file", "created_at",
}

type RevenueRepository interface {
	Save(ctx context.Context, entry domain.RevenueEntry, source string) (int64, error)
	ListAll(ctx context.Context) ([]domain.StoredRevenueEntry, error)
	ListBySource(ctx context.Context, source string) ([]domain.StoredRevenueEntry, error)
	DeleteLosses(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type revenueRepository struct {
	conn *database.Connection
}

func NewRevenueRepository(conn *database.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

func (r *revenueRepository) Save(ctx context.Context, entry domain.RevenueEntry, source string) (int64, error) {
	query, args, err := r.conn.Builder().
		Insert(revenueTable).
		Columns("month", "revenue", "expenses", "business_type", "tax_type",
			"service_revenue", "product_revenue", "source_file", "created_at").
		Values(
			entry.Month,
			entry.Revenue,
			entry.Expenses,
			string(entry.BusinessType),
			string(entry.TaxType),
			entry.ServiceRevenue,
			entry.ProductRevenue,
			source,
			r.conn.TimeArg(entry.CreatedAt),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir registro de receita: %w", err)
	}

	return id, nil
}

// ListAll retorna os registros em ordem de inserção
func (r *revenueRepository) ListAll(ctx context.Context) ([]domain.StoredRevenueEntry, error) {
	return r.list(ctx, r.conn.Builder().
		Select(revenueColumns...).
		From(revenueTable).
		OrderBy("id ASC"))
}

func (r *revenueRepository) ListBySource(ctx context.Context, source string) ([]domain.StoredRevenueEntry, error) {
	return r.list(ctx, r.conn.Builder().
		Select(revenueColumns...).
		From(revenueTable).
		Where(squirrel.Eq{"source_file": source}).
		OrderBy("id ASC"))
}

func (r *revenueRepository) DeleteLosses(ctx context.Context) (int64, error) {
	query, args, err := r.conn.Builder().
		Delete(revenueTable).
		Where("expenses > revenue").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *revenueRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.conn, revenueTable)
}

func (r *revenueRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.StoredRevenueEntry, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.StoredRevenueEntry, 0)
	for rows.Next() {
		entry, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de receita: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func scanRevenue(rows *sql.Rows) (domain.StoredRevenueEntry, error) {
	var (
		entry        domain.StoredRevenueEntry
		businessType string
		taxType      string
		createdAt    string
	)

	err := rows.Scan(
		&entry.ID,
		&entry.Month,
		&entry.Revenue,
		&entry.Expenses,
		&businessType,
		&taxType,
		&entry.ServiceRevenue,
		&entry.ProductRevenue,
		&entry.Source,
		&createdAt,
	)
	if err != nil {
		return entry, err
	}

	entry.BusinessType = domain.BusinessType(businessType)
	if entry.TaxType, err = domain.ParseTaxType(taxType); err != nil {
		return entry, err
	}

	if entry.CreatedAt, err = database.ParseTime(createdAt); err != nil {
		return entry, err
	}

	return entry, nil
}

func count(ctx context.Context, conn *database.Connection, table string) (int64, error) {
	query, args, err := conn.Builder().
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de %s: %w", table, err)
	}

	return total, nil
}
