package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/finance-insights-api/infrastructure/database"
	"github.com/vfg2006/finance-insights-api/internal/domain"
)

const insightsTable = "insights"

type InsightRepository interface {
	Save(ctx context.Context, insight domain.Insight) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Insight, error)
	DeleteByType(ctx context.Context, types []domain.InsightType) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type insightRepository struct {
	conn *database.Connection
}

func NewInsightRepository(conn *database.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) Save(ctx context.Context, insight domain.Insight) (int64, error) {
	query, args, err := r.conn.Builder().
		Insert(insightsTable).
		Columns("insight_type", "title", "description", "impact", "recommendation", "confidence", "created_at").
		Values(
			string(insight.Type),
			insight.Title,
			insight.Description,
			insight.Impact,
			insight.Recommendation,
			insight.Confidence,
			r.conn.TimeArg(insight.CreatedAt),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir insight: %w", err)
	}

	return id, nil
}

// ListRecent retorna do mais recente para o mais antigo; empates saem pelo id decrescente
func (r *insightRepository) ListRecent(ctx context.Context, limit int) ([]domain.Insight, error) {
	builder := r.conn.Builder().
		Select("insight_type", "title", "description", "impact", "recommendation", "confidence", "created_at").
		From(insightsTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]domain.Insight, 0)
	for rows.Next() {
		var (
			insight     domain.Insight
			insightType string
			createdAt   string
		)
		if err := rows.Scan(
			&insightType,
			&insight.Title,
			&insight.Description,
			&insight.Impact,
			&insight.Recommendation,
			&insight.Confidence,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}

		insight.Type = domain.InsightType(insightType)
		if insight.CreatedAt, err = database.ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("erro ao converter data do insight: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *insightRepository) DeleteByType(ctx context.Context, types []domain.InsightType) (int64, error) {
	if len(types) == 0 {
		return 0, nil
	}

	values := make([]string, 0, len(types))
	for _, t := range types {
		values = append(values, string(t))
	}

	query, args, err := r.conn.Builder().
		Delete(insightsTable).
		Where(squirrel.Eq{"insight_type": values}).
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

func (r *insightRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.conn, insightsTable)
}
