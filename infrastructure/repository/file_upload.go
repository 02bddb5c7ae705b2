package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/finance-insights-api/infrastructure/database"
	"github.com/vfg2006/finance-insights-api/internal/domain"
)

const fileUploadsTable = "file_uploads"

type FileUploadRepository interface {
	Save(ctx context.Context, upload domain.FileUpload) error
	List(ctx context.Context) ([]domain.FileUpload, error)
	Count(ctx context.Context) (int64, error)
}

type fileUploadRepository struct {
	conn *database.Connection
}

func NewFileUploadRepository(conn *database.Connection) FileUploadRepository {
	return &fileUploadRepository{
		conn: conn,
	}
}

func (r *fileUploadRepository) Save(ctx context.Context, upload domain.FileUpload) error {
	query, args, err := r.conn.Builder().
		Insert(fileUploadsTable).
		Columns("id", "filename", "file_type", "records_count", "insights_generated", "upload_date").
		Values(
			upload.ID,
			upload.Filename,
			upload.FileType,
			upload.RecordsCount,
			upload.InsightsGenerated,
			r.conn.TimeArg(upload.UploadedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar upload: %w", err)
	}

	return nil
}

// List retorna os uploads do mais recente para o mais antigo
func (r *fileUploadRepository) List(ctx context.Context) ([]domain.FileUpload, error) {
	query, args, err := r.conn.Builder().
		Select("id", "filename", "file_type", "records_count", "insights_generated", "upload_date").
		From(fileUploadsTable).
		OrderBy("upload_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	uploads := make([]domain.FileUpload, 0)
	for rows.Next() {
		var (
			upload     domain.FileUpload
			uploadedAt string
		)
		if err := rows.Scan(
			&upload.ID,
			&upload.Filename,
			&upload.FileType,
			&upload.RecordsCount,
			&upload.InsightsGenerated,
			&uploadedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear upload: %w", err)
		}

		if upload.UploadedAt, err = database.ParseTime(uploadedAt); err != nil {
			return nil, fmt.Errorf("erro ao converter data do upload: %w", err)
		}
		uploads = append(uploads, upload)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return uploads, nil
}

func (r *fileUploadRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.conn, fileUploadsTable)
}
