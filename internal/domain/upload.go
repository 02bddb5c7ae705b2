package domain

import "time"

// FileUpload registra um arquivo de dataset processado
type FileUpload struct {
	ID                string    `json:"id"`
	Filename          string    `json:"filename"`
	FileType          string    `json:"file_type"`
	RecordsCount      int       `json:"records_count"`
	InsightsGenerated int       `json:"insights_generated"`
	UploadedAt        time.Time `json:"upload_date"`
}

// UploadResult resume a ingestão de um lote de registros
type UploadResult struct {
	Source                 string `json:"source"`
	RecordsLoaded          int    `json:"records_loaded"`
	TotalInsightsGenerated int    `json:"total_insights_generated"`
}

// DatabaseInfo descreve o banco em uso e a quantidade de registros por tabela
type DatabaseInfo struct {
	Driver         string `json:"driver"`
	Path           string `json:"database_path,omitempty"`
	FileSizeBytes  int64  `json:"file_size_bytes,omitempty"`
	RevenueRecords int64  `json:"revenue_records"`
	InsightRecords int64  `json:"insights_records"`
	FileUploads    int64  `json:"file_uploads"`
}
