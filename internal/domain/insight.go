package domain

import "time"

type InsightType string

const (
	InsightTypeTax         InsightType = "tax_analysis"
	InsightTypeTrend       InsightType = "trend_analysis"
	InsightTypeCompetitive InsightType = "competitive_analysis"
)

// Insight é o resultado de uma análise disparada pela ingestão de um registro
type Insight struct {
	Type           InsightType `json:"insight_type"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Impact         string      `json:"impact"`
	Recommendation string      `json:"recommendation"`
	Confidence     float64     `json:"confidence"`
	CreatedAt      time.Time   `json:"timestamp"`
}
