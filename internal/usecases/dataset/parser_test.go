package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

const jsonDataset = `[
	{"month": "2024-01", "revenue": 35000, "expenses": 32000, "business_type": "retail", "tax_type": "product_tax", "service_revenue": 5000, "product_revenue": 30000},
	{"month": "2024-02", "revenue": "28,000", "expenses": "35000.00", "business_type": "Retail", "tax_type": "product"}
]`

const csvDataset = "month,revenue,expenses,business_type,tax_type,service_revenue,product_revenue\n" +
	"2024-01,35000,32000,retail,product_tax,5000,30000\n" +
	"2024-02,\"28,000\",35000.00,Retail,product,,\n"

func TestParseJSONAndCSV_ProduceSameEntries(t *testing.T) {
	fromJSON, err := ParseJSON(strings.NewReader(jsonDataset))
	require.NoError(t, err)

	fromCSV, err := ParseCSV(strings.NewReader(csvDataset))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromCSV)
	require.Len(t, fromJSON, 2)

	assert.Equal(t, domain.RevenueEntry{
		Month:          "2024-01",
		Revenue:        35000,
		Expenses:       32000,
		BusinessType:   domain.BusinessTypeRetail,
		TaxType:        domain.TaxTypeProduct,
		ServiceRevenue: 5000,
		ProductRevenue: 30000,
	}, fromJSON[0])
	assert.Equal(t, 28000.0, fromJSON[1].Revenue)
	assert.Equal(t, domain.TaxTypeProduct, fromJSON[1].TaxType)
	assert.Zero(t, fromJSON[1].ProductRevenue)
}

func TestParse_RejectsWholeFile(t *testing.T) {
	tests := []struct {
		name       string
		parse      func() ([]domain.RevenueEntry, error)
		wantRecord int
		wantField  string
	}{
		{
			name: "json com segmento desconhecido",
			parse: func() ([]domain.RevenueEntry, error) {
				return ParseJSON(strings.NewReader(`[{"month":"2024-01","revenue":1,"expenses":1,"business_type":"retail","tax_type":"product"},{"month":"2024-02","revenue":1,"expenses":1,"business_type":"farming","tax_type":"product"}]`))
			},
			wantRecord: 2,
			wantField:  "business_type",
		},
		{
			name: "json com valor não numérico",
			parse: func() ([]domain.RevenueEntry, error) {
				return ParseJSON(strings.NewReader(`[{"month":"2024-01","revenue":"abc","expenses":1,"business_type":"retail","tax_type":"product"}]`))
			},
			wantRecord: 1,
			wantField:  "revenue",
		},
		{
			name: "csv sem mês",
			parse: func() ([]domain.RevenueEntry, error) {
				return ParseCSV(strings.NewReader("month,revenue,expenses,business_type,tax_type\n,100,50,retail,product\n"))
			},
			wantRecord: 1,
			wantField:  "month",
		},
		{
			name: "csv com despesa negativa",
			parse: func() ([]domain.RevenueEntry, error) {
				return ParseCSV(strings.NewReader("month,revenue,expenses,business_type,tax_type\n2024-01,100,50,retail,product\n2024-02,100,-5,retail,product\n"))
			},
			wantRecord: 2,
			wantField:  "expenses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := tt.parse()
			require.Error(t, err)
			assert.Nil(t, entries)
			assert.ErrorIs(t, err, ErrInvalidDataset)
			assert.ErrorIs(t, err, domain.ErrInvalidEntry)

			var recordErr *RecordError
			require.True(t, errors.As(err, &recordErr))
			assert.Equal(t, tt.wantRecord, recordErr.Record)

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`{"month": "2024-01"}`))
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "42000", want: 42000},
		{raw: " 42,000.50 ", want: 42000.5},
		{raw: "1_000", want: 1000},
		{raw: "", want: 0},
		{raw: "-10", want: -10},
		{raw: "12abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFileType(t *testing.T) {
	fileType, err := DetectFileType("Dados.JSON")
	require.NoError(t, err)
	assert.Equal(t, FileTypeJSON, fileType)

	fileType, err = DetectFileType("q1.csv")
	require.NoError(t, err)
	assert.Equal(t, FileTypeCSV, fileType)

	_, err = DetectFileType("report.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
