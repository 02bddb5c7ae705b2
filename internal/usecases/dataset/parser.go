package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var requiredFields = []string{"month", "revenue", "expenses", "business_type", "tax_type"}

// ParseJSON lê uma lista de registros. Um registro inválido invalida o arquivo inteiro.
func ParseJSON(r io.Reader) ([]domain.RevenueEntry, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var records []map[string]any
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidDataset, err)
	}

	entries := make([]domain.RevenueEntry, 0, len(records))
	for i, record := range records {
		fields := make(map[string]string, len(record))
		for key, value := range record {
			if value == nil {
				continue
			}
			fields[strings.ToLower(strings.TrimSpace(key))] = fmt.Sprint(value)
		}

		entry, err := recordToEntry(fields)
		if err != nil {
			return nil, &RecordError{Record: i + 1, Err: err}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ParseCSV lê um CSV com cabeçalho. Colunas extras são ignoradas.
func ParseCSV(r io.Reader) ([]domain.RevenueEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", ErrInvalidDataset, err)
	}
	for i, column := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))
	}

	entries := make([]domain.RevenueEntry, 0)
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RecordError{Record: line, Err: err}
		}

		fields := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				fields[column] = row[i]
			}
		}

		entry, err := recordToEntry(fields)
		if err != nil {
			return nil, &RecordError{Record: line, Err: err}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Parse escolhe o parser pela extensão do arquivo
func Parse(fileType string, content []byte) ([]domain.RevenueEntry, error) {
	switch fileType {
	case FileTypeJSON:
		return ParseJSON(bytes.NewReader(content))
	case FileTypeCSV:
		return ParseCSV(bytes.NewReader(content))
	}
	return nil, ErrUnsupportedFormat
}

func recordToEntry(fields map[string]string) (domain.RevenueEntry, error) {
	for _, field := range requiredFields {
		if strings.TrimSpace(fields[field]) == "" {
			return domain.RevenueEntry{}, domain.NewValidationError(field, "%s is required", field)
		}
	}

	businessType, err := domain.ParseBusinessType(fields["business_type"])
	if err != nil {
		return domain.RevenueEntry{}, err
	}
	taxType, err := domain.ParseTaxType(fields["tax_type"])
	if err != nil {
		return domain.RevenueEntry{}, err
	}

	entry := domain.RevenueEntry{
		Month:        strings.TrimSpace(fields["month"]),
		BusinessType: businessType,
		TaxType:      taxType,
	}

	amounts := []struct {
		field string
		dst   *float64
	}{
		{"revenue", &entry.Revenue},
		{"expenses", &entry.Expenses},
		{"service_revenue", &entry.ServiceRevenue},
		{"product_revenue", &entry.ProductRevenue},
	}
	for _, a := range amounts {
		value, err := ParseAmount(fields[a.field])
		if err != nil {
			return domain.RevenueEntry{}, domain.NewValidationError(a.field, "%v", err)
		}
		*a.dst = value
	}

	if err := entry.Validate(); err != nil {
		return domain.RevenueEntry{}, err
	}

	return entry, nil
}

// ParseAmount aceita números com separador de milhar ("42,000.50") e vazio como zero
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}

	return d.InexactFloat64(), nil
}
