package domain

import (
	"strings"
	"time"
)

// BusinessType identifica o segmento do negócio
type BusinessType string

const (
	BusinessTypeRetail        BusinessType = "retail"
	BusinessTypeServices      BusinessType = "services"
	BusinessTypeManufacturing BusinessType = "manufacturing"
	BusinessTypeTechnology    BusinessType = "technology"
)

// BusinessTypes lista os segmentos suportados, na ordem de exibição
var BusinessTypes = []BusinessType{
	BusinessTypeRetail,
	BusinessTypeServices,
	BusinessTypeManufacturing,
	BusinessTypeTechnology,
}

func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeRetail, BusinessTypeServices, BusinessTypeManufacturing, BusinessTypeTechnology:
		return true
	}
	return false
}

// ParseBusinessType converte o valor recebido em um BusinessType conhecido
func ParseBusinessType(value string) (BusinessType, error) {
	b := BusinessType(strings.ToLower(strings.TrimSpace(value)))
	if !b.IsValid() {
		return "", NewValidationError("business_type", "unknown business type %q", value)
	}
	return b, nil
}

// TaxType identifica o regime de imposto aplicado ao registro
type TaxType string

const (
	TaxTypeService TaxType = "service_tax"
	TaxTypeProduct TaxType = "product_tax"
)

func (t TaxType) IsValid() bool {
	return t == TaxTypeService || t == TaxTypeProduct
}

// Label retorna o nome amigável usado nos textos dos insights
func (t TaxType) Label() string {
	if t == TaxTypeService {
		return "Service Tax"
	}
	return "Product Tax"
}

// UnmarshalText normaliza os aliases "service" e "product".
// Valores desconhecidos são mantidos para que Validate os rejeite.
func (t *TaxType) UnmarshalText(text []byte) error {
	*t = normalizeTaxType(string(text))
	return nil
}

func normalizeTaxType(value string) TaxType {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "service", "service_tax":
		return TaxTypeService
	case "product", "product_tax":
		return TaxTypeProduct
	}
	return TaxType(v)
}

// ParseTaxType converte o valor recebido em um TaxType conhecido
func ParseTaxType(value string) (TaxType, error) {
	t := normalizeTaxType(value)
	if !t.IsValid() {
		return "", NewValidationError("tax_type", "unknown tax type %q", value)
	}
	return t, nil
}

// RevenueEntry é o registro mensal de receitas e despesas de um negócio
type RevenueEntry struct {
	Month          string       `json:"month"`
	Revenue        float64      `json:"revenue"`
	Expenses       float64      `json:"expenses"`
	BusinessType   BusinessType `json:"business_type"`
	TaxType        TaxType      `json:"tax_type"`
	ServiceRevenue float64      `json:"service_revenue"`
	ProductRevenue float64      `json:"product_revenue"`
	CreatedAt      time.Time    `json:"created_at"`
}

// NetIncome é receita menos despesas
func (e RevenueEntry) NetIncome() float64 {
	return e.Revenue - e.Expenses
}

// Loss retorna o prejuízo do mês, zero quando o mês foi lucrativo
func (e RevenueEntry) Loss() float64 {
	if e.Expenses > e.Revenue {
		return e.Expenses - e.Revenue
	}
	return 0
}

// IsLoss indica se as despesas superaram a receita
func (e RevenueEntry) IsLoss() bool {
	return e.Revenue < e.Expenses
}

// TaxableBase seleciona a sub-receita do regime de imposto do registro,
// caindo para a receita total quando ela não foi informada.
func (e RevenueEntry) TaxableBase() float64 {
	base := e.ProductRevenue
	if e.TaxType == TaxTypeService {
		base = e.ServiceRevenue
	}
	if base == 0 {
		return e.Revenue
	}
	return base
}

// Validate verifica os campos obrigatórios e as categorias do registro
func (e RevenueEntry) Validate() error {
	if strings.TrimSpace(e.Month) == "" {
		return NewValidationError("month", "month is required")
	}
	if !e.BusinessType.IsValid() {
		return NewValidationError("business_type", "unknown business type %q", e.BusinessType)
	}
	if !e.TaxType.IsValid() {
		return NewValidationError("tax_type", "unknown tax type %q", e.TaxType)
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"revenue", e.Revenue},
		{"expenses", e.Expenses},
		{"service_revenue", e.ServiceRevenue},
		{"product_revenue", e.ProductRevenue},
	}
	for _, a := range amounts {
		if a.value < 0 {
			return NewValidationError(a.field, "must not be negative, got %v", a.value)
		}
	}

	return nil
}

// StoredRevenueEntry é um registro como persistido, com ID e origem
type StoredRevenueEntry struct {
	ID     int64  `json:"id"`
	Source string `json:"source_file"`
	RevenueEntry
}
