// Package report gera o relatório financeiro em PDF.
//
// Layout da página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  Título + data de geração                    │
//	│  Resumo: receita, despesas, lucro líquido    │
//	│  Lucro | Prejuízo | Impostos                 │
//	│  Tabela: mês | imposto | alíquota | tipo     │
//	│  Insights mais recentes                      │
//	└──────────────────────────────────────────────┘
package report

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/pkg/utils"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 83, Blue: 45}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// PDFGenerator renderiza domain.FinancialReport com Maroto v2
type PDFGenerator struct {
	currency string
	printer  *message.Printer
}

func NewPDFGenerator(currencySymbol string) *PDFGenerator {
	return &PDFGenerator{
		currency: currencySymbol,
		printer:  message.NewPrinter(language.English),
	}
}

// Render gera o documento e devolve seus bytes
func (g *PDFGenerator) Render(_ context.Context, report domain.FinancialReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Financial Insights Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if report.Summary.Status == domain.StatusNoData {
		m.AddRows(text.NewRow(12, "No financial data has been ingested yet.", props.Text{
			Size: 10, Top: 4, Color: colorGray,
		}))
	} else {
		m.AddRows(g.summaryRow(report.Summary))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
		m.AddRows(g.analysisRow(report))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
		m.AddRows(sectionTitle("Monthly tax breakdown"))
		m.AddRows(taxHeaderRow())
		m.AddRows(g.taxRows(report.Tax.MonthlyBreakdown)...)
	}

	if len(report.Insights) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitle("Latest insights"))
		m.AddRows(insightRows(report.Insights)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("report: erro ao gerar pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func (g *PDFGenerator) money(amount float64) string {
	return g.currency + g.printer.Sprintf("%.2f", amount)
}

func (g *PDFGenerator) headerRow(report domain.FinancialReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Financial Insights Report", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generated at", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(report.GeneratedAt.Format("2006-01-02 15:04 MST"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func (g *PDFGenerator) summaryRow(s domain.FinancialSummary) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 7}),
		)
	}

	return row.New(16).Add(
		cell("Latest month", s.LatestMonth),
		cell("Total revenue", g.money(s.TotalRevenue)),
		cell("Total expenses", g.money(s.TotalExpenses)),
		cell("Net profit", g.money(s.NetProfit)),
	)
}

func (g *PDFGenerator) analysisRow(report domain.FinancialReport) core.Row {
	item := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Top: top})
	}
	title := func(s string, color *props.Color) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: color, Top: 1})
	}

	p, l, t := report.Profit, report.Loss, report.Tax

	return row.New(30).Add(
		col.New(4).Add(
			title("Profit", colorPrimary),
			item("Current: "+g.money(p.CurrentProfit), 7),
			item("Average: "+g.money(p.AverageProfit), 12),
			item(fmt.Sprintf("Trend: %.1f%%", p.ProfitTrend), 17),
			item("Position: "+p.CompetitivePosition, 22),
		),
		col.New(4).Add(
			title("Losses", colorLoss),
			item("Total: "+g.money(l.TotalLosses), 7),
			item(fmt.Sprintf("Loss months: %d", l.LossMonthsCount), 12),
			item("Biggest: "+g.money(l.BiggestLoss), 17),
			item(fmt.Sprintf("Risk: %s (%s)", l.RiskLevel, l.LossTrend), 22),
		),
		col.New(4).Add(
			title("Taxes", colorPrimary),
			item("Total paid: "+g.money(t.TotalTaxPaid), 7),
			item(fmt.Sprintf("Average rate: %.2f%%", t.AverageTaxRate), 12),
			item("Efficiency: "+t.TaxEfficiency, 17),
			item(fmt.Sprintf("Service/Product months: %d/%d",
				t.ServiceVsProduct.ServiceMonths, t.ServiceVsProduct.ProductMonths), 22),
		),
	)
}

func sectionTitle(title string) core.Row {
	return text.NewRow(9, title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
	})
}

func taxHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Month", 4, align.Left),
		h("Tax", 3, align.Right),
		h("Rate", 2, align.Right),
		h("Type", 3, align.Right),
	)
}

func (g *PDFGenerator) taxRows(items []domain.TaxBreakdownItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(it.Month, props.Text{Size: 8})),
			col.New(3).Add(text.New(g.money(it.TaxAmount), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(
				fmt.Sprintf("%.2f%%", utils.RoundWithTwoDecimalPlace(it.TaxRate)),
				props.Text{Size: 8, Align: align.Right},
			)),
			col.New(3).Add(text.New(it.TaxType.Label(), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func insightRows(insights []domain.Insight) []core.Row {
	rows := make([]core.Row, 0, len(insights))
	for _, in := range insights {
		rows = append(rows, row.New(20).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s (%.0f%%)", in.Title, in.Confidence*100), props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 1,
				}),
				text.New(in.Description, props.Text{Size: 8, Top: 6}),
				text.New("Recommendation: "+in.Recommendation, props.Text{
					Size: 8, Top: 12, Color: colorGray,
				}),
			),
		))
	}
	return rows
}
