package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vfg2006/finance-insights-api/internal/app"
	"github.com/vfg2006/finance-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "seed <sample>",
		Short:     "Carrega um dataset de exemplo",
		Args:      cobra.ExactArgs(1),
		ValidArgs: dataset.SampleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				result, err := a.Datasets.LoadSample(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d months of %s data (%d insights)\n",
					result.RecordsLoaded, args[0], result.TotalInsightsGenerated)
				return nil
			})
		},
	}
}

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.json|file.csv>",
		Short: "Ingere um arquivo de dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd.Context(), func(a *app.App) error {
				result, err := a.Datasets.Upload(cmd.Context(), args[0], content)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d records from %s (%d insights)\n",
					result.RecordsLoaded, args[0], result.TotalInsightsGenerated)
				return nil
			})
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Mostra o resumo e as análises de lucro, prejuízo e impostos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				printJSON(cmd.OutOrStdout(), map[string]any{
					"summary": a.Insights.Summary(),
					"profit":  a.Insights.ProfitAnalysis(),
					"loss":    a.Insights.LossAnalysis(),
					"tax":     a.Insights.TaxAnalysis(),
				})
				return nil
			})
		},
	}
}

func insightsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Lista os insights mais recentes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				insights := a.Insights.LatestInsights(limit)
				if len(insights) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "(no insights yet)")
					return nil
				}
				for _, in := range insights {
					fmt.Fprintf(cmd.OutOrStdout(), "- [%s] %s: %s\n", in.Type, in.Title, in.Recommendation)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", insighting.DefaultInsightLimit, "quantidade de insights")
	return cmd
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Mostra as tabelas de impostos e benchmarks em uso",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				printJSON(cmd.OutOrStdout(), map[string]any{
					"tax_rules":  a.Insights.TaxRules(),
					"benchmarks": a.Insights.Benchmarks(),
				})
				return nil
			})
		},
	}
}

func reportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório financeiro em PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				doc, err := a.Reports.Render(cmd.Context(), a.Insights.FinancialReport(insighting.DefaultInsightLimit))
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, doc, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d bytes)\n", out, len(doc))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "financial-report.pdf", "arquivo de saída")
	return cmd
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Apaga o histórico de receitas e insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				if err := a.Insights.ClearAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
				return nil
			})
		},
	}
}
