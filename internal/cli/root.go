// Package cli implementa o finctl, que opera sobre o mesmo banco da API.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vfg2006/finance-insights-api/internal/app"
	"github.com/vfg2006/finance-insights-api/internal/config"
	"github.com/vfg2006/finance-insights-api/pkg/log"
	"github.com/vfg2006/finance-insights-api/pkg/utils"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "finctl",
		Short:        "finctl: carga de dados e consultas do finance-insights",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := "warn"
			if debug {
				level = "debug"
			}
			return log.Setup(level)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "habilita logs detalhados")

	cmd.AddCommand(
		seedCmd(),
		uploadCmd(),
		summaryCmd(),
		insightsCmd(),
		rulesCmd(),
		reportCmd(),
		clearCmd(),
	)
	return cmd
}

// withApp carrega a configuração, monta a aplicação e a fecha ao final
func withApp(ctx context.Context, fn func(*app.App) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	a, err := app.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

func printJSON(w io.Writer, v any) {
	fmt.Fprintln(w, utils.PrettyJson(v))
}
