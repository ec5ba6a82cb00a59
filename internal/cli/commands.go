package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/logger"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stockanalyst",
		Short: "Multi-agent stock market analysis",
		Long: `A multi-agent financial analysis system powered by Large Language Models.
Six specialist agents cover market research, financial data, technical
analysis, risk, sentiment, and portfolio strategy, coordinated behind an
HTTP API and an offline analysis CLI.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Initialize()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Serving is the default behavior.
			return runServe(config.Load())
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the analysis HTTP server",
		Long: `Start the HTTP API backing the analysis dashboard.
Example: stockanalyst serve --port 8000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().String("port", "", "Listen port (defaults to PORT env or 8000)")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [SYMBOLS...]",
		Short: "Run an offline analysis without an LLM",
		Long: `Fetch market data and news for the given symbols and render a data-driven
markdown report locally. No provider credential is required.
Example: stockanalyst analyze AAPL MSFT --type technical`,
		RunE: func(cmd *cobra.Command, args []string) error {
			analysisType, _ := cmd.Flags().GetString("type")
			timeframe, _ := cmd.Flags().GetString("timeframe")
			return runAnalyzeCommand(config.Load(), args, analysisType, timeframe)
		},
	}

	cmd.Flags().String("type", "", "Analysis type: quick, comprehensive, technical, risk, sentiment, portfolio")
	cmd.Flags().String("timeframe", "1y", "Price history window (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Multi-Agent Stock Market Analysis v2.0")
			fmt.Println("Financial Intelligence Hub backend")
		},
	}
}
