package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/awhite/tasktally/internal/config"
	"github.com/awhite/tasktally/internal/ledger"
	"github.com/awhite/tasktally/internal/logger"
	"github.com/awhite/tasktally/internal/report"
)

// --- Cobra Command Definitions ---

var (
	// Used for flags.
	configPath string
	logLevel   string
	logJSON    bool
	reportDir  string
	writeXLSX  bool

	cfg *config.Config

	// rootCmd represents the base command; it runs the summarize pipeline.
	rootCmd = &cobra.Command{
		Use:   "tasktally <task-file>",
		Short: "Summarize hours from a plain-text task log.",
		Long: `TaskTally reads a plain-text task log, extracts time-duration markers
(e.g. "2h", "1.5 hours", "30m") from each line, and writes a summary report
with per-task hours and a grand total.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel, logJSON)
			loaded, err := config.Load(configPath)
			if err != nil {
				logger.Global().Error().Err(err).Str("path", configPath).Msg("failed to load config")
				os.Exit(1)
			}
			cfg = loaded
		},
		Run: runSummarizeCommand,
	}
)

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Errors from commands are logged before exiting.
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all subcommands.
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "Path to the YAML config file.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error).")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON instead of console output.")

	// Local flags for the root summarize pipeline.
	rootCmd.Flags().StringVar(&reportDir, "report-dir", "", `Output directory for the report (default "Report").`)
	rootCmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "Also write summary.xlsx next to summary.md.")

	rootCmd.AddCommand(rangeCmd)
}

// --- Main Application Entry Point ---

func main() {
	Execute()
}

// --- Command Execution Logic ---

func runSummarizeCommand(cmd *cobra.Command, args []string) {
	log := logger.Global().With().Str("run_id", uuid.NewString()).Logger()

	taskFile := args[0]
	dir := reportDir
	if dir == "" {
		dir = cfg.ReportDir
	}

	rep, err := ledger.Load(taskFile)
	if err != nil {
		log.Error().Err(err).Str("path", taskFile).Msg("failed to load task file")
		os.Exit(1)
	}

	path, err := report.WriteMarkdown(rep, dir)
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to write report")
		os.Exit(1)
	}

	if writeXLSX {
		if _, err := report.WriteExcel(rep, dir); err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("failed to write spreadsheet report")
			os.Exit(1)
		}
	}

	cmd.Printf("Report saved to: %s\n", path)
	cmd.Printf("Total hours: %.1f\n", rep.Total)
}
