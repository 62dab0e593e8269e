package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqhypo/internal/config"
	"seqhypo/internal/container"
	"seqhypo/internal/errors"
	"seqhypo/internal/logging"
)

// cliApp carries what every subcommand needs once the root has loaded the
// environment
type cliApp struct {
	cfg    *config.Config
	logger *zap.Logger
	deps   *container.Container

	logLevel string
	jsonOut  bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errors.GetCode(err), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &cliApp{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "seqhypo",
		Short: "Reconstruct integer sequences from their midpoints and test the k+1 count formula",
		Long: `seqhypo enumerates every non-decreasing integer sequence whose pairwise
truncated averages equal a given midpoint array, and checks the hypothesis
that the number of such sequences equals k+1, where k is the smallest gap
between adjacent midpoints.

Configuration is read from the environment (and a .env file if present):
  SEQHYPO_WORKERS, SEQHYPO_PARALLEL_THRESHOLD, SEQHYPO_SAMPLE_SIZE,
  SEQHYPO_SEED, SEQHYPO_WINDOW_RADIUS, SEQHYPO_CASES_FILE,
  SEQHYPO_REPORT_XLSX, SEQHYPO_STOP_ON_FAILURE, SEQHYPO_LOG_LEVEL`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.deps.Shutdown(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides SEQHYPO_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		a.newGenerateCmd(),
		a.newDeriveCmd(),
		a.newReconstructCmd(),
		a.newEnumerateCmd(),
		a.newVerifyCmd(),
		a.newIntervalCmd(),
		a.newBatteryCmd(),
	)
	return rootCmd
}

func (a *cliApp) init() error {
	// a missing .env is normal; the process environment still applies
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Logging.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := logging.NewConsole(level)
	if err != nil {
		return err
	}
	a.logger = logger

	deps, err := container.New(cfg, logger)
	if err != nil {
		return err
	}
	a.deps = deps
	return nil
}
