package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panyam/stoch/runtime"
)

var (
	configPath string
	logLevel   string

	logger = runtime.DefaultLogger()
)

var rootCmd = &cobra.Command{
	Use:   "stoch",
	Short: "stoch samples from probabilistic programs via MCMC",
	Long: `stoch runs general-purpose Markov Chain Monte Carlo inference over
generative models expressed as probabilistic programs. Built-in demo models
can be sampled with Metropolis-Hastings (with optional irreducible restarts)
or likelihood-weighted importance resampling, then summarized or plotted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := runtime.ParseLogLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML run config (flags override its values)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR, OFF)")
}
