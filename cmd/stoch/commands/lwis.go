package commands

import (
	"github.com/spf13/cobra"

	"github.com/panyam/stoch/core"
	"github.com/panyam/stoch/runtime"
	"github.com/panyam/stoch/sampler"
)

var lwisCmd = &cobra.Command{
	Use:   "lwis [model]",
	Short: "Runs likelihood-weighted importance resampling over a built-in model",
	Long: `Draws a fixed number of independent evaluations of the model, then emits
a resampled stream approximating the normalized posterior. This is the
kernel-free baseline against which the MH chains can be compared.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadMergedConfig(cmd, args)
		if err != nil {
			return err
		}
		model, err := lookupModel(cfg.Model)
		if err != nil {
			return err
		}

		logger.Infof("lwis %s: particles=%d draws=%d seed=%d",
			cfg.Model, cfg.Particles, cfg.Steps, cfg.Seed)

		rs := sampler.NewLWIS(model.Build(), cfg.Particles, cfg.Seed)

		// The particle batch is the importance-weighted view, so it is
		// summarized with its weights.  The resampled stream written to
		// --out is unweighted by construction.
		particles, logWeights := rs.Particles()
		summary, err := runtime.Summarize(particles, logWeights)
		if err != nil {
			return err
		}
		printSummary(model.Name, summary)

		if cfg.Out != "" {
			values := core.Take(cfg.Steps, rs.Stream())
			if err := writeValues(cfg.Out, values); err != nil {
				return err
			}
			logger.Infof("wrote %d values to %s", len(values), cfg.Out)
		}
		return nil
	},
}

func init() {
	addRunFlags(lwisCmd)
	rootCmd.AddCommand(lwisCmd)
}
