package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panyam/stoch/runtime"
	"github.com/panyam/stoch/viz"
)

var plotCmd = &cobra.Command{
	Use:   "plot [model]",
	Short: "Runs a chain and writes an SVG histogram of the posterior",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadMergedConfig(cmd, args)
		if err != nil {
			return err
		}
		if cfg.Out == "" {
			return fmt.Errorf("plot requires an output file (--out)")
		}
		model, err := lookupModel(cfg.Model)
		if err != nil {
			return err
		}

		values, err := runChain(model, cfg)
		if err != nil {
			return err
		}

		// Chain samples are unweighted posterior draws; each counts 1.
		bins, err := runtime.Histogram(values, nil, cfg.Bins)
		if err != nil {
			return err
		}

		f, err := os.Create(cfg.Out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.Out, err)
		}
		defer f.Close()

		plotter := viz.NewHistogramPlotter(viz.DefaultHistogramConfig())
		if err := plotter.Render(f, bins, viz.HistogramMeta{
			Title:  fmt.Sprintf("%s posterior (%d samples)", model.Name, len(values)),
			XLabel: "value",
		}); err != nil {
			return err
		}
		logger.Infof("wrote histogram to %s", cfg.Out)
		return nil
	},
}

func init() {
	addRunFlags(plotCmd)
	rootCmd.AddCommand(plotCmd)
}
