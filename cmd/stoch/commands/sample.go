package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/panyam/stoch/core"
	"github.com/panyam/stoch/runtime"
	"github.com/panyam/stoch/sampler"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [model]",
	Short: "Runs a Metropolis-Hastings chain over a built-in model",
	Long: `Runs a Metropolis-Hastings chain over one of the built-in demo models
and prints summary statistics of the thinned output. With --restart > 0 the
chain mixes in global restarts (irreducible MH). Values can be written to a
file for downstream analysis.`,
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

		logger.Infof("sampling %s: steps=%d burnin=%d thin=%d p=%.3f q=%.3f seed=%d",
			cfg.Model, cfg.Steps, cfg.BurnIn, cfg.Thin, cfg.Mutation, cfg.Restart, cfg.Seed)

		values, err := runChain(model, cfg)
		if err != nil {
			return err
		}

		summary, err := runtime.UnweightedSummary(values)
		if err != nil {
			return err
		}
		printSummary(model.Name, summary)

		if cfg.Out != "" {
			if err := writeValues(cfg.Out, values); err != nil {
				return err
			}
			logger.Infof("wrote %d values to %s", len(values), cfg.Out)
		}
		return nil
	},
}

// runChain draws the thinned, burned-in value batch from an MH chain
// over the model.  Chain output already follows the normalized
// posterior: the likelihood was consumed by the accept step, so the
// batch is used unweighted.  Reweighting it by the emitted log-weights
// would square the density.
func runChain(model builtinModel, cfg RunConfig) ([]float64, error) {
	chain := sampler.NewMH(model.Build(), sampler.Options{
		P:        cfg.Mutation,
		RestartQ: cfg.Restart,
		Seed:     cfg.Seed,
	})
	stream := core.Every(cfg.Thin, core.Drop(cfg.BurnIn, chain.Stream()))

	kept := cfg.Steps / cfg.Thin
	if kept == 0 {
		return nil, fmt.Errorf("steps=%d with thin=%d keeps no samples", cfg.Steps, cfg.Thin)
	}
	batch := core.Take(kept, stream)

	values := make([]float64, len(batch))
	for i, s := range batch {
		values[i] = s.Value
	}
	return values, nil
}

func printSummary(name string, s runtime.Summary) {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%s: %d samples\n", name, s.Count)
	fmt.Printf("  mean   %12.6f\n", s.Mean)
	fmt.Printf("  stddev %12.6f\n", s.StdDev)
	fmt.Printf("  min    %12.6f\n", s.Min)
	fmt.Printf("  p05    %12.6f\n", s.P05)
	fmt.Printf("  p50    %12.6f\n", s.P50)
	fmt.Printf("  p95    %12.6f\n", s.P95)
	fmt.Printf("  max    %12.6f\n", s.Max)
}

func writeValues(path string, values []float64) error {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%g\n", v)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// loadMergedConfig loads the YAML config (if any) and applies flag
// overrides plus the optional positional model name.
func loadMergedConfig(cmd *cobra.Command, args []string) (RunConfig, error) {
	cfg, err := LoadRunConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if len(args) > 0 {
		cfg.Model = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Steps, _ = flags.GetInt("steps")
	}
	if flags.Changed("burnin") {
		cfg.BurnIn, _ = flags.GetInt("burnin")
	}
	if flags.Changed("thin") {
		cfg.Thin, _ = flags.GetInt("thin")
	}
	if flags.Changed("mutation") {
		cfg.Mutation, _ = flags.GetFloat64("mutation")
	}
	if flags.Changed("restart") {
		cfg.Restart, _ = flags.GetFloat64("restart")
	}
	if flags.Changed("particles") {
		cfg.Particles, _ = flags.GetInt("particles")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("bins") {
		cfg.Bins, _ = flags.GetInt("bins")
	}
	if flags.Changed("out") {
		cfg.Out, _ = flags.GetString("out")
	}
	return cfg, nil
}

func addRunFlags(cmd *cobra.Command) {
	d := DefaultRunConfig()
	cmd.Flags().Int("steps", d.Steps, "Number of chain steps to draw (after burn-in)")
	cmd.Flags().Int("burnin", d.BurnIn, "Steps to discard before keeping samples")
	cmd.Flags().Int("thin", d.Thin, "Keep every nth sample")
	cmd.Flags().Float64("mutation", d.Mutation, "Per-site tree mutation probability p")
	cmd.Flags().Float64("restart", d.Restart, "Global restart probability q (0 disables)")
	cmd.Flags().Int("particles", d.Particles, "Independent draws for LWIS")
	cmd.Flags().Uint64("seed", d.Seed, "RNG seed; same seed reproduces the run")
	cmd.Flags().Int("bins", d.Bins, "Histogram bin count")
	cmd.Flags().StringP("out", "o", "", "Output file path")
}

func init() {
	addRunFlags(sampleCmd)
	rootCmd.AddCommand(sampleCmd)
}
