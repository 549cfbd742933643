package cmd

import (
	"fmt"
	"os"

	"github.com/chrisdamba/marketsim/internal/models"
	"github.com/chrisdamba/marketsim/internal/report"
	"github.com/chrisdamba/marketsim/internal/simulator"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "marketsim",
	Short: "Simulates shoppers navigating a marketplace of stalls",
	Long: `marketsim is a CLI tool that runs a discrete-time agent-based marketplace
simulation: stationary stalls stock random subsets of a goods catalog, mobile
shoppers walk a 2-D space to fill random shopping lists, and the items-remaining
metric is aggregated across many independent paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		sim := simulator.NewSimulator(cfg)
		result := sim.Run()
		summary := report.Summarize(result)

		output, err := simulator.DetermineOutputDestination(cfg)
		if err != nil {
			return err
		}
		defer output.Close()

		if err := output.WriteMetrics(result); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		if err := output.WriteSummary(summary); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		if err := output.WriteSnapshot(sim.FirstPath); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for the run")
	rootCmd.Flags().Int("items-per-stall", 4, "Distinct items stocked by each stall")
	rootCmd.Flags().Int("shopper-count", 40, "Number of shoppers per path")
	rootCmd.Flags().Int("max-list-size", 8, "Largest shopping list a shopper can start with")
	rootCmd.Flags().Float64("walking-speed", 0.5, "Distance a shopper covers per tick")
	rootCmd.Flags().Float64("space-half-width-x", 25, "Half-width of the space along x")
	rootCmd.Flags().Float64("space-half-width-y", 25, "Half-width of the space along y")
	rootCmd.Flags().Float64("arrival-radius", 0.25, "Distance at which a shopper is at a stall")
	rootCmd.Flags().Int("max-time-steps", 200, "Ticks per path")
	rootCmd.Flags().Int("path-count", 100, "Independent paths per run")
	rootCmd.Flags().Int("workers", 1, "Worker goroutines for paths (1 = sequential)")
	rootCmd.Flags().String("output-format", "console", "Output format: console, csv, json or parquet")
	rootCmd.Flags().String("output-path", "output", "Directory for exported files")

	// flag names use dashes, config keys use underscores
	flagKeys := map[string]string{
		"seed":               "seed",
		"items_per_stall":    "items-per-stall",
		"shopper_count":      "shopper-count",
		"max_list_size":      "max-list-size",
		"walking_speed":      "walking-speed",
		"space_half_width_x": "space-half-width-x",
		"space_half_width_y": "space-half-width-y",
		"arrival_radius":     "arrival-radius",
		"max_time_steps":     "max-time-steps",
		"path_count":         "path-count",
		"workers":            "workers",
		"output_format":      "output-format",
		"output_path":        "output-path",
	}
	for key, flag := range flagKeys {
		viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
