package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/fieldtint/internal/analysis"
	"github.com/ironsheep/fieldtint/internal/imaging"
)

var statsJSONPath string

var statsCmd = &cobra.Command{
	Use:   "stats <frame>...",
	Short: "Compute per-pixel statistics over a frame sequence",
	Long: `Extracts a feature vector (R, G, B, vector magnitude) from every pixel
of every frame and computes per-pixel mean, standard deviation, and z-scores
across time. Frames must share dimensions and are given in time order.
With --json, the full per-pixel statistics are written to a file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsJSONPath, "json", "", "Optional path to write full statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	frames := make([]*imaging.Image, 0, len(args))
	for _, path := range args {
		img, err := imaging.Load(path)
		if err != nil {
			return err
		}
		frames = append(frames, img)
	}

	stats, err := analysis.TimeSeries(frames)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzed %d frames of %dx%d pixels (%d features per pixel)\n",
		stats.Frames, stats.Width, stats.Height, analysis.FeaturesPerPixel)

	if statsJSONPath != "" {
		f, err := os.Create(statsJSONPath)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", statsJSONPath, err)
		}
		defer f.Close()

		enc := json.NewEncoder(f)
		if err := enc.Encode(stats); err != nil {
			return fmt.Errorf("failed to write statistics: %w", err)
		}
		fmt.Printf("Wrote statistics to %s\n", statsJSONPath)
	}
	return nil
}
