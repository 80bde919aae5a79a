package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/fieldtint/internal/analysis"
	"github.com/ironsheep/fieldtint/internal/imaging"
)

var (
	diffPathA   string
	diffPathB   string
	diffOutPath string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compute a per-pixel color-difference map between two images",
	Long: `Computes the Euclidean RGB distance between corresponding pixels of two
equally sized images and prints aggregate statistics. With --out, also
writes a grayscale map scaled so the largest difference is white.`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffPathA, "a", "", "First image path (required)")
	diffCmd.Flags().StringVar(&diffPathB, "b", "", "Second image path (required)")
	diffCmd.Flags().StringVar(&diffOutPath, "out", "", "Optional grayscale difference map output path")

	diffCmd.MarkFlagRequired("a")
	diffCmd.MarkFlagRequired("b")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	imgA, err := imaging.Load(diffPathA)
	if err != nil {
		return err
	}
	imgB, err := imaging.Load(diffPathB)
	if err != nil {
		return err
	}

	m, err := analysis.ColorDifference(imgA, imgB)
	if err != nil {
		return err
	}

	s := m.Summary()
	fmt.Printf("Compared %dx%d pixels: min=%.4f max=%.4f mean=%.4f\n",
		s.Width, s.Height, s.Min, s.Max, s.Mean)

	if diffOutPath != "" {
		if err := m.SaveGrayscale(diffOutPath); err != nil {
			return err
		}
		fmt.Printf("Wrote difference map to %s\n", diffOutPath)
	}
	return nil
}
