package main

import (
	"fmt"
	"os"

	"github.com/luisfn/image-tools/internal/imgio"
	"github.com/luisfn/image-tools/internal/vectorize"
	"github.com/spf13/cobra"
)

var vectorizeCmd = &cobra.Command{
	Use:   "vectorize",
	Short: "Trace a raster image into an SVG",
	RunE:  runVectorize,
}

func init() {
	vectorizeCmd.Flags().StringP("input", "i", "", "Input image file")
	vectorizeCmd.Flags().StringP("output", "o", "", "Output SVG file (default: input with .svg)")
	vectorizeCmd.Flags().BoolP("binary", "b", false, "Black-and-white tracing instead of color layers")
	vectorizeCmd.Flags().IntP("precision", "p", vectorize.DefaultPrecision, "Color precision in bits per channel (1-8)")
	vectorizeCmd.Flags().IntP("speckle", "s", vectorize.DefaultSpeckle, "Discard traced shapes smaller than this many pixels")
	vectorizeCmd.Flags().Int("threshold", vectorize.DefaultThreshold, "Luminance cutoff for binary mode (0-255)")
	vectorizeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(vectorizeCmd)
}

func runVectorize(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	explicitOut, _ := cmd.Flags().GetString("output")
	binary, _ := cmd.Flags().GetBool("binary")
	precision, _ := cmd.Flags().GetInt("precision")
	speckle, _ := cmd.Flags().GetInt("speckle")
	threshold, _ := cmd.Flags().GetInt("threshold")

	if threshold < 0 || threshold > 255 {
		return fmt.Errorf("threshold %d out of range (0-255)", threshold)
	}

	img, _, err := imgio.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	mode := vectorize.ModeColor
	if binary {
		mode = vectorize.ModeBinary
	}
	svg, err := vectorize.ToSVG(img, vectorize.Options{
		Mode:           mode,
		ColorPrecision: precision,
		FilterSpeckle:  speckle,
		Threshold:      uint8(threshold),
		Compact:        true,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	outputPath := deriveOutput(explicitOut, inputPath, ".svg")
	if err := os.WriteFile(outputPath, svg, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	b := img.Bounds()
	fmt.Printf("Traced %dx%d → %s (%d bytes)\n", b.Dx(), b.Dy(), outputPath, len(svg))

	return nil
}
