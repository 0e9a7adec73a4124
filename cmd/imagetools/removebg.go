package main

import (
	"fmt"

	"github.com/luisfn/image-tools/internal/imgio"
	"github.com/luisfn/image-tools/internal/removebg"
	"github.com/luisfn/image-tools/internal/rgb"
	"github.com/spf13/cobra"
)

var removebgCmd = &cobra.Command{
	Use:   "removebg",
	Short: "Make a solid background color transparent",
	RunE:  runRemovebg,
}

func init() {
	removebgCmd.Flags().StringP("input", "i", "", "Input image file")
	removebgCmd.Flags().StringP("output", "o", "", "Output PNG file (default: input_transparent.png)")
	removebgCmd.Flags().StringP("color", "c", "", "Background color to remove as R,G,B (e.g. 255,204,0)")
	removebgCmd.Flags().IntP("tolerance", "t", removebg.DefaultTolerance, "Per-channel color tolerance")
	removebgCmd.Flags().Float64("feather", 0, "Soften the cutout edge with this Gaussian sigma")
	removebgCmd.MarkFlagRequired("input")
	removebgCmd.MarkFlagRequired("color")
	rootCmd.AddCommand(removebgCmd)
}

func runRemovebg(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	explicitOut, _ := cmd.Flags().GetString("output")
	colorStr, _ := cmd.Flags().GetString("color")
	tolerance, _ := cmd.Flags().GetInt("tolerance")
	feather, _ := cmd.Flags().GetFloat64("feather")

	bg, err := rgb.Parse(colorStr)
	if err != nil {
		return err
	}

	img, _, err := imgio.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, cleared := removebg.Remove(img, removebg.Options{
		Color:     bg,
		Tolerance: tolerance,
		Feather:   feather,
	})

	outputPath := deriveOutput(explicitOut, inputPath, "_transparent.png")
	if err := imgio.Save(out, outputPath, imgio.PNG, imgio.EncodeOptions{}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	b := out.Bounds()
	fmt.Printf("Cleared %d of %d pixels matching %s\n", cleared, b.Dx()*b.Dy(), bg)
	fmt.Printf("Output: %s\n", outputPath)

	return nil
}
