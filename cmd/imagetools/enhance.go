package main

import (
	"fmt"

	"github.com/luisfn/image-tools/internal/enhance"
	"github.com/luisfn/image-tools/internal/imgio"
	"github.com/luisfn/image-tools/internal/rgb"
	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Frame a screenshot and place it on a gradient background",
	RunE:  runEnhance,
}

func init() {
	enhanceCmd.Flags().StringP("input", "i", "", "Input screenshot file")
	enhanceCmd.Flags().StringP("output", "o", "", "Output PNG file (default: input_enhanced.png)")
	enhanceCmd.Flags().StringP("gradient", "g", "", "Gradient preset (see the gradients command)")
	enhanceCmd.Flags().String("color-start", "", "Custom gradient start as R,G,B (needs --color-end)")
	enhanceCmd.Flags().String("color-end", "", "Custom gradient end as R,G,B (needs --color-start)")
	enhanceCmd.Flags().IntP("padding", "p", enhance.DefaultPadding, "Background padding in pixels")
	enhanceCmd.Flags().IntP("radius", "r", enhance.DefaultCornerRadius, "Window corner radius in pixels")
	enhanceCmd.Flags().Bool("no-frame", false, "Skip the browser window frame")
	enhanceCmd.Flags().Bool("no-shadow", false, "Skip the drop shadow")
	enhanceCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	explicitOut, _ := cmd.Flags().GetString("output")
	preset, _ := cmd.Flags().GetString("gradient")
	startStr, _ := cmd.Flags().GetString("color-start")
	endStr, _ := cmd.Flags().GetString("color-end")
	padding, _ := cmd.Flags().GetInt("padding")
	radius, _ := cmd.Flags().GetInt("radius")
	noFrame, _ := cmd.Flags().GetBool("no-frame")
	noShadow, _ := cmd.Flags().GetBool("no-shadow")

	var start, end *rgb.Color
	if startStr != "" {
		c, err := rgb.Parse(startStr)
		if err != nil {
			return err
		}
		start = &c
	}
	if endStr != "" {
		c, err := rgb.Parse(endStr)
		if err != nil {
			return err
		}
		end = &c
	}

	img, _, err := imgio.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, err := enhance.Render(img, enhance.Options{
		Preset:       preset,
		Start:        start,
		End:          end,
		Padding:      padding,
		CornerRadius: radius,
		NoFrame:      noFrame,
		NoShadow:     noShadow,
	})
	if err != nil {
		return err
	}

	outputPath := deriveOutput(explicitOut, inputPath, "_enhanced.png")
	if err := imgio.Save(out, outputPath, imgio.PNG, imgio.EncodeOptions{}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	sb, ob := img.Bounds(), out.Bounds()
	fmt.Printf("Enhanced %dx%d → %dx%d\n", sb.Dx(), sb.Dy(), ob.Dx(), ob.Dy())
	fmt.Printf("Input:  %s\n", inputPath)
	fmt.Printf("Output: %s\n", outputPath)

	return nil
}
