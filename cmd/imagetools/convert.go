package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/luisfn/image-tools/internal/imgio"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an image to another format",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input image file")
	convertCmd.Flags().StringP("output", "o", "", "Output file (default: input with the target extension)")
	convertCmd.Flags().StringP("format", "f", "", "Target format (jpeg, png, gif, webp, bmp, tiff, ico, pdf)")
	convertCmd.Flags().IntP("quality", "q", imgio.DefaultQuality, "JPEG/WebP quality (1-100)")
	convertCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	explicitOut, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")

	var target imgio.Format
	var err error
	switch {
	case formatStr != "":
		target, err = imgio.ParseFormat(formatStr)
		if err != nil {
			return err
		}
	case explicitOut != "":
		target, err = imgio.FormatFromPath(explicitOut)
		if err != nil {
			return fmt.Errorf("cannot infer target format from %s: %w", explicitOut, err)
		}
	default:
		target = imgio.WebP
	}
	outputPath := deriveOutput(explicitOut, inputPath, target.Ext())

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	img, source, err := imgio.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	var buf bytes.Buffer
	if err := imgio.Encode(&buf, img, target, imgio.EncodeOptions{Quality: quality}); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	b := img.Bounds()
	fmt.Printf("Converted %dx%d %s → %s\n", b.Dx(), b.Dy(), strings.ToUpper(string(source)), strings.ToUpper(string(target)))
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(data))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, buf.Len())

	return nil
}
