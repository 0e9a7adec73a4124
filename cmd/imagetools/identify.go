package main

import (
	"fmt"
	"strings"

	"github.com/luisfn/image-tools/internal/imgio"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image format, dimensions, and color mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := imgio.Identify(path)
	if err != nil {
		return fmt.Errorf("identifying %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", strings.ToUpper(string(info.Format)))
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Printf("Mode:       %s\n", info.Mode)
	fmt.Printf("File size:  %d bytes (%.1f MB)\n", info.Size, float64(info.Size)/(1024*1024))

	return nil
}
