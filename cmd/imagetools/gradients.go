package main

import (
	"fmt"

	"github.com/luisfn/image-tools/internal/enhance"
	"github.com/spf13/cobra"
)

var gradientsCmd = &cobra.Command{
	Use:   "gradients",
	Short: "List the built-in gradient presets",
	RunE:  runGradients,
}

func init() {
	rootCmd.AddCommand(gradientsCmd)
}

func runGradients(cmd *cobra.Command, args []string) error {
	fmt.Println("Available gradients:")
	for _, name := range enhance.PresetNames() {
		start, end, err := enhance.Preset(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-15s %s -> %s\n", name, start, end)
	}
	return nil
}
