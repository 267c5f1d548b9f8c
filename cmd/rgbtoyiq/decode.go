package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davesmith10/RGBtoYIQ/internal/imaging"
	"github.com/davesmith10/RGBtoYIQ/internal/pipeline"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a YIQ container back to a displayable image",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringP("input", "i", "", "Input .yiq file")
	decodeCmd.Flags().StringP("output", "o", "", "Output image file (format from extension)")
	decodeCmd.Flags().StringP("type", "t", "",
		fmt.Sprintf("Stream to stdout as this type (%s)", strings.Join(imaging.Formats(), ", ")))
	decodeCmd.MarkFlagRequired("input")
	decodeCmd.MarkFlagsMutuallyExclusive("output", "type")
	decodeCmd.MarkFlagsOneRequired("output", "type")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	outType, _ := cmd.Flags().GetString("type")

	format := outType
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
		if format == "" {
			return fmt.Errorf("cannot infer output format from %q; add an extension or use --type", outputPath)
		}
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Decode(inputData, format)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	if outputPath == "" {
		if _, err := os.Stdout.Write(result.Data); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Decoded %dx%d YIQ (%s) → %s (%d bytes)\n",
			result.Width, result.Height, result.Method, format, len(result.Data))
		return nil
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Decoded %dx%d YIQ (%s)\n", result.Width, result.Height, result.Method)
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))
	return nil
}
