package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/RGBtoYIQ/internal/color"
	"github.com/davesmith10/RGBtoYIQ/internal/pipeline"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a raster image into a YIQ container",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input image file (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	encodeCmd.Flags().StringP("output", "o", "", "Output .yiq file")
	encodeCmd.Flags().StringP("type", "t", "", "Stream to stdout as this type (yiq)")
	encodeCmd.Flags().String("method", "smpte", "Colorimetry method (ntsc, smpte)")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagsMutuallyExclusive("output", "type")
	encodeCmd.MarkFlagsOneRequired("output", "type")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	outType, _ := cmd.Flags().GetString("type")
	methodStr, _ := cmd.Flags().GetString("method")

	method, err := color.ParseMethod(methodStr)
	if err != nil {
		return err
	}
	if outType != "" && outType != "yiq" {
		return fmt.Errorf("unsupported stream type %q (encode emits yiq)", outType)
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Encode(inputData, pipeline.Options{Method: method})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if outputPath == "" {
		if _, err := os.Stdout.Write(result.Data); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Encoded %dx%d %s → YIQ (%s, %d bytes)\n",
			result.SrcWidth, result.SrcHeight, result.SrcFormat, method, len(result.Data))
		return nil
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Encoded %dx%d %s → YIQ (%s)\n", result.SrcWidth, result.SrcHeight, result.SrcFormat, method)
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))
	return nil
}
