package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davesmith10/RGBtoYIQ/internal/imaging"
	"github.com/davesmith10/RGBtoYIQ/internal/yiq"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a YIQ container or raster image",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := yiq.GetInfo(data)
	if err == nil {
		fmt.Printf("File:       %s\n", path)
		fmt.Printf("Format:     YIQ container, version %d\n", info.Version)
		fmt.Printf("Method:     %s\n", info.Method)
		fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
		fmt.Printf("File size:  %d bytes\n", len(data))
		expected := info.Width * info.Height * 3
		if info.Complete {
			fmt.Printf("Pixel data: %d bytes, complete\n", expected)
			if info.TrailBytes > 0 {
				fmt.Printf("Trailing:   %d bytes ignored\n", info.TrailBytes)
			}
		} else {
			fmt.Printf("Pixel data: %d of %d bytes, truncated\n", info.DataBytes, expected)
		}
		return nil
	}
	if !errors.Is(err, yiq.ErrInvalidFormat) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	// Not a container; fall back to the image registry.
	decoded, derr := imaging.Decode(data)
	if derr != nil {
		return fmt.Errorf("parsing %s: %w", path, derr)
	}
	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", decoded.Format)
	fmt.Printf("Dimensions: %d x %d\n", decoded.Width, decoded.Height)
	fmt.Printf("File size:  %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))
	return nil
}
