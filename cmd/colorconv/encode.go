package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suzumura-ss/color-converter/internal/format"
	"github.com/suzumura-ss/color-converter/internal/ir"
	"github.com/suzumura-ss/color-converter/internal/pipeline"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw interleaved 8-bit pixels into any supported destination",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw file (3 bytes per pixel)")
	encodeCmd.Flags().StringP("output", "o", "", "Output file, or 'ext:-' for stdout")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().String("layout", "rgb", "Channel layout of the raw input (rgb or yuv)")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	layout, _ := cmd.Flags().GetString("layout")

	var src format.PixelFormat
	switch layout {
	case "rgb":
		src = format.RGB
	case "yuv":
		src = format.YUV
	default:
		return fmt.Errorf("unknown layout %q (want rgb or yuv)", layout)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	expected := width * height * 3
	if len(pixels) != expected {
		return fmt.Errorf("expected %d bytes for %dx%d %s, got %d", expected, width, height, layout, len(pixels))
	}

	dst, err := format.Resolve(outputPath)
	if err != nil {
		return err
	}
	img := &ir.Raster{Width: width, Height: height, Channels: 3, Pixels: pixels}
	img, dir, applied, err := pipeline.Transform(img, pipeline.Auto, src, dst.Format)
	if err != nil {
		return fmt.Errorf("color transform: %w", err)
	}
	if applied {
		logger.Debug("transformed", "direction", dir.String())
	}

	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}
	if _, err := d.Encode(outputPath, img); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if !dst.Stream {
		fmt.Fprintf(cmd.OutOrStdout(), "Encoded %dx%d %s → %s\n", width, height, layout, outputPath)
	}
	return nil
}
