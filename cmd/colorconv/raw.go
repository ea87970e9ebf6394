package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suzumura-ss/color-converter/internal/format"
	"github.com/suzumura-ss/color-converter/internal/pipeline"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Decode any source to raw interleaved pixels (raw output + JSON sidecar)",
	RunE:  runRaw,
}

func init() {
	rawCmd.Flags().StringP("input", "i", "", "Input file, or 'ext:-' for stdin")
	rawCmd.Flags().StringP("output", "o", "", "Output raw file")
	rawCmd.Flags().String("layout", "", "Channel layout of the raw output (rgb or yuv); defaults to the source's")
	rawCmd.MarkFlagRequired("input")
	rawCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(rawCmd)
}

type rawMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

func runRaw(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	layout, _ := cmd.Flags().GetString("layout")

	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}
	img, src, err := d.Decode(inputPath)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	dst := format.RGB
	if src.Format.IsYUV() {
		dst = format.YUV
	}
	switch layout {
	case "":
	case "rgb":
		dst = format.RGB
	case "yuv":
		dst = format.YUV
	default:
		return fmt.Errorf("unknown layout %q (want rgb or yuv)", layout)
	}

	img, _, _, err = pipeline.Transform(img, pipeline.Auto, src.Format, dst)
	if err != nil {
		return fmt.Errorf("color transform: %w", err)
	}

	if err := os.WriteFile(outputPath, img.Pixels, 0644); err != nil {
		return fmt.Errorf("writing raw pixels: %w", err)
	}

	meta := rawMeta{
		Width:  img.Width,
		Height: img.Height,
		Format: strings.ToUpper(dst.String()) + "8",
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Decoded %dx%d → raw %s (%d bytes)\n", img.Width, img.Height, meta.Format, len(img.Pixels))
	fmt.Fprintf(out, "Sidecar: %s\n", metaPath)
	return nil
}
