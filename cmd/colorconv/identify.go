package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suzumura-ss/color-converter/internal/format"
	"github.com/suzumura-ss/color-converter/internal/imagecodec"
	"github.com/suzumura-ss/color-converter/internal/pixmap"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image format and dimensions",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	path := args[0]
	t, err := format.Resolve(path)
	if err != nil {
		return err
	}
	if t.Stream {
		return fmt.Errorf("identify reads files only, got stream %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:         %s\n", path)
	fmt.Fprintf(out, "Pixel format: %s\n", t.Format)

	switch t.Format {
	case format.YUV, format.NV21:
		magic := pixmap.MagicPPM
		if t.Format == format.NV21 {
			magic = pixmap.MagicNV21
		}
		h, err := pixmap.ReadHeader(bufio.NewReader(bytes.NewReader(data)), magic)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fmt.Fprintf(out, "Container:    %s\n", h.Magic)
		fmt.Fprintf(out, "Dimensions:   %d x %d\n", h.Width, h.Height)
		fmt.Fprintf(out, "Max value:    %d\n", h.Depth)
		if t.Format == format.NV21 {
			fmt.Fprintf(out, "Chroma plane: %d x %d (VU)\n", h.Width/2, h.Height/2)
		}
	default:
		info, err := imagecodec.GetInfo(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fmt.Fprintf(out, "Container:    %s\n", info.Format)
		fmt.Fprintf(out, "Dimensions:   %d x %d\n", info.Width, info.Height)
		fmt.Fprintf(out, "Color space:  %s\n", info.ColorSpace)
	}
	fmt.Fprintf(out, "File size:    %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))
	return nil
}
