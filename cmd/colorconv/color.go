package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/suzumura-ss/color-converter/internal/color"
)

var colorCmd = &cobra.Command{
	Use:   "color <a> <b> <c>",
	Short: "Print one color in sRGB, linear RGB, XYZ, CIELUV and YUV",
	Args:  cobra.ExactArgs(3),
	RunE:  runColor,
}

func init() {
	colorCmd.Flags().String("from", "srgb", "Space of the input triple (srgb, linear, xyz, luv, yuv)")
	colorCmd.Flags().String("illuminant", "d65", "LUV reference white (d65 or a)")
	colorCmd.Flags().Bool("bytes", false, "Input triple is 0-255 (srgb and yuv only)")
	colorCmd.Flags().Bool("json", false, "Print the chain as JSON")
	rootCmd.AddCommand(colorCmd)
}

type colorChain struct {
	SRGB   [3]float64 `json:"srgb"`
	Linear [3]float64 `json:"linear"`
	XYZ    [3]float64 `json:"xyz"`
	LUV    [3]float64 `json:"luv"`
	YUV    [3]float64 `json:"yuv"`
	Bytes  struct {
		RGB [3]byte `json:"rgb"`
		YUV [3]byte `json:"yuv"`
	} `json:"bytes"`
}

func parseIlluminant(s string) (color.Illuminant, error) {
	switch s {
	case "d65", "D65":
		return color.D65, nil
	case "a", "A":
		return color.IlluminantA, nil
	default:
		return color.Illuminant{}, fmt.Errorf("unknown illuminant %q (want d65 or a)", s)
	}
}

func runColor(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	fromName, _ := cmd.Flags().GetString("from")
	illumName, _ := cmd.Flags().GetString("illuminant")
	asBytes, _ := cmd.Flags().GetBool("bytes")
	asJSON, _ := cmd.Flags().GetBool("json")

	space, err := color.ParseSpace(fromName)
	if err != nil {
		return err
	}
	white, err := parseIlluminant(illumName)
	if err != nil {
		return err
	}

	var v [3]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i+1, err)
		}
		v[i] = f
	}
	if asBytes {
		if space != color.SpaceSRGB && space != color.SpaceYUV {
			return fmt.Errorf("--bytes only applies to srgb and yuv, not %s", space)
		}
		for i := range v {
			if v[i] < 0 || v[i] > 255 {
				return fmt.Errorf("component %d out of byte range: %g", i+1, v[i])
			}
			v[i] /= 255
		}
	}

	ch, err := color.Expand(space, v[0], v[1], v[2], white)
	if err != nil {
		return err
	}

	if asJSON {
		return writeChainJSON(cmd.OutOrStdout(), ch)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ch.SRGB)
	fmt.Fprintln(out, ch.Linear)
	fmt.Fprintln(out, ch.XYZ)
	fmt.Fprintln(out, ch.LUV)
	fmt.Fprintln(out, ch.YUV)
	return nil
}

func writeChainJSON(w io.Writer, ch color.Chain) error {
	var c colorChain
	c.SRGB = [3]float64{ch.SRGB.R, ch.SRGB.G, ch.SRGB.B}
	c.Linear = [3]float64{ch.Linear.R, ch.Linear.G, ch.Linear.B}
	c.XYZ = [3]float64{ch.XYZ.X, ch.XYZ.Y, ch.XYZ.Z}
	c.LUV = [3]float64{ch.LUV.L, ch.LUV.U, ch.LUV.V}
	c.YUV = [3]float64{ch.YUV.Y, ch.YUV.U, ch.YUV.V}
	c.Bytes.RGB = [3]byte{color.ToByte(ch.SRGB.R), color.ToByte(ch.SRGB.G), color.ToByte(ch.SRGB.B)}
	c.Bytes.YUV = [3]byte{color.ToByte(ch.YUV.Y), color.ToByte(ch.YUV.U), color.ToByte(ch.YUV.V)}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
