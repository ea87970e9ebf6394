package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/suzumura-ss/color-converter/internal/format"
	"github.com/suzumura-ss/color-converter/internal/imagecodec"
	"github.com/suzumura-ss/color-converter/internal/pixmap"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

var rootCmd = &cobra.Command{
	Use:   "colorconv [-toRGB|-toYUV|-copy] <source> <dest>",
	Short: "Convert images between RGB, packed YUV (.ppm) and NV21 (.nv21)",
	Long: `Convert images between RGB image files, packed YUV pixmaps and NV21 pixmaps.

    .png, .jpg, .bmp, .gif, .tif : RGB
    .ppm                         : YUV
    .nv21                        : YUV-NV21
    'png:-' 'jpg:-' 'ppm:-' 'nv21:-' read stdin / write stdout

Without a mode the RGB↔YUV transform runs only when the source and
destination families differ.`,
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: setupLogging,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, "auto")
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Log each pipeline step to stderr")
	pf.String("upsample", pixmap.DefaultResample.Upsample.String(), "NV21 chroma upsampling kernel (nearest, bilinear, approxbilinear, catmullrom)")
	pf.String("downsample", pixmap.DefaultResample.Downsample.String(), "NV21 chroma downsampling kernel (nearest, bilinear, approxbilinear, catmullrom)")
	pf.Int("quality", imagecodec.DefaultQuality, "JPEG quality (1-100)")
}

// legacyModes maps the single-dash mode switches onto subcommands.
var legacyModes = map[string]string{
	"-toRGB": "torgb",
	"-toYUV": "toyuv",
	"-copy":  "copy",
}

// rewriteLegacyArgs turns "-toRGB src dst" into "torgb src dst" so cobra
// does not read the switch as a cluster of shorthand flags. The switch may
// follow persistent flags; it is moved to the front as the subcommand.
func rewriteLegacyArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			break
		}
		sub, ok := legacyModes[a]
		if !ok {
			continue
		}
		out := make([]string, 0, len(args))
		out = append(out, sub)
		out = append(out, args[:i]...)
		return append(out, args[i+1:]...)
	}
	return args
}

func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// newDispatcher builds a dispatcher from the persistent flags.
func newDispatcher(cmd *cobra.Command) (*format.Dispatcher, error) {
	upName, _ := cmd.Flags().GetString("upsample")
	downName, _ := cmd.Flags().GetString("downsample")
	quality, _ := cmd.Flags().GetInt("quality")

	up, err := pixmap.ParseKernel(upName)
	if err != nil {
		return nil, err
	}
	down, err := pixmap.ParseKernel(downName)
	if err != nil {
		return nil, err
	}

	d := format.NewDispatcher(cmd.InOrStdin(), cmd.OutOrStdout())
	d.Resample = pixmap.ResampleOptions{Upsample: up, Downsample: down}
	d.Encoder = imagecodec.EncoderOptions{Quality: imagecodec.ClampQuality(quality)}
	d.Logger = logger
	return d, nil
}

func main() {
	rootCmd.SetArgs(rewriteLegacyArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
