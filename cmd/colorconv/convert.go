package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suzumura-ss/color-converter/internal/pipeline"
)

func conversionCmd(use, short, mode string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <source> <dest>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, args, mode)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		conversionCmd("convert", "Convert, transforming colors only when RGB/YUV families differ", "auto"),
		conversionCmd("torgb", "Decode a YUV source and write it as RGB", "torgb"),
		conversionCmd("toyuv", "Decode an RGB source and write it as YUV", "toyuv"),
		conversionCmd("copy", "Re-container pixels without any color transform", "copy"),
	)
}

func runConversion(cmd *cobra.Command, args []string, modeName string) error {
	cmd.SilenceUsage = true
	source, dest := args[0], args[1]

	mode, err := pipeline.ParseMode(modeName)
	if err != nil {
		return err
	}
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(d, source, dest, pipeline.Options{Mode: mode, Logger: logger})
	if err != nil {
		logger.Debug("conversion stopped", "state", result.State.String())
		return fmt.Errorf("conversion: %w", err)
	}

	logger.Info("converted", "source", source, "dest", dest, "summary", result.Describe())
	return nil
}
