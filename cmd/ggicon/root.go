package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggicon"
	"github.com/gogpu/ggicon/internal/config"
	"github.com/gogpu/ggicon/internal/export"
	"github.com/gogpu/ggicon/internal/fontload"
	"github.com/gogpu/ggicon/internal/icon"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ggicon",
		Short: "Render the ClaudeBoard application icon",
		Long: "ggicon draws the fixed ClaudeBoard icon recipe onto a 1024x1024 canvas\n" +
			"and writes it as PNG, optionally also as .ico and .icns.\n\n" +
			"Environment: ICONGEN_OUTPUT, ICONGEN_ICO, ICONGEN_ICNS, ICONGEN_FONTS, ICONGEN_VERBOSE.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ggicon.SetLogger(newLogger(cmd.ErrOrStderr(), cfg.Verbose))
			defer ggicon.SetLogger(nil)

			return generate(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutput, "PNG output path")
	cmd.Flags().String("ico", "", "also write a Windows .ico to this path")
	cmd.Flags().String("icns", "", "also write a macOS .icns to this path")
	cmd.Flags().StringArray("font", nil, "font candidate, repeatable; replaces the default list")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig layers changed flags over the environment and validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("ico") {
		cfg.ICO, _ = flags.GetString("ico")
	}
	if flags.Changed("icns") {
		cfg.ICNS, _ = flags.GetString("icns")
	}
	if flags.Changed("font") {
		cfg.Fonts, _ = flags.GetStringArray("font")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// generate resolves the font, renders the icon and writes every configured
// output, then reports the PNG on out.
func generate(cfg config.Config, out io.Writer) error {
	font, err := fontload.Resolve(cfg.FontCandidates(), icon.TextSize)
	if err != nil {
		return err
	}
	defer func() { _ = font.Close() }()

	img, err := icon.Render(font.Face)
	if err != nil {
		return err
	}

	if err := export.WritePNG(cfg.Output, img); err != nil {
		return err
	}
	if cfg.ICO != "" {
		if err := export.WriteICO(cfg.ICO, img); err != nil {
			return err
		}
	}
	if cfg.ICNS != "" {
		if err := export.WriteICNS(cfg.ICNS, img); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(out, "%s saved\n", filepath.Base(cfg.Output))
	return err
}
