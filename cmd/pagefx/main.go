package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/viz"
)

var (
	// Shared
	configFile string
	preset     string
	seed       int64
	locale     string
	verbose    bool
	// Preview
	frameRate     int
	reducedMotion bool
	// Headless runs
	outFile   string
	width     float64
	height    float64
	numFrames int
	pointer   string
	// Timeline
	cancelAfter int
	// Validate
	formName    string
	formEmail   string
	formMessage string
)

var errBlocked = errors.New("submission blocked")

// main registers the commands and runs the terminal preview when no
// subcommand is given. It exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "pagefx",
		Short:         "landing page effects: intro, parallax, particles, contact guard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPreview,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (overrides config)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for messages (es, en)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addPreviewFlags(rootCmd)

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "run the page in the terminal",
		RunE:  runPreview,
	}
	addPreviewFlags(previewCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the particle field to an SVG file",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "output", "o", "snapshot.svg", "output file")
	addHeadlessFlags(snapshotCmd, 120)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot mean particle speed and link count over time",
		RunE:  runTrace,
	}
	addHeadlessFlags(traceCmd, 600)

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "print the intro sequence on a virtual clock",
		RunE:  runTimeline,
	}
	timelineCmd.Flags().IntVar(&cancelAfter, "cancel-after", 0, "skip the intro after this many ms")
	timelineCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "honor reduced motion")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "run the contact form guard on the given fields",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVar(&formName, "name", "", "name field")
	validateCmd.Flags().StringVar(&formEmail, "email", "", "email field")
	validateCmd.Flags().StringVar(&formMessage, "message", "", "message field")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  configInit,
	}
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "print the effective configuration",
		RunE:  configShow,
	}
	configCmd.AddCommand(configInitCmd, configShowCmd)

	rootCmd.AddCommand(previewCmd, snapshotCmd, traceCmd, timelineCmd, validateCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errBlocked) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func addPreviewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")
	cmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "honor reduced motion")
}

func addHeadlessFlags(cmd *cobra.Command, frames int) {
	cmd.Flags().Float64Var(&width, "width", 1280, "viewport width in px")
	cmd.Flags().Float64Var(&height, "height", 720, "viewport height in px")
	cmd.Flags().IntVar(&numFrames, "frames", frames, "animation frames to run")
	cmd.Flags().StringVar(&pointer, "pointer", "", "pointer position x,y in px")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig applies preset, then config file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.Preset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	// Config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = locale
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunPreview(viz.PreviewOptions{
		Config:        cfg,
		FPS:           frameRate,
		ReducedMotion: reducedMotion,
		Logger:        newLogger(),
	})
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pointer %q: want x,y", s)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pointer x: %w", err)
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pointer y: %w", err)
	}
	return x, y, nil
}
