package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/cubesim/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	preset       string
	width        int
	height       int
	size         int
	fps          int
	projection   string
	presentation string
	layout       string
	gap          float64
	camera       float64
	method       string
	background   string
	theme        string
	verbose      bool
	svgPath      string
	gifPath      string
	jsonPath     string

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// main is the entry point for the cubesim CLI. It exits with status 1 if the
// command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cubesim",
		Short: "rotating ascii cube renderer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
		RunE:         runPlay,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", config.DefaultPreset, "rotation preset (empty for config increments)")
	pf.IntVar(&width, "width", config.DefaultWidth, "grid width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "grid height in cells")
	pf.IntVar(&size, "size", config.DefaultCubeSize, "cube half-size")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate (0 for unpaced)")
	pf.StringVar(&projection, "projection", "perspective", "perspective or orthographic")
	pf.StringVar(&presentation, "presentation", "line", "line, cell, screen or live")
	pf.StringVar(&layout, "layout", "centered", "centered or exploded")
	pf.Float64Var(&gap, "gap", 0, "face offset for the exploded layout")
	pf.Float64Var(&camera, "camera", config.DefaultCameraDistance, "camera distance")
	pf.StringVar(&method, "method", "fused", "rotation method: fused or sequential")
	pf.StringVar(&background, "background", config.DefaultBackground, "background glyph")
	pf.StringVar(&theme, "theme", "retro", "live view theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "animate the cube in the terminal",
		RunE:  runPlay,
	}
	playCmd.Flags().Int("frames", 0, "stop after n frames (0 runs until interrupted)")
	rootCmd.Flags().Int("frames", 0, "stop after n frames (0 runs until interrupted)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the cube with a stats panel",
		RunE:  runLive,
	}
	liveCmd.Flags().Int("frames", 0, "stop after n frames (0 runs until quit)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames headless and print the last one",
		RunE:  runRender,
	}
	renderCmd.Flags().Int("frames", 1, "number of frames to render")
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "write the last frame as svg")
	renderCmd.Flags().StringVar(&gifPath, "gif", "", "write all frames as an animated gif")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame rendering across cube sizes",
		RunE:  runBench,
	}
	benchCmd.Flags().Int("frames", 100, "frames per size")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot visible coverage over a rotation",
		RunE:  runStats,
	}
	statsCmd.Flags().Int("frames", 240, "number of frames to sample")
	statsCmd.Flags().StringVar(&jsonPath, "json", "", "write per-frame stats as json")

	compareCmd := &cobra.Command{
		Use:   "compare [variant...]",
		Short: "render variants side by side (fused, sequential, perspective, orthographic, centered, exploded)",
		RunE:  runCompare,
	}
	compareCmd.Flags().Int("frames", 60, "frames per variant")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list rotation presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "rotation presets:")
			for _, name := range config.ListPresets() {
				inc, _ := config.GetPreset(name)
				fmt.Fprintf(out, "  %-6s a=%g b=%g c=%g\n", name, inc.A, inc.B, inc.C)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE:  runConfig,
	}

	rootCmd.AddCommand(playCmd, liveCmd, renderCmd, benchCmd, statsCmd, compareCmd, presetsCmd, configCmd)
	return rootCmd
}

// effectiveConfig starts from the defaults or the config file, then applies
// only the flags set on the command line.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Rotation.Preset = preset
	}
	if flags.Changed("width") {
		cfg.Display.Width = width
	}
	if flags.Changed("height") {
		cfg.Display.Height = height
	}
	if flags.Changed("size") {
		cfg.Cube.Size = size
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("projection") {
		cfg.Projection.Mode = projection
	}
	if flags.Changed("presentation") {
		cfg.Presentation = presentation
	}
	if flags.Changed("layout") {
		cfg.Cube.Layout = layout
	}
	if flags.Changed("gap") {
		cfg.Cube.Gap = gap
	}
	if flags.Changed("camera") {
		cfg.Projection.CameraDistance = camera
	}
	if flags.Changed("method") {
		cfg.Rotation.Method = method
	}
	if flags.Changed("background") {
		cfg.Display.Background = background
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// frameLimit reads the command's own --frames flag; each command has its own default.
func frameLimit(cmd *cobra.Command) int {
	n, err := cmd.Flags().GetInt("frames")
	if err != nil {
		return 0
	}
	return n
}
