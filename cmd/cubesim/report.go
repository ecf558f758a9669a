package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cubesim/internal/export"
	"github.com/san-kum/cubesim/internal/render"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const svgCellSize = 10.0

var benchSizes = []int{5, 10, 20, 30}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	frames := frameLimit(cmd)
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	r := render.NewRenderer(opts)
	rec := export.NewRecorder(nil)
	loop := render.NewLoop(r, rec, 0)
	loop.SetMaxFrames(frames)
	if err := loop.Run(cmd.Context()); err != nil {
		return err
	}

	last := rec.Last()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, last.String())

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.FrameToSVG(last, svgCellSize)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", svgPath)
	}

	if gifPath != "" {
		f, err := os.Create(gifPath)
		if err != nil {
			return err
		}
		defer f.Close()

		delay := 4
		if cfg.FPS > 0 {
			delay = max(1, 100/cfg.FPS)
		}
		if err := export.WriteGIF(f, rec.Frames(), delay); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%d frames)\n", gifPath, len(rec.Frames()))
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	frames := frameLimit(cmd)
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %dx%d %s\n\n", cfg.Display.Width, cfg.Display.Height, cfg.Projection.Mode)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tPOINTS\tFRAMES\tTIME\tFRAMES/SEC\tPOINTS/SEC")

	for _, s := range benchSizes {
		cfg.Cube.Size = s
		opts, err := cfg.RenderOptions()
		if err != nil {
			logger.Debug("skipping size", "size", s, "err", err)
			continue
		}
		r := render.NewRenderer(opts)

		start := time.Now()
		for i := 0; i < frames; i++ {
			r.RenderFrame()
			r.Advance()
		}
		elapsed := time.Since(start)

		points := r.Sampler().Emissions()
		perSec := float64(frames) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.1f\t%.0f\n",
			s, points, frames, elapsed.Round(time.Microsecond), perSec, perSec*float64(points))
	}

	return w.Flush()
}

// coverageObserver records per-frame visibility for the stats report.
type coverageObserver struct {
	all     []render.FrameStats
	visible []float64
	faces   [6]int
}

func (o *coverageObserver) OnFrame(stats render.FrameStats) {
	o.all = append(o.all, stats)
	o.visible = append(o.visible, float64(stats.Visible))
	for i, n := range stats.Faces {
		o.faces[i] += n
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	frames := frameLimit(cmd)
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	r := render.NewRenderer(opts)
	obs := &coverageObserver{}
	loop := render.NewLoop(r, render.PresenterFunc(func(*render.FrameBuffer) error { return nil }), 0)
	loop.SetMaxFrames(frames)
	loop.AddObserver(obs)
	if err := loop.Run(context.Background()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	a, b, c := r.Rotation().Angles()
	fmt.Fprintf(out, "frames: %d\n", frames)
	fmt.Fprintf(out, "points per frame: %d\n", r.Sampler().Emissions())
	fmt.Fprintf(out, "final angles: a=%.4f b=%.4f c=%.4f\n\n", a, b, c)

	fmt.Fprintln(out, asciigraph.Plot(obs.visible,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("visible cells per frame"),
	))
	fmt.Fprintln(out)

	total := 0
	for _, n := range obs.faces {
		total += n
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FACE\tGLYPH\tCELLS\tSHARE")
	for _, f := range render.Faces {
		share := 0.0
		if total > 0 {
			share = 100 * float64(obs.faces[f]) / float64(total)
		}
		fmt.Fprintf(w, "%s\t%c\t%d\t%.1f%%\n", f, f.Glyph(), obs.faces[f], share)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteStatsJSON(f, export.NewStatsData(opts, obs.all)); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nwrote %s\n", jsonPath)
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
