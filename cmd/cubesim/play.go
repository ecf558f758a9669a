package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/cubesim/internal/present"
	"github.com/san-kum/cubesim/internal/render"
	"github.com/san-kum/cubesim/internal/viz"
	"github.com/spf13/cobra"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	r := render.NewRenderer(opts)

	mode := present.Mode(cfg.Presentation)
	if mode == present.Live {
		return playLive(r, cfg.FPS, frameLimit(cmd))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var p render.Presenter
	switch mode {
	case present.Line:
		lp := present.NewLinePresenter(os.Stdout)
		if err := lp.Start(); err != nil {
			return err
		}
		defer lp.Close()
		p = lp
	case present.Cell:
		cp := present.NewCellPresenter(os.Stdout)
		if err := cp.Start(); err != nil {
			return err
		}
		defer cp.Close()
		p = cp
	case present.Screen:
		sp, err := present.OpenScreen()
		if err != nil {
			return err
		}
		defer sp.Close()
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go sp.WatchQuit(cancel)
		p = sp
	}

	loop := render.NewLoop(r, p, cfg.FPS)
	loop.SetMaxFrames(frameLimit(cmd))

	logger.Debug("starting loop",
		"presentation", mode,
		"projection", opts.Projection,
		"size", opts.CubeSize,
		"points", r.Sampler().Emissions(),
		"fps", cfg.FPS,
	)

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Debug("interrupted", "frame", r.FrameNumber())
		return nil
	}
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	return playLive(render.NewRenderer(opts), cfg.FPS, frameLimit(cmd))
}

func playLive(r *render.Renderer, fps, maxFrames int) error {
	m := viz.NewModel(r, fps, maxFrames, viz.GetTheme(theme))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
