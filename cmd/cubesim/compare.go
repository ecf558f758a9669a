package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/san-kum/cubesim/internal/config"
	"github.com/san-kum/cubesim/internal/geom"
	"github.com/san-kum/cubesim/internal/render"
	"github.com/spf13/cobra"
)

const defaultExplodedGap = 5.0

// applyVariant switches one setting of cfg by variant name.
func applyVariant(cfg config.Config, name string) (config.Config, error) {
	switch name {
	case string(geom.Fused), string(geom.Sequential):
		cfg.Rotation.Method = name
	case string(render.Perspective), string(render.Orthographic):
		cfg.Projection.Mode = name
	case string(render.Centered):
		cfg.Cube.Layout = name
	case string(render.Exploded):
		cfg.Cube.Layout = name
		if cfg.Cube.Gap == 0 {
			cfg.Cube.Gap = defaultExplodedGap
		}
	default:
		return cfg, fmt.Errorf("unknown variant %q", name)
	}
	return cfg, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	frames := frameLimit(cmd)
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	if len(args) == 0 {
		args = []string{string(geom.Fused), string(geom.Sequential)}
	}

	variants := make([]render.Variant, 0, len(args))
	for _, name := range args {
		vcfg, err := applyVariant(*cfg, name)
		if err != nil {
			return err
		}
		opts, err := vcfg.RenderOptions()
		if err != nil {
			return fmt.Errorf("variant %s: %w", name, err)
		}
		variants = append(variants, render.Variant{Name: name, Options: opts})
	}

	results, err := render.NewEnsemble(frames, variants...).Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing %d variants over %d frames (size %d)\n\n", len(results), frames, cfg.Cube.Size)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tVISIBLE\tAVG VISIBLE\tOCCLUDED\tDIFF\tTIME")

	base := results[0].Final
	for _, res := range results {
		last := res.Stats[len(res.Stats)-1]
		sum := 0
		for _, s := range res.Stats {
			sum += s.Visible
		}
		avg := float64(sum) / float64(len(res.Stats))
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\t%d\t%v\n",
			res.Name, last.Visible, avg, last.Occluded, render.Diff(base, res.Final), res.Elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}
