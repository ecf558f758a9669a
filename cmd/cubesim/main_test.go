package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/cubesim/internal/config"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeConfig(t *testing.T, s string) config.Config {
	t.Helper()
	var cfg config.Config
	if err := yaml.Unmarshal([]byte(s), &cfg); err != nil {
		t.Fatalf("invalid yaml output: %v\n%s", err, s)
	}
	return cfg
}

func TestConfigCommandAppliesChangedFlags(t *testing.T) {
	out, err := execute(t, "config", "--width", "80", "--preset", "slow", "--projection", "orthographic")
	if err != nil {
		t.Fatal(err)
	}
	cfg := decodeConfig(t, out)

	if cfg.Display.Width != 80 {
		t.Errorf("expected width 80, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != config.DefaultHeight {
		t.Errorf("unchanged height should keep the default, got %d", cfg.Display.Height)
	}
	if cfg.Rotation.Preset != "slow" || cfg.Projection.Mode != "orthographic" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	file := config.DefaultConfig()
	file.Display.Width = 100
	file.Display.Height = 30
	file.Cube.Size = 10
	if err := config.Save(path, file); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path, "--height", "20")
	if err != nil {
		t.Fatal(err)
	}
	cfg := decodeConfig(t, out)

	if cfg.Display.Width != 100 || cfg.Cube.Size != 10 {
		t.Errorf("file values lost: width %d size %d", cfg.Display.Width, cfg.Cube.Size)
	}
	if cfg.Display.Height != 20 {
		t.Errorf("flag should override file height, got %d", cfg.Display.Height)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"config", "--camera", "10"}, config.ErrCameraTooClose},
		{[]string{"config", "--width", "0"}, config.ErrInvalidDimensions},
		{[]string{"config", "--preset", "warp"}, config.ErrUnknownPreset},
		{[]string{"render", "--presentation", "hologram"}, config.ErrUnknownPresentation},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestRenderCommandWritesExports(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "cube.svg")
	gif := filepath.Join(dir, "cube.gif")

	out, err := execute(t, "render", "--width", "40", "--height", "20", "--size", "5",
		"--frames", "3", "--svg", svg, "--gif", gif)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out, "\n")
	if len(lines[0]) != 40 {
		t.Errorf("expected 40-wide rows, got %q", lines[0])
	}
	if !strings.Contains(out, "wrote "+svg) || !strings.Contains(out, "(3 frames)") {
		t.Errorf("missing export lines:\n%s", out)
	}
	for _, p := range []string{svg, gif} {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", p, err)
		}
	}
}

func TestRenderFirstFrameShowsFront(t *testing.T) {
	out, err := execute(t, "render", "--width", "40", "--height", "20", "--size", "5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "@") {
		t.Errorf("expected the front face in the first frame:\n%s", out)
	}
	if strings.Count(out, "\n") != 20 {
		t.Errorf("expected 20 rows, got %d", strings.Count(out, "\n"))
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "--frames", "12", "--width", "40", "--height", "20", "--size", "5")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"frames: 12", "visible cells per frame", "FACE", "front", "top"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--frames", "2", "--width", "60", "--height", "30")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "FRAMES/SEC") {
		t.Errorf("missing table header:\n%s", out)
	}
	// One row per size plus the header.
	rows := strings.Count(out[strings.Index(out, "SIZE"):], "\n")
	if rows != len(benchSizes)+1 {
		t.Errorf("expected %d rows, got %d", len(benchSizes)+1, rows)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("preset %s not listed", name)
		}
	}
}

func TestFrameLimitPerCommand(t *testing.T) {
	root := newRootCmd()
	want := map[string]int{"play": 0, "live": 0, "render": 1, "bench": 100, "stats": 240}
	for _, c := range root.Commands() {
		n, ok := want[c.Name()]
		if !ok {
			continue
		}
		if got := frameLimit(c); got != n {
			t.Errorf("%s: expected default %d frames, got %d", c.Name(), n, got)
		}
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", "--frames", "3", "--width", "60", "--height", "30", "--size", "8",
		"fused", "sequential", "orthographic", "exploded")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "comparing 4 variants over 3 frames") {
		t.Errorf("missing summary:\n%s", out)
	}
	for _, name := range []string{"fused", "sequential", "orthographic", "exploded"} {
		if !strings.Contains(out, "\n"+name) {
			t.Errorf("missing row for %s:\n%s", name, out)
		}
	}

	if _, err := execute(t, "compare", "wobbly"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestApplyVariant(t *testing.T) {
	base := *config.DefaultConfig()

	cfg, err := applyVariant(base, "exploded")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cube.Layout != "exploded" || cfg.Cube.Gap != defaultExplodedGap {
		t.Errorf("exploded variant not applied: %+v", cfg.Cube)
	}
	if base.Cube.Layout != "centered" {
		t.Error("applyVariant must not modify its input")
	}

	cfg, _ = applyVariant(base, "sequential")
	if cfg.Rotation.Method != "sequential" {
		t.Errorf("expected sequential, got %s", cfg.Rotation.Method)
	}
}

func TestStatsCommandWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	out, err := execute(t, "stats", "--frames", "4", "--width", "40", "--height", "20", "--size", "5", "--json", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "wrote "+path) {
		t.Errorf("missing json line:\n%s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Frames []struct {
			Frame int `json:"frame"`
		} `json:"frames"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.Frames) != 4 || decoded.Frames[3].Frame != 3 {
		t.Errorf("unexpected frames: %+v", decoded.Frames)
	}
}
