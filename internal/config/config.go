package config

import (
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"github.com/san-kum/cubesim/internal/geom"
	"github.com/san-kum/cubesim/internal/present"
	"github.com/san-kum/cubesim/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth          = 140
	DefaultHeight         = 44
	DefaultCubeSize       = 20
	DefaultCameraDistance = 100.0
	DefaultScale          = 40.0
	DefaultOrthoScale     = 0.5
	DefaultAspect         = 2.0
	DefaultBackground     = " "
	DefaultPreset         = "fast"
	DefaultFPS            = 30
)

type Config struct {
	Display      DisplayConfig    `yaml:"display"`
	Cube         CubeConfig       `yaml:"cube"`
	Projection   ProjectionConfig `yaml:"projection"`
	Rotation     RotationConfig   `yaml:"rotation"`
	Presentation string           `yaml:"presentation"`
	FPS          int              `yaml:"fps"`
}

type DisplayConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

type CubeConfig struct {
	Size   int     `yaml:"size"`
	Layout string  `yaml:"layout"`
	Gap    float64 `yaml:"gap"`
}

type ProjectionConfig struct {
	Mode           string  `yaml:"mode"`
	CameraDistance float64 `yaml:"camera_distance"`
	Scale          float64 `yaml:"scale"`
	OrthoScale     float64 `yaml:"ortho_scale"`
	Aspect         float64 `yaml:"aspect"`
}

// RotationConfig selects increments by preset name. When Preset is empty the
// explicit A, B and C increments are used.
type RotationConfig struct {
	Preset string  `yaml:"preset"`
	Method string  `yaml:"method"`
	A      float64 `yaml:"a"`
	B      float64 `yaml:"b"`
	C      float64 `yaml:"c"`
}

func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Background: DefaultBackground,
		},
		Cube: CubeConfig{
			Size:   DefaultCubeSize,
			Layout: string(render.Centered),
		},
		Projection: ProjectionConfig{
			Mode:           string(render.Perspective),
			CameraDistance: DefaultCameraDistance,
			Scale:          DefaultScale,
			OrthoScale:     DefaultOrthoScale,
			Aspect:         DefaultAspect,
		},
		Rotation: RotationConfig{
			Preset: DefaultPreset,
			Method: string(geom.Fused),
		},
		Presentation: string(present.Line),
		FPS:          DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Increments resolves the rotation preset or explicit increments.
func (c *Config) Increments() (geom.Increments, error) {
	if c.Rotation.Preset == "" {
		return geom.Increments{A: c.Rotation.A, B: c.Rotation.B, C: c.Rotation.C}, nil
	}
	inc, ok := GetPreset(c.Rotation.Preset)
	if !ok {
		return geom.Increments{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, c.Rotation.Preset, ListPresets())
	}
	return inc, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display %dx%d", ErrInvalidDimensions, c.Display.Width, c.Display.Height)
	}
	if c.Cube.Size <= 0 {
		return fmt.Errorf("%w: cube size %d", ErrInvalidDimensions, c.Cube.Size)
	}
	if utf8.RuneCountInString(c.Display.Background) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidBackground, c.Display.Background)
	}
	if _, err := render.ParseProjection(c.Projection.Mode); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownProjection, c.Projection.Mode)
	}
	if _, err := present.ParseMode(c.Presentation); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownPresentation, c.Presentation)
	}
	if _, err := render.ParseLayout(c.Cube.Layout); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLayout, c.Cube.Layout)
	}
	if _, err := geom.ParseRotationMethod(c.Rotation.Method); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, c.Rotation.Method)
	}
	if _, err := c.Increments(); err != nil {
		return err
	}
	if c.Projection.Scale <= 0 || c.Projection.OrthoScale <= 0 || c.Projection.Aspect <= 0 || c.Cube.Gap < 0 || c.FPS < 0 {
		return ErrInvalidScale
	}

	gap := 0.0
	if c.Cube.Layout == string(render.Exploded) {
		gap = c.Cube.Gap
	}
	// A corner at (d, d, d) can rotate onto the view axis.
	extent := math.Sqrt(3) * (float64(c.Cube.Size) + gap)
	if c.Projection.CameraDistance <= extent {
		return fmt.Errorf("%w: %.2f <= %.2f", ErrCameraTooClose, c.Projection.CameraDistance, extent)
	}
	return nil
}

// RenderOptions validates c and converts it for render.NewRenderer.
func (c *Config) RenderOptions() (render.Options, error) {
	if err := c.Validate(); err != nil {
		return render.Options{}, err
	}
	inc, _ := c.Increments()
	bg, _ := utf8.DecodeRuneInString(c.Display.Background)
	return render.Options{
		Width:          c.Display.Width,
		Height:         c.Display.Height,
		Background:     bg,
		Projection:     render.Projection(c.Projection.Mode),
		CameraDistance: c.Projection.CameraDistance,
		Scale:          c.Projection.Scale,
		OrthoScale:     c.Projection.OrthoScale,
		Aspect:         c.Projection.Aspect,
		CubeSize:       c.Cube.Size,
		Layout:         render.Layout(c.Cube.Layout),
		Gap:            c.Cube.Gap,
		Method:         geom.RotationMethod(c.Rotation.Method),
		Increments:     inc,
	}, nil
}
