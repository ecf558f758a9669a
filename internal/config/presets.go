package config

import (
	"sort"

	"github.com/san-kum/cubesim/internal/geom"
)

// Presets are named per-frame rotation increments.
var Presets = map[string]geom.Increments{
	"fast": {A: 0.05, B: 0.05, C: 0.01},
	"slow": {A: 0.0015, B: 0.0015, C: 0.0001},
	"web":  {A: 0.01, B: 0.01, C: 0.001},
}

func GetPreset(name string) (geom.Increments, bool) {
	inc, ok := Presets[name]
	return inc, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
