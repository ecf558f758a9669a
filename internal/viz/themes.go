package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the live view. Cube is the one color used for
// every face glyph.
type Theme struct {
	Name   string
	Cube   lipgloss.Color
	Header lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

// Available themes
var (
	ThemeRetroGreen = Theme{
		Name:   "retro",
		Cube:   lipgloss.Color("#00ff00"), // Green phosphor
		Header: lipgloss.Color("#88ff88"),
		Label:  lipgloss.Color("#00aa00"),
		Value:  lipgloss.Color("#ccffcc"),
		Muted:  lipgloss.Color("#005500"),
		Border: lipgloss.Color("#004400"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Cube:   lipgloss.Color("#ff00ff"), // Magenta
		Header: lipgloss.Color("#00ffff"),
		Label:  lipgloss.Color("#888899"),
		Value:  lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Border: lipgloss.Color("#444466"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Cube:   lipgloss.Color("#ffffff"),
		Header: lipgloss.Color("#ffffff"),
		Label:  lipgloss.Color("#888888"),
		Value:  lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#555555"),
		Border: lipgloss.Color("#333333"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Cube:   lipgloss.Color("#00a8cc"),
		Header: lipgloss.Color("#ffd700"),
		Label:  lipgloss.Color("#4488aa"),
		Value:  lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#335577"),
		Border: lipgloss.Color("#0077be"),
	}

	// All available themes
	Themes = []Theme{
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to retro green.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRetroGreen
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
