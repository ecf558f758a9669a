package present

import "fmt"

// Mode names a presentation strategy.
type Mode string

const (
	Line   Mode = "line"
	Cell   Mode = "cell"
	Screen Mode = "screen"
	Live   Mode = "live"
)

// Color is the ANSI foreground color index every presenter uses (green).
const Color = "2"

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Line, Cell, Screen, Live:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown presentation %q", s)
}
