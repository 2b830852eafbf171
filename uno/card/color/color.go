package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Wild
)

// Playable lists the colors a wild card can be assigned.
var Playable = []Color{Red, Yellow, Green, Blue}

var Stdout io.Writer = color.Output

var names = map[Color]string{
	None:   "none",
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Wild:   "wild",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// IsPlayable reports whether c is one of the four table colors.
func (c Color) IsPlayable() bool {
	return c >= Red && c <= Blue
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves a playable color from its name or its initial.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range Playable {
		full := names[candidate]
		if name == full || (len(name) == 1 && name[0] == full[0]) {
			return candidate, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
