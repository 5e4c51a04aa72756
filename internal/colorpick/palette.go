package colorpick

import "strings"

// DefaultPalette is offered when the config does not define one.
var DefaultPalette = []string{
	"#FFFFFF",
	"#000000",
	"#FF0000",
	"#FF8800",
	"#FFCC00",
	"#00AA00",
	"#00CCCC",
	"#0066FF",
	"#874BFD",
	"#FF66CC",
}

// IndexOf returns the palette position of color, or -1. Hex digits are
// compared case-insensitively.
func IndexOf(palette []string, color string) int {
	for i, c := range palette {
		if strings.EqualFold(c, color) {
			return i
		}
	}
	return -1
}
