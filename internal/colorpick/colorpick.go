// Package colorpick holds the state of the color selector widget and the
// reducer that transitions it.
package colorpick

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is the color a freshly mounted selector shows.
const DefaultColor = "#FFFFFF"

// ErrInvalidHex is returned when a string is not a "#rgb" or "#rrggbb" color.
var ErrInvalidHex = errors.New("invalid hex color")

// State is the color selector's only piece of state.
type State struct {
	Color string
}

// New returns the initial state.
func New() State {
	return State{Color: DefaultColor}
}

// Action is a color selector event. The set is closed: only types in this
// package implement it.
type Action interface {
	colorAction()
}

// ColorChanged carries the value picked by the input control.
type ColorChanged struct {
	Value string
}

func (ColorChanged) colorAction() {}

// Reduce applies a to s and returns the resulting state.
// ColorChanged replaces the color as given; no normalization is applied.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ColorChanged:
		s.Color = a.Value
	}
	return s
}

// Caption is the text shown inside the swatch.
func Caption(s State) string {
	return "Selected Color: " + s.Color
}

// ParseHex validates a hex color string. The input is returned unchanged
// on success so the displayed value matches what the user typed.
func ParseHex(s string) (string, error) {
	if len(s) != 4 && len(s) != 7 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if _, err := colorful.Hex(s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return s, nil
}

// TextColor returns black or white, whichever reads better on top of hex.
// Unparsable input yields black.
func TextColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Clamped().Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
