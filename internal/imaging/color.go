package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// namedColors covers the everyday color words accepted on the command
// line. Anything fancier must be spelled as hex or a decimal triplet.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"navy":    "#000080",
	"olive":   "#808000",
	"purple":  "#800080",
	"teal":    "#008080",
	"orange":  "#ffa500",
}

// ParseColor turns a user-supplied color string into a color.NRGBA value.
//
// Accepted forms:
//   - hex: "#RRGGBB" or "#RGB", with or without the leading '#'
//   - decimal triplet: "R,G,B" or "R,G,B,A", each component 0-255
//   - a small set of named colors ("white", "navy", ...)
//
// Three-component inputs are normalized to full opacity (alpha 255).
// Matching is case-insensitive and surrounding whitespace is ignored.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}

	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if strings.Contains(s, ",") {
		return parseTriplet(s)
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		// Expand #RGB shorthand to #RRGGBB.
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	if len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RGB or #RRGGBB", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// parseTriplet parses "R,G,B" or "R,G,B,A" decimal component lists.
func parseTriplet(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("color %q: want 3 or 4 components, got %d", s, len(parts))
	}

	comps := [4]uint8{0, 0, 0, 255}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("color %q: component %q must be an integer 0-255", s, part)
		}
		comps[i] = uint8(n)
	}
	return color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}
