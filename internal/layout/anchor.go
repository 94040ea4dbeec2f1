package layout

import (
	"fmt"
	"image"
	"sort"
	"strings"
)

// Anchor identifies a named position on the canvas where the image is
// placed. The zero value is Center.
type Anchor int

// The nine canonical anchors.
const (
	Center Anchor = iota
	CenterTop
	CenterBottom
	CenterLeft
	CenterRight
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var anchorNames = map[Anchor]string{
	Center:       "center",
	CenterTop:    "center-top",
	CenterBottom: "center-bottom",
	CenterLeft:   "center-left",
	CenterRight:  "center-right",
	TopLeft:      "top-left",
	TopRight:     "top-right",
	BottomLeft:   "bottom-left",
	BottomRight:  "bottom-right",
}

// anchorAliases maps every accepted spelling to its canonical anchor.
// Short forms and the full names share entries in one table; alias
// resolution is a lookup, not separate logic.
var anchorAliases = map[string]Anchor{
	"center":        Center,
	"ct":            CenterTop,
	"center-top":    CenterTop,
	"cb":            CenterBottom,
	"cb-bottom":     CenterBottom,
	"center-bottom": CenterBottom,
	"cl":            CenterLeft,
	"center-left":   CenterLeft,
	"cr":            CenterRight,
	"center-right":  CenterRight,
	"tl":            TopLeft,
	"top-left":      TopLeft,
	"tr":            TopRight,
	"top-right":     TopRight,
	"bl":            BottomLeft,
	"bottom-left":   BottomLeft,
	"br":            BottomRight,
	"bottom-right":  BottomRight,
}

// ParseAnchor resolves an anchor name or alias to its canonical value.
//
// Accepted spellings are the nine canonical names plus the short forms
// tl, tr, bl, br, cl, cr, ct, cb and cb-bottom. Matching is
// case-insensitive. Unknown names return an error listing the canonical
// choices.
func ParseAnchor(s string) (Anchor, error) {
	a, ok := anchorAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Center, fmt.Errorf("unknown anchor %q (choose from %s)", s, strings.Join(AnchorNames(), ", "))
	}
	return a, nil
}

// AnchorNames returns the canonical anchor names in sorted order.
func AnchorNames() []string {
	names := make([]string, 0, len(anchorNames))
	for _, name := range anchorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the canonical name of the anchor.
func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// Place returns the top-left paste coordinate for an image of imageSize on
// a canvas of canvasSize.
//
// Centered axes use floored halving, so odd differences round toward
// negative infinity. Results may be negative when the image is larger than
// the canvas; the overhang is a valid composite and is never clamped here.
func (a Anchor) Place(imageSize, canvasSize Size) image.Point {
	dx := canvasSize.Width - imageSize.Width
	dy := canvasSize.Height - imageSize.Height

	switch a {
	case TopLeft:
		return image.Pt(0, 0)
	case TopRight:
		return image.Pt(dx, 0)
	case BottomLeft:
		return image.Pt(0, dy)
	case BottomRight:
		return image.Pt(dx, dy)
	case CenterTop:
		return image.Pt(half(dx), 0)
	case CenterBottom:
		return image.Pt(half(dx), dy)
	case CenterLeft:
		return image.Pt(0, half(dy))
	case CenterRight:
		return image.Pt(dx, half(dy))
	default: // Center
		return image.Pt(half(dx), half(dy))
	}
}

// Sides reports which canvas sides an anchor presses the image against.
type Sides struct {
	Left   bool
	Top    bool
	Right  bool
	Bottom bool
}

// CoveredSides returns the canvas sides this anchor pins the image to.
// An image edge lying on a covered side is a crop line rather than
// foreground-adjacent background, so background sampling skips it by
// default.
func (a Anchor) CoveredSides() Sides {
	switch a {
	case TopLeft:
		return Sides{Left: true, Top: true}
	case TopRight:
		return Sides{Right: true, Top: true}
	case BottomLeft:
		return Sides{Left: true, Bottom: true}
	case BottomRight:
		return Sides{Right: true, Bottom: true}
	case CenterTop:
		return Sides{Top: true}
	case CenterBottom:
		return Sides{Bottom: true}
	case CenterLeft:
		return Sides{Left: true}
	case CenterRight:
		return Sides{Right: true}
	default: // Center touches no side
		return Sides{}
	}
}

// half floors n/2 toward negative infinity. Go's integer division
// truncates toward zero, which would misplace centered overhangs.
func half(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
