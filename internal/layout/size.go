package layout

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Size is a width × height pixel extent.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Presets maps named device sizes to canvas dimensions.
var Presets = map[string]Size{
	"android-xxxhdpi": {Width: 1280, Height: 1920},
	"android-xxhdpi":  {Width: 960, Height: 1600},
	"android-xhdpi":   {Width: 640, Height: 960},
	"android-hdpi":    {Width: 480, Height: 800},
	"android-mdpi":    {Width: 320, Height: 480},
	"android-ldpi":    {Width: 240, Height: 320},
	"hd":              {Width: 1366, Height: 768},
	"fullhd":          {Width: 1920, Height: 1080},
	"4k-uhd":          {Width: 3840, Height: 2160},
	"4k-dci":          {Width: 4096, Height: 2160},
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseSize resolves a canvas size string: either a preset name such as
// "fullhd" or an explicit "WxH" pair of positive integers.
func ParseSize(s string) (Size, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if sz, ok := Presets[s]; ok {
		return sz, nil
	}

	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return Size{}, fmt.Errorf("unknown size %q (use WxH or one of %s)", s, strings.Join(PresetNames(), ", "))
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("invalid size %q: width and height must be positive integers", s)
	}
	return Size{Width: w, Height: h}, nil
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
