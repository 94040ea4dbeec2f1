package layout

import (
	"image"
	"testing"
)

func TestPlace(t *testing.T) {
	img := Size{Width: 10, Height: 10}
	canvas := Size{Width: 100, Height: 80}

	tests := []struct {
		anchor Anchor
		want   image.Point
	}{
		{TopLeft, image.Pt(0, 0)},
		{TopRight, image.Pt(90, 0)},
		{BottomLeft, image.Pt(0, 70)},
		{BottomRight, image.Pt(90, 70)},
		{Center, image.Pt(45, 35)},
		{CenterTop, image.Pt(45, 0)},
		{CenterBottom, image.Pt(45, 70)},
		{CenterLeft, image.Pt(0, 35)},
		{CenterRight, image.Pt(90, 35)},
	}

	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			got := tt.anchor.Place(img, canvas)
			if got != tt.want {
				t.Errorf("Place: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlace_OddCenterFloors(t *testing.T) {
	// 100-7 = 93; floor(93/2) = 46.
	got := Center.Place(Size{Width: 7, Height: 7}, Size{Width: 100, Height: 100})
	if got != image.Pt(46, 46) {
		t.Errorf("Place: got %v, want (46,46)", got)
	}
}

func TestPlace_NegativeOverhang(t *testing.T) {
	// Image larger than the canvas: offsets go negative and must not be
	// clamped. Centering floors toward negative infinity: floor(-5/2) = -3.
	img := Size{Width: 10, Height: 10}
	canvas := Size{Width: 5, Height: 5}

	tests := []struct {
		anchor Anchor
		want   image.Point
	}{
		{TopLeft, image.Pt(0, 0)},
		{BottomRight, image.Pt(-5, -5)},
		{Center, image.Pt(-3, -3)},
		{CenterBottom, image.Pt(-3, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			got := tt.anchor.Place(img, canvas)
			if got != tt.want {
				t.Errorf("Place: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"center", Center},
		{"tl", TopLeft},
		{"top-left", TopLeft},
		{"tr", TopRight},
		{"bl", BottomLeft},
		{"br", BottomRight},
		{"bottom-right", BottomRight},
		{"cl", CenterLeft},
		{"cr", CenterRight},
		{"ct", CenterTop},
		{"cb", CenterBottom},
		{"cb-bottom", CenterBottom},
		{"Center-Top", CenterTop},
		{"  br  ", BottomRight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if err != nil {
				t.Fatalf("ParseAnchor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnchor(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAnchor_Unknown(t *testing.T) {
	for _, in := range []string{"", "middle", "top", "northwest"} {
		if _, err := ParseAnchor(in); err == nil {
			t.Errorf("ParseAnchor(%q) should fail", in)
		}
	}
}

func TestCoveredSides(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   Sides
	}{
		{Center, Sides{}},
		{TopLeft, Sides{Left: true, Top: true}},
		{TopRight, Sides{Right: true, Top: true}},
		{BottomLeft, Sides{Left: true, Bottom: true}},
		{BottomRight, Sides{Right: true, Bottom: true}},
		{CenterTop, Sides{Top: true}},
		{CenterBottom, Sides{Bottom: true}},
		{CenterLeft, Sides{Left: true}},
		{CenterRight, Sides{Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			if got := tt.anchor.CoveredSides(); got != tt.want {
				t.Errorf("CoveredSides: got %+v, want %+v", got, tt.want)
			}
		})
	}
}
