package cli

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/ironsheep/wallpaperer/internal/compose"
	"github.com/ironsheep/wallpaperer/internal/imaging"
	"github.com/ironsheep/wallpaperer/internal/layout"
)

// ErrConfigConflict marks invalid or contradictory command-line input. It
// is always raised before any image processing begins.
var ErrConfigConflict = errors.New("invalid configuration")

// Config is the fully resolved input for one run.
type Config struct {
	InputPath  string
	OutputPath string
	CanvasSize layout.Size
	Anchor     layout.Anchor
	Options    compose.Options
}

// ParseArgs resolves command-line arguments (excluding the program name)
// into a validated Config. Usage and flag errors are written to stderr.
func ParseArgs(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("wallpaperer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		colorStr    string
		sizeStr     string
		output      string
		dontIgnore  bool
		simple      bool
		dontCrop    bool
		rotate      int
		scaleImage  float64
		scaleCanvas float64
	)
	fs.StringVar(&colorStr, "color", "", "canvas fill color (hex, R,G,B triplet, or name); skips background detection")
	fs.StringVar(&colorStr, "c", "", "shorthand for -color")
	fs.StringVar(&sizeStr, "size", "fullhd", "canvas size: WxH or a preset name")
	fs.StringVar(&sizeStr, "s", "fullhd", "shorthand for -size")
	fs.StringVar(&output, "o", "output.png", "output file path")
	fs.BoolVar(&dontIgnore, "dont-ignore", false, "also sample image edges covered by a canvas edge")
	fs.BoolVar(&simple, "simple", false, "cheaper voting detection; may be less accurate, but handles very large images")
	fs.BoolVar(&dontCrop, "dont-crop", false, "never scale the image down, even when it exceeds the canvas")
	fs.IntVar(&rotate, "rotate", 0, "clockwise rotation in degrees (non-negative)")
	fs.Float64Var(&scaleImage, "scale-image", 0, "resize the image to this fraction of its original size")
	fs.Float64Var(&scaleCanvas, "scale-canvas", 0, "resize so the image height is this fraction of the canvas height")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wallpaperer [options] FILE POSITION\n\n")
		fmt.Fprintf(stderr, "Paste FILE onto a canvas filled with its background color.\n")
		fmt.Fprintf(stderr, "POSITION is one of: %s\n", strings.Join(layout.AnchorNames(), ", "))
		fmt.Fprintf(stderr, "Size presets: %s\n\n", strings.Join(layout.PresetNames(), ", "))
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected FILE and POSITION arguments, got %d", ErrConfigConflict, len(rest))
	}

	anchor, err := layout.ParseAnchor(rest[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigConflict, err)
	}

	size, err := layout.ParseSize(sizeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigConflict, err)
	}

	if rotate < 0 {
		return nil, fmt.Errorf("%w: rotation must be non-negative, got %d", ErrConfigConflict, rotate)
	}

	scale, err := resolveScalePolicy(dontCrop, scaleImage, scaleCanvas)
	if err != nil {
		return nil, err
	}

	var fill *color.NRGBA
	if colorStr != "" {
		c, perr := imaging.ParseColor(colorStr)
		if perr != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigConflict, perr)
		}
		fill = &c
	}

	return &Config{
		InputPath:  rest[0],
		OutputPath: output,
		CanvasSize: size,
		Anchor:     anchor,
		Options: compose.Options{
			Color:              fill,
			IgnoreCoveredEdges: !dontIgnore,
			Simple:             simple,
			Rotate:             rotate,
			Scale:              scale,
		},
	}, nil
}

// resolveScalePolicy maps the three scale flags onto a single
// ScaleOperation. Requesting more than one policy is a conflict; with no
// flags set, oversized images are auto-fitted.
func resolveScalePolicy(dontCrop bool, scaleImage, scaleCanvas float64) (layout.ScaleOperation, error) {
	var (
		op       = layout.ScaleOperation{Kind: layout.ScaleAutoFit}
		policies int
	)

	if dontCrop {
		op = layout.ScaleOperation{Kind: layout.ScaleNone}
		policies++
	}
	if scaleImage != 0 {
		if scaleImage < 0 {
			return op, fmt.Errorf("%w: -scale-image must be positive, got %v", ErrConfigConflict, scaleImage)
		}
		op = layout.ScaleOperation{Kind: layout.ScaleRelImage, Fraction: scaleImage}
		policies++
	}
	if scaleCanvas != 0 {
		if scaleCanvas < 0 {
			return op, fmt.Errorf("%w: -scale-canvas must be positive, got %v", ErrConfigConflict, scaleCanvas)
		}
		op = layout.ScaleOperation{Kind: layout.ScaleRelCanvas, Fraction: scaleCanvas}
		policies++
	}

	if policies > 1 {
		return op, fmt.Errorf("%w: at most one of -dont-crop, -scale-image, -scale-canvas may be given", ErrConfigConflict)
	}
	return op, nil
}
