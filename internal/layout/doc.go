// Package layout provides the pure geometry behind wallpaper compositing:
// anchor placement, canvas size presets, and scale-operation resolution.
//
// Everything in this package is arithmetic over integer pixel sizes. No
// function reads pixel data, performs I/O, or mutates its inputs, which
// keeps the whole package trivially testable against closed-form expected
// values.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner:
//   - X increases rightward
//   - Y increases downward
//
// Placement results may be negative: an image larger than its canvas
// legitimately overhangs it, and callers paste with the negative offset
// rather than clamping.
//
// # Rounding
//
// All fractional pixel values are floored, including negative centering
// offsets (floor(-2.5) is -3, not -2). Scale resolution clamps each
// resulting dimension to a minimum of 1 pixel so no degenerate size can
// escape into the compositing pipeline.
package layout
