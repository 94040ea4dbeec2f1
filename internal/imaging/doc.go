// Package imaging handles the I/O edges of the tool: loading source
// images, parsing user-supplied color strings, and writing the composited
// canvas.
//
// # Supported Formats
//
// The loader decodes PNG, JPEG, GIF, BMP, TIFF, and WebP. Output format is
// chosen by file extension; WebP is decode-only.
//
// # Color Representation
//
// User-facing colors are parsed into fully opaque color.NRGBA values.
// Three-component inputs are normalized to four components with alpha 255
// before use as a canvas fill.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless.
package imaging
