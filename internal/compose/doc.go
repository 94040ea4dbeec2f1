// Package compose renders a source image onto a solid-color canvas.
//
// The compositor is orchestration only: it picks the fill color (explicit
// override or inferred background), allocates the canvas, and applies
// rotation, scaling, and anchor placement in a fixed order. The order
// matters: scaling is resolved against the post-rotation size, because
// rotation grows the bounding box, and placement uses the post-scale size.
package compose
