// Package detect infers the background color of an image.
//
// The inference samples the pixels along the image boundary, grows
// 4-connected same-color regions from them, and picks the color of the
// largest region. The intuition is that whatever color dominates the
// connected areas touching the image border is what a person would call
// the background.
//
// # Edge Visibility
//
// Sampling is anchor-aware. An edge pressed against a canvas side by the
// chosen anchor is assumed to be a crop line: the picture likely continues
// past it, so its pixels say nothing reliable about the background. Those
// edges are skipped unless the caller asks for all four.
//
// # Detection Modes
//
// The default flood-fill mode is exact but visits up to every pixel of the
// image (O(width × height)). The voting mode only tallies the boundary
// pixels themselves (O(perimeter)) and is intended as a fallback for very
// large images.
//
// The two modes are not guaranteed to agree: background pixels scattered
// non-contiguously along the edges can win a vote while each of their
// connected regions stays small. The divergence is inherent to the two
// algorithms and is expected behavior, not a defect.
package detect
