// Package cli resolves command-line arguments into a validated run
// configuration and drives the load → composite → save pipeline.
//
// Validation is fail-fast: contradictory or malformed input (two scale
// policies at once, an unknown anchor, a negative rotation, a bad size or
// color string) is rejected with ErrConfigConflict before any image file
// is opened.
package cli
