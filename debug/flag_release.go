//go:build !debug

// Package debug exposes the build-time debug flag. Building with the
// "debug" tag turns on verbose logging and extra assertions.
package debug

const Debug = false
