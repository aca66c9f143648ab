//go:build !clext_single_platform

package ext

// DefaultMode is the mode New uses when no WithMode option is given.
const DefaultMode = MultiPlatform
