// Package query derives every screen's view from a catalog snapshot.
//
// All functions are pure: they never modify their inputs and preserve the
// insertion order of the underlying collections.
package query
