// Package clock provides a tiny time abstraction.
//
// The generator packages depend on the Clocker interface instead of calling
// time.Now() directly, so tests can substitute a fixed or scripted clock and
// exercise timestamp-dependent behavior deterministically.
package clock
