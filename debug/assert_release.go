//go:build !debug

// Package debug provides assertions that can be enabled with the debug
// build tag or will otherwise compile to no-ops.
//
// The register decoders use them to guard the slice table contracts,
// which can only be violated by a defect in the tables themselves, not
// by bad runtime input.
package debug

// Guard assertions with non-trivial arguments (i.e. anything that could
// allocate) with `if debug.Enabled {...}`, otherwise they can't be
// removed in release builds.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// Assertf panics with a formatted message if b is false.
func Assertf(b bool, format string, args ...any) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
