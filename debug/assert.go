//go:build debug

package debug

import "fmt"

// Guard assertions with non-trivial arguments (i.e. anything that could
// allocate) with `if debug.Enabled {...}`, otherwise they can't be
// removed in release builds.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func Assertf(b bool, format string, args ...any) {
	if !b {
		panic(fmt.Sprintf(format, args...))
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}
