package util

import (
	"fmt"
)

// Indicates a condition that should never happen. If encountered, execution will halt and the
// resulting state is undefined.
func Assert(b bool) {
	if !b {
		panic("assertion failed")
	}
}

// As Assert, with a format string.
func AssertMsg(b bool, format string, a ...interface{}) {
	if !b {
		panic(fmt.Sprintf(format, a...))
	}
}

// Asserts that err is nil.
func AssertNoError(err error) {
	if err != nil {
		panic(fmt.Sprintf("assertion failed: %s", err))
	}
}
