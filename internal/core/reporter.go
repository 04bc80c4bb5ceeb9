// Package core provides the internal implementation of testdouble's
// description-based equality and invocation logs.
package core

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location identifies a point in source code, used only in failure messages.
type Location struct {
	File string
	Line int
}

// Caller returns the location of the caller, skip frames above the function
// calling Caller. Caller(0) is the line that called Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "unknown", Line: 0}
	}

	return Location{File: file, Line: line}
}

func (l Location) String() string {
	if l.File == "" {
		return "unknown location"
	}

	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}

// TestReporter is the minimal interface testdouble needs from test frameworks.
// Failures are reported with Errorf so the rest of the test keeps running.
type TestReporter interface {
	Helper()
	Errorf(format string, args ...any)
}
