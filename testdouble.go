// Package testdouble provides small helpers for hand-written test doubles:
// description-based equality for values that have no useful == of their own,
// and an embeddable invocation log with an ordered, element-by-element assertion.
//
// This is the public API entry point. Implementation lives in internal/core.
package testdouble

import (
	"github.com/toejough/testdouble/internal/core"
)

// Described wraps a value so it compares equal to another wrapped value when
// both render to the same text.
type Described[T any] = core.Described[T]

// Describe wraps v using DefaultRender.
func Describe[T any](v T) Described[T] {
	return core.Describe(v)
}

// DescribeWith wraps v using the given renderer.
func DescribeWith[T any](v T, render Renderer[T]) Described[T] {
	return core.DescribeWith(v, render)
}

// SameDescription reports whether a and b render identically.
func SameDescription[T any](a, b T) bool {
	return core.SameDescription(a, b)
}

// Renderer projects a value onto the text used to compare it.
type Renderer[T any] = core.Renderer[T]

// DefaultRender renders v with fmt's %+v verb.
func DefaultRender[T any](v T) string {
	return core.DefaultRender(v)
}

// DeepRender renders v deeply, ignoring pointer addresses.
func DeepRender[T any](v T) string {
	return core.DeepRender(v)
}

// ErrTypeMismatch is wrapped by matcher errors when the actual value has the wrong type.
//
//nolint:gochecknoglobals // re-exported sentinel
var ErrTypeMismatch = core.ErrTypeMismatch

// Types re-exported from internal/core.

// HasInvocations is implemented by test doubles that record the calls they receive.
type HasInvocations[I any] = core.HasInvocations[I]

// Location identifies a point in source code for failure messages.
type Location = core.Location

// Log is an embeddable, ordered record of invocations.
type Log[I any] = core.Log[I]

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// TestReporter is the minimal interface testdouble needs from test frameworks.
type TestReporter = core.TestReporter

// Functions re-exported from internal/core.

// AssertInvocations reports a failure on t unless double's log holds exactly
// expected, in order.
func AssertInvocations[I any](t TestReporter, double HasInvocations[I], expected ...I) {
	t.Helper()
	core.AssertInvocationsAt(t, double, core.Caller(1), expected...)
}

// AssertInvocationsAt is AssertInvocations with an explicit failure location.
func AssertInvocationsAt[I any](t TestReporter, double HasInvocations[I], loc Location, expected ...I) {
	t.Helper()
	core.AssertInvocationsAt(t, double, loc, expected...)
}

// Caller returns the location skip frames above the function calling Caller.
func Caller(skip int) Location {
	return core.Caller(skip + 1)
}

// ClearInvocations empties double's log.
func ClearInvocations[I any](double HasInvocations[I]) {
	core.ClearInvocations(double)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}
