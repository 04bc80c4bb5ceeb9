// Package match provides matchers for use as expected invocations in
// testdouble's AssertInvocations. They mix freely with gomega matchers:
//
//	double.AssertInvocations(t, match.BeAny, gomega.HavePrefix("stop"))
//
// Any value implementing Match and FailureMessage works, gomega's included,
// as long as the log's invocation type can hold it (e.g. Log[any]).
package match

import (
	"fmt"

	"github.com/toejough/testdouble/internal/core"
)

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// BeAny is a matcher that matches any value.
// Use it for a recorded call whose contents the test does not care about.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = wildcard{}

// BeDescribedAs returns a matcher that succeeds when the actual value renders
// to the same text as expected under core's DefaultRender.
func BeDescribedAs[T any](expected T) Matcher {
	return core.Describe(expected)
}

// Satisfy returns a matcher that hands the recorded invocation to check.
// check returns nil to accept it, or an error saying why it was rejected.
//
//	flushed := match.Satisfy(func(call string) error {
//	    if call != "flush" {
//	        return fmt.Errorf("buffer not flushed before %q", call)
//	    }
//	    return nil
//	})
//	writer.AssertInvocations(t, "write", flushed, "close")
func Satisfy[T any](check func(T) error) Matcher {
	return &predicate[T]{check: check}
}

// wildcard accepts every invocation, so it never has a failure to describe.
type wildcard struct{}

func (wildcard) FailureMessage(any) string { return "" }

func (wildcard) Match(any) (bool, error) { return true, nil }

func (wildcard) String() string { return "<any>" }

// predicate remembers why check rejected the last invocation it saw, so
// FailureMessage can repeat the reason.
type predicate[T any] struct {
	check  func(T) error
	reason error
}

func (p *predicate[T]) FailureMessage(actual any) string {
	if p.reason == nil {
		return fmt.Sprintf("invocation %v rejected", actual)
	}

	return fmt.Sprintf("invocation %v rejected: %v", actual, p.reason)
}

func (p *predicate[T]) Match(actual any) (bool, error) {
	invocation, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", core.ErrTypeMismatch, *new(T), actual)
	}

	p.reason = p.check(invocation)

	return p.reason == nil, nil
}

func (p *predicate[T]) String() string {
	return fmt.Sprintf("<satisfies %T check>", *new(T))
}
