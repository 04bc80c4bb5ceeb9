package core

import (
	"fmt"
	"reflect"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// MatchValue checks if actual matches expected.
// If expected implements the Matcher interface, uses its Match method.
// Otherwise, uses reflect.DeepEqual for comparison.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	if matcher, ok := expected.(Matcher); ok {
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}

		return true, ""
	}

	if reflect.DeepEqual(actual, expected) {
		return true, ""
	}

	return false, mismatchMessage(actual, expected)
}

// equaler is satisfied by invocation types that define their own equality.
type equaler[I any] interface {
	Equal(other I) bool
}

// matchInvocation compares one recorded invocation against its expectation.
// A Matcher expectation wins, then an Equal method on the actual value, then
// reflect.DeepEqual.
func matchInvocation[I any](actual, expected I) (bool, string) {
	if _, ok := any(expected).(Matcher); ok {
		return MatchValue(actual, expected)
	}

	if eq, ok := any(actual).(equaler[I]); ok {
		if eq.Equal(expected) {
			return true, ""
		}

		return false, mismatchMessage(actual, expected)
	}

	return MatchValue(actual, expected)
}

func mismatchMessage(actual, expected any) string {
	return fmt.Sprintf("expected %v, got %v", expected, actual)
}
