package core

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by matchers when the actual value is not of the
// type they compare against.
var ErrTypeMismatch = errors.New("type mismatch")

// Described wraps a value so that it compares equal to another wrapped value
// whenever the two render to the same text.
//
// Distinct values that render identically compare equal. That is the point:
// use Described where description-based identity is acceptable, e.g. for
// closures or opaque handles that have no structural equality of their own.
type Described[T any] struct {
	element T
	render  Renderer[T]
}

// Describe wraps v using DefaultRender.
func Describe[T any](v T) Described[T] {
	return DescribeWith(v, nil)
}

// DescribeWith wraps v using render. A nil render falls back to DefaultRender.
func DescribeWith[T any](v T, render Renderer[T]) Described[T] {
	if render == nil {
		render = DefaultRender[T]
	}

	return Described[T]{element: v, render: render}
}

// SameDescription reports whether a and b render identically with DefaultRender.
func SameDescription[T any](a, b T) bool {
	return Describe(a).Equal(Describe(b))
}

// Description returns the rendered text of the wrapped value.
func (d Described[T]) Description() string {
	return d.renderer()(d.element)
}

// Element returns the wrapped value.
func (d Described[T]) Element() T {
	return d.element
}

// Equal reports whether d and other render to the same text, each with its
// own renderer.
func (d Described[T]) Equal(other Described[T]) bool {
	return d.Description() == other.Description()
}

// FailureMessage implements the gomega matcher shape.
func (d Described[T]) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %v to be described as %q", actual, d.Description())
}

// Match implements the gomega matcher shape. actual may be a Described[T] or
// a T, which is rendered with d's renderer.
func (d Described[T]) Match(actual any) (bool, error) {
	switch val := actual.(type) {
	case Described[T]:
		return d.Equal(val), nil
	case T:
		return d.Equal(DescribeWith(val, d.render)), nil
	case nil:
		// Only an interface T has nil as a value of its own.
		var zero T
		if any(zero) == nil {
			return d.Equal(DescribeWith(zero, d.render)), nil
		}

		return false, fmt.Errorf("%w: expected %T or %T, got nil", ErrTypeMismatch, d, d.element)
	default:
		return false, fmt.Errorf("%w: expected %T or %T, got %T", ErrTypeMismatch, d, d.element, actual)
	}
}

// NegatedFailureMessage implements the gomega matcher shape.
func (d Described[T]) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("expected %v not to be described as %q", actual, d.Description())
}

func (d Described[T]) String() string {
	return d.Description()
}

// renderer guards the zero value, which has no renderer set.
func (d Described[T]) renderer() Renderer[T] {
	if d.render == nil {
		return DefaultRender[T]
	}

	return d.render
}
