package core

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Renderer projects a value onto the text used to compare it.
type Renderer[T any] func(T) string

// DefaultRender renders v with fmt's %+v verb. Types implementing
// fmt.Stringer control their own rendering.
func DefaultRender[T any](v T) string {
	return fmt.Sprintf("%+v", v)
}

// DeepRender renders v by walking through pointers and containers, so two
// values with the same pointed-to content render the same.
func DeepRender[T any](v T) string {
	return deepConfig.Sdump(v)
}

//nolint:gochecknoglobals // shared immutable configuration
var deepConfig = &spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}
