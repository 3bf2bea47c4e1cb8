package figure

import (
	"errors"
	"fmt"
)

// Errors returned by figure operations.
var (
	// ErrInvalidRange is returned when axis bounds are malformed:
	// low >= high, or either bound is not finite.
	ErrInvalidRange = errors.New("figure: invalid axis range")

	// ErrInvalidSize is returned when a size has a negative or non-finite component.
	ErrInvalidSize = errors.New("figure: invalid size")

	// ErrInvalidViewport is returned when a viewport size is not strictly positive.
	ErrInvalidViewport = errors.New("figure: invalid viewport")

	// ErrInvalidZoomFactor is returned for non-finite or non-positive zoom
	// factors, and for factors that would collapse the visible range.
	ErrInvalidZoomFactor = errors.New("figure: invalid zoom factor")

	// ErrRendererDraw is wrapped by every DrawError.
	ErrRendererDraw = errors.New("figure: renderer draw failure")
)

// DrawError reports a failure of one renderer registration during a render
// pass. The remaining registrations of the pass still execute.
type DrawError struct {
	// Plot is the name of the plot the registration belongs to. May be empty.
	Plot string

	// Index is the registration index within the plot.
	Index int

	// Kind is the renderer variant that failed.
	Kind RendererKind

	// Err is the underlying failure.
	Err error
}

func (e *DrawError) Error() string {
	if e.Plot != "" {
		return fmt.Sprintf("figure: plot %q: %s renderer #%d: %v", e.Plot, e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("figure: %s renderer #%d: %v", e.Kind, e.Index, e.Err)
}

// Unwrap returns both ErrRendererDraw and the cause, so errors.Is matches either.
func (e *DrawError) Unwrap() []error {
	return []error{ErrRendererDraw, e.Err}
}
