package figure

import "fmt"

// RendererKind identifies the variant held by a Renderer.
type RendererKind uint8

const (
	// RendererNative draws the geometry it emits into a RenderContext
	// with the built-in rasterizer.
	RendererNative RendererKind = iota

	// RendererDelegated hands the drawing area to an external charting
	// library together with the coordinate snapshot.
	RendererDelegated
)

func (k RendererKind) String() string {
	switch k {
	case RendererNative:
		return "native"
	case RendererDelegated:
		return "delegated"
	default:
		return fmt.Sprintf("RendererKind(%d)", uint8(k))
	}
}

// Source produces geometry for one native render.
//
// Render is called once per render pass with a fresh context. It runs under
// the axes read lock and must not write to the axes it is registered on.
type Source[X, Y Number] interface {
	Render(cx *RenderContext[X, Y])
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[X, Y Number] func(cx *RenderContext[X, Y])

// Render calls f(cx).
func (f SourceFunc[X, Y]) Render(cx *RenderContext[X, Y]) { f(cx) }

// Extenter is implemented by sources that can report the data extent of
// their geometry. Plot.Fit uses it. ok is false when there is no data.
type Extenter[X, Y Number] interface {
	Extent() (b AxesBounds[X, Y], ok bool)
}

// DrawFunc draws one delegated render. It receives the drawing area and
// the coordinate snapshot of its axes. A returned error or a panic fails
// only this registration.
type DrawFunc[X, Y Number] func(area *DrawArea, s Snapshot[X, Y]) error

// Renderer is one of the two rendering variants. Exactly one of Source and
// Draw is set, as selected by Kind.
type Renderer[X, Y Number] struct {
	Kind   RendererKind
	Source Source[X, Y]
	Draw   DrawFunc[X, Y]
}

// Native returns a native renderer over src.
func Native[X, Y Number](src Source[X, Y]) Renderer[X, Y] {
	return Renderer[X, Y]{Kind: RendererNative, Source: src}
}

// Delegated returns a delegated renderer over fn.
func Delegated[X, Y Number](fn DrawFunc[X, Y]) Renderer[X, Y] {
	return Renderer[X, Y]{Kind: RendererDelegated, Draw: fn}
}
