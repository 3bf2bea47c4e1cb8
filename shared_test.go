package figure

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAxes(t *testing.T) *Axes[float64, float64] {
	t.Helper()
	a, err := NewAxes(mustBounds(t, 0, 100, 0, 100), Sz(10, 10))
	require.NoError(t, err)
	return a
}

func TestAxesSharedMatchesModel(t *testing.T) {
	a := newTestAxes(t)
	s := a.Snapshot()
	assertPoint(t, Pt(0, 10), s.TransformPoint(P2(0.0, 0.0)), 1e-12)
	assertPoint(t, Pt(10, 0), s.TransformPoint(P2(100.0, 100.0)), 1e-12)

	require.NoError(t, a.Zoom(Pt(5, 5), 0.5))
	assertBounds(t, mustBounds(t, 25, 75, 25, 75), a.Bounds(), 1e-9)

	require.NoError(t, a.ResizeViewport(Sz(20, 20)))
	assert.Equal(t, Sz(20, 20), a.Snapshot().Viewport())

	a.SetMode(ViewFixed)
	assert.Equal(t, ViewFixed, a.Mode())
}

func TestAxesSharedGestures(t *testing.T) {
	a := newTestAxes(t)
	var g Gesturer = a

	g.BeginPan(Pt(0, 0))
	assert.Equal(t, GesturePanning, g.Gesture())
	require.NoError(t, g.DragTo(Pt(1, 1)))
	g.EndPan()
	assert.Equal(t, GestureIdle, g.Gesture())
	assertBounds(t, mustBounds(t, -10, 90, 10, 110), a.Bounds(), 1e-9)

	require.NoError(t, g.ZoomXY(Pt(0, 10), 2, 1))
	assertBounds(t, mustBounds(t, -10, 190, 10, 110), a.Bounds(), 1e-9)
}

func TestAxesSharedUpdateError(t *testing.T) {
	a := newTestAxes(t)
	before := a.Bounds()
	err := a.SetBounds(AxesBounds[float64, float64]{})
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, before, a.Bounds())
}

func TestAxesSharedReadReleasesOnPanic(t *testing.T) {
	a := newTestAxes(t)
	assert.Panics(t, func() {
		a.Read(func(*AxesModel[float64, float64]) { panic("boom") })
	})
	// The write lock is still obtainable.
	require.NoError(t, a.Pan(Pt(1, 0)))
}

func TestAxesSharedNoTornReads(t *testing.T) {
	a, err := NewAxes(mustBounds(t, 0, 1, 0, 2), Sz(1, 2))
	require.NoError(t, err)

	// Every write sets bounds and viewport from the same k. A reader that
	// sees them disagree has observed a half-applied write.
	const writers, readers, iterations = 4, 8, 500
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				k := float64(1 + (w*iterations+i)%97)
				err := a.Update(func(m *AxesModel[float64, float64]) error {
					b, err := NewAxesBounds(0, k, 0, 2*k)
					if err != nil {
						return err
					}
					if err := m.SetBounds(b); err != nil {
						return err
					}
					return m.ResizeViewport(Sz(k, 2*k))
				})
				assert.NoError(t, err)
			}
		}(w)
	}

	torn := make(chan string, readers)
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				s := a.Snapshot()
				b, v := s.Bounds(), s.Viewport()
				if b.X.High() != v.Width || b.Y.High() != v.Height {
					torn <- b.String()
					return
				}
			}
		}()
	}

	wg.Wait()
	close(torn)
	for b := range torn {
		t.Errorf("torn read: %s", b)
	}
}
