// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestFPSCounterWindow(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	c := newFPSCounter(clk.now)
	assert.Equal(t, "fps: 0.00", c.String())

	for i := 0; i < 3; i++ {
		clk.t = clk.t.Add(250 * time.Millisecond)
		assert.Zero(t, c.Tick())
	}
	clk.t = clk.t.Add(250 * time.Millisecond)
	assert.InDelta(t, 4.0, c.Tick(), 1e-9)
	assert.Equal(t, "fps: 4.00", c.String())

	// The rate holds until the next window completes.
	clk.t = clk.t.Add(500 * time.Millisecond)
	assert.InDelta(t, 4.0, c.Tick(), 1e-9)
	clk.t = clk.t.Add(1500 * time.Millisecond)
	assert.InDelta(t, 1.0, c.Tick(), 1e-9)
	assert.InDelta(t, 1.0, c.FPS(), 1e-9)
}

func TestNewFPSCounter(t *testing.T) {
	c := NewFPSCounter()
	assert.Zero(t, c.Tick())
}
