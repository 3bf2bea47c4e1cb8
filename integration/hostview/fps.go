// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"fmt"
	"time"
)

// fpsWindow is the minimum time between two rate updates.
const fpsWindow = time.Second

// FPSCounter measures the frame rate over windows of at least one second.
// The reported rate changes only when a window completes.
//
// FPSCounter is NOT safe for concurrent use.
type FPSCounter struct {
	now    func() time.Time
	last   time.Time
	frames int
	fps    float64
}

// NewFPSCounter creates a counter whose first window starts now.
func NewFPSCounter() *FPSCounter {
	return newFPSCounter(time.Now)
}

func newFPSCounter(now func() time.Time) *FPSCounter {
	return &FPSCounter{now: now, last: now()}
}

// Tick counts one frame and returns the rate of the last completed window.
func (c *FPSCounter) Tick() float64 {
	now := c.now()
	c.frames++
	if d := now.Sub(c.last); d >= fpsWindow {
		c.fps = float64(c.frames) / d.Seconds()
		c.frames = 0
		c.last = now
	}
	return c.fps
}

// FPS returns the rate of the last completed window.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// String formats the rate as shown by the overlay.
func (c *FPSCounter) String() string {
	return fmt.Sprintf("fps: %.2f", c.fps)
}
