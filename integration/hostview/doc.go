// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hostview embeds a figure in a host GUI toolkit.
//
// A [View] is one element of the host layout tree. The host calls Measure
// and Layout when its layout pass runs, Paint once per frame, and forwards
// pointer and scroll events. The view routes each event to the axes of the
// plot under the pointer:
//
//	pointer down   begin a pan on every axes of the plot
//	pointer move   drag the pan, if one is in progress
//	pointer up     end the pan
//	scroll         zoom about the pointer
//
// Scroll zooms both axes uniformly. Holding Shift zooms the x axis only and
// holding Alt zooms the y axis only.
//
// The data flow of a frame is:
//
//	figure.Figure (render) -> figure.Pixmap (CPU) -> GPU texture -> window
//
// Paint produces the pixmap. A [Presenter] uploads it to a texture through
// the gpucontext interfaces and draws it, so this package never imports a
// windowing library directly:
//
//	view := hostview.New(fig, hostview.OptionsFromEnv()...)
//	presenter := hostview.NewPresenter()
//	defer presenter.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if err := view.Layout(image.Rect(0, 0, dc.Width(), dc.Height())); err != nil {
//	        log.Printf("layout: %v", err)
//	        return
//	    }
//	    if err := view.Present(presenter, dc.AsTextureDrawer()); err != nil {
//	        log.Printf("present: %v", err)
//	    }
//	})
//
// # Thread Safety
//
// View is safe for concurrent use. Events and Paint may arrive from
// different goroutines; axes state is guarded by the figure locks. Presenter
// is NOT safe for concurrent use.
package hostview
