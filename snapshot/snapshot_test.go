// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"image"
	"image/color"
	"testing"

	"github.com/pagesmith/canvas"
	"github.com/pagesmith/canvas/frame"
	"github.com/pagesmith/canvas/page"
)

// newCanvas builds a canvas whose active page holds the given frames.
func newCanvas(t *testing.T, frames ...*frame.Frame) *canvas.Canvas {
	t.Helper()
	bus := canvas.NewBus()
	pages := page.NewManager(&bus.PageSelected)
	c := canvas.New(canvas.Env{Bus: bus, Pages: pages})
	if err := pages.Add(page.New("Home", page.WithFrames(frame.NewList(frames...)))); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	c.Init()
	return c
}

func at(t *testing.T, img *image.RGBA, x, y int) color.RGBA {
	t.Helper()
	return img.RGBAAt(x, y)
}

func TestRenderDrawsFrameRect(t *testing.T) {
	f := frame.New(frame.WithLayout(frame.Layout{Width: 100, Height: 100}))
	c := newCanvas(t, f)

	img := Render(c, Options{Width: 200, Height: 200})

	if got := at(t, img, 0, 0); got != frameBorder {
		t.Errorf("pixel(0,0) = %v, want border %v", got, frameBorder)
	}
	if got := at(t, img, 50, 50); got != frameFill {
		t.Errorf("pixel(50,50) = %v, want fill %v", got, frameFill)
	}
	if got := at(t, img, 150, 150); got != defaultBackground {
		t.Errorf("pixel(150,150) = %v, want background %v", got, defaultBackground)
	}
}

func TestRenderRespectsZoom(t *testing.T) {
	f := frame.New(frame.WithLayout(frame.Layout{Width: 100, Height: 100}))
	c := newCanvas(t, f)
	c.SetZoom(50)

	img := Render(c, Options{Width: 200, Height: 200})

	if got := at(t, img, 25, 25); got != frameFill {
		t.Errorf("pixel(25,25) = %v, want fill inside the 50x50 rect", got)
	}
	if got := at(t, img, 75, 75); got != defaultBackground {
		t.Errorf("pixel(75,75) = %v, want background outside the 50x50 rect", got)
	}
}

func TestRenderRespectsPan(t *testing.T) {
	f := frame.New(frame.WithLayout(frame.Layout{Width: 50, Height: 50}))
	c := newCanvas(t, f)
	c.SetCoords(20, 10)

	img := Render(c, Options{Width: 200, Height: 200})

	if got := at(t, img, 20, 10); got != frameBorder {
		t.Errorf("pixel(20,10) = %v, want border at the panned origin", got)
	}
	if got := at(t, img, 5, 5); got != defaultBackground {
		t.Errorf("pixel(5,5) = %v, want background before the panned origin", got)
	}
}

func TestRenderCustomBackground(t *testing.T) {
	c := newCanvas(t, frame.New(frame.WithLayout(frame.Layout{Width: 10, Height: 10})))
	bg := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}

	img := Render(c, Options{Width: 50, Height: 50, Background: bg})

	if got := at(t, img, 40, 40); got != bg {
		t.Errorf("pixel(40,40) = %v, want custom background %v", got, bg)
	}
}

func TestRenderDegenerateSize(t *testing.T) {
	c := newCanvas(t, frame.New())
	img := Render(c, Options{Width: 0, Height: -5})
	b := img.Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 1x1 placeholder", b)
	}
}

func TestThumbnailPreservesAspect(t *testing.T) {
	c := newCanvas(t, frame.New(frame.WithLayout(frame.Layout{Width: 100, Height: 100})))

	thumb := Thumbnail(c, Options{Width: 400, Height: 200}, 100, 100)

	b := thumb.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("thumbnail = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}
