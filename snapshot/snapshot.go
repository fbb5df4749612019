// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

// Package snapshot renders the current viewport layout to an image.
//
// Each active frame is drawn as a labeled rectangle positioned through
// the canvas's world-to-screen transform, so the output reflects the
// live zoom and pan. Hosts use it for debug output and page thumbnails;
// it draws layout, not page content (content rendering belongs to the
// host's rendering layer).
package snapshot

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pagesmith/canvas"
)

// Options configures a snapshot render.
type Options struct {
	// Width, Height are the output dimensions in pixels.
	Width, Height int

	// Background fills the canvas area. Defaults to a light gray.
	Background color.Color

	// Labels draws each frame's name above its rectangle.
	Labels bool
}

// Default colors, chosen for contrast on the default background.
var (
	defaultBackground = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	frameFill         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	frameBorder       = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	labelColor        = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// fallbackFrameSize stands in for unset (auto) frame dimensions so a
// desktop frame still shows up as a rectangle.
const (
	fallbackWidth  = 1000.0
	fallbackHeight = 800.0
)

// Render draws the canvas's active frames into a new image.
func Render(c *canvas.Canvas, opts Options) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		canvas.Logger().Warn("snapshot: degenerate output size",
			"width", opts.Width, "height", opts.Height)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	bg := opts.Background
	if bg == nil {
		bg = defaultBackground
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	z := c.ZoomDecimal()
	for _, f := range c.Frames().Frames() {
		layout := f.Layout()
		w, h := layout.Width, layout.Height
		if w <= 0 {
			w = fallbackWidth
		}
		if h <= 0 {
			h = fallbackHeight
			if layout.MinHeight > 0 {
				h = layout.MinHeight
			}
		}

		min := c.WorldToScreen(canvas.Pt(f.X, f.Y))
		rect := image.Rect(
			int(min.X), int(min.Y),
			int(min.X+w*z), int(min.Y+h*z),
		)
		drawFrame(img, rect)

		if opts.Labels && f.Name() != "" {
			drawLabel(img, f.Name(), rect.Min.X, rect.Min.Y-4)
		}
	}
	return img
}

// Thumbnail renders the viewport at full size and scales it down to fit
// w x h, preserving aspect ratio.
func Thumbnail(c *canvas.Canvas, full Options, w, h int) *image.RGBA {
	src := Render(c, full)
	if w <= 0 || h <= 0 {
		return src
	}

	sb := src.Bounds()
	scale := min(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	dw, dh := int(float64(sb.Dx())*scale), int(float64(sb.Dy())*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

// drawFrame fills the frame area and strokes a 1px border, clipped to
// the image bounds.
func drawFrame(img *image.RGBA, rect image.Rectangle) {
	inner := rect.Intersect(img.Bounds())
	if !inner.Empty() {
		xdraw.Draw(img, inner, image.NewUniform(frameFill), image.Point{}, xdraw.Src)
	}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		setClipped(img, x, rect.Min.Y, frameBorder)
		setClipped(img, x, rect.Max.Y-1, frameBorder)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		setClipped(img, rect.Min.X, y, frameBorder)
		setClipped(img, rect.Max.X-1, y, frameBorder)
	}
}

func setClipped(img *image.RGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// drawLabel renders text with the fixed 7x13 basic font; (x, y) is the
// text baseline origin.
func drawLabel(img *image.RGBA, text string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
