// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

// Package frame models the rendering surfaces a page is displayed on.
//
// A Frame is one device-sized viewport showing a page's content. The canvas
// core owns the layout attributes of the active frames (it is their sole
// writer); the rendering layer owns everything else about them. Frames are
// grouped per page in an ordered List with a designated main frame.
//
// Frames are NOT safe for concurrent use. All mutation must happen on the
// host's single canvas thread.
package frame

import "github.com/google/uuid"

// Layout holds the layout attributes the canvas synchronizes from the
// selected device. Dimensions are CSS pixels; zero means unset/auto.
type Layout struct {
	Width     float64
	Height    float64
	MinHeight float64
}

// Recorder receives tracked layout writes so a host can feed its undo
// history. Untracked writes (device-driven sync) bypass it entirely.
type Recorder interface {
	// RecordLayout is called after a tracked write with the previous and
	// new layout. It must not write back into the frame synchronously.
	RecordLayout(f *Frame, old, updated Layout)
}

// Frame is a single rendering surface.
type Frame struct {
	id   string
	name string

	// X, Y position the frame on the canvas, in world coordinates.
	X, Y float64

	layout    Layout
	enabled   bool
	recorder  Recorder
	onDisable []func(*Frame)
}

// Option configures a Frame during creation.
type Option func(*Frame)

// WithName sets a human-readable frame name (used for snapshot labels).
func WithName(name string) Option {
	return func(f *Frame) { f.name = name }
}

// WithLayout sets the initial layout attributes.
func WithLayout(l Layout) Option {
	return func(f *Frame) { f.layout = l }
}

// WithPosition sets the frame's world-coordinate position on the canvas.
func WithPosition(x, y float64) Option {
	return func(f *Frame) { f.X, f.Y = x, y }
}

// WithRecorder attaches a tracked-write recorder.
func WithRecorder(r Recorder) Option {
	return func(f *Frame) { f.recorder = r }
}

// New creates an enabled frame with a generated ID.
func New(opts ...Option) *Frame {
	f := &Frame{
		id:      uuid.NewString(),
		enabled: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ID returns the frame's unique identifier.
func (f *Frame) ID() string { return f.id }

// Name returns the frame's display name. May be empty.
func (f *Frame) Name() string { return f.name }

// Layout returns the current layout attributes.
func (f *Frame) Layout() Layout { return f.layout }

// SetLayout applies a batched layout write and records it for undo
// tracking when a Recorder is attached. Use this for user-driven edits.
func (f *Frame) SetLayout(l Layout) {
	old := f.layout
	f.layout = l
	if f.recorder != nil {
		f.recorder.RecordLayout(f, old, l)
	}
}

// SetLayoutUntracked applies a batched layout write without touching the
// recorder. Device-driven sync uses this: device layout changes are not
// user-undoable actions.
func (f *Frame) SetLayoutUntracked(l Layout) {
	f.layout = l
}

// Enabled reports whether the frame is serving as a live surface.
func (f *Frame) Enabled() bool { return f.enabled }

// OnDisable registers fn to run each time the frame transitions from
// enabled to disabled. Rendering layers use this to tear down views.
func (f *Frame) OnDisable(fn func(*Frame)) {
	f.onDisable = append(f.onDisable, fn)
}

// Disable deactivates the frame. It is idempotent: hooks fire only on the
// enabled→disabled transition, so a frame is torn down at most once per
// activation.
func (f *Frame) Disable() {
	if !f.enabled {
		return
	}
	f.enabled = false
	for _, fn := range f.onDisable {
		fn(f)
	}
}

// Enable reactivates the frame, e.g. when its page becomes current again.
func (f *Frame) Enable() {
	f.enabled = true
}
