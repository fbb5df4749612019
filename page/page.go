// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

// Package page models the logical documents a user edits and the manager
// that tracks which one is current.
package page

import (
	"github.com/google/uuid"

	"github.com/pagesmith/canvas/frame"
)

// Page is a logical document displayed through one or more frames.
type Page struct {
	id     string
	name   string
	frames *frame.List
}

// Option configures a Page during creation.
type Option func(*Page)

// WithFrames sets the page's frame list. Without this option the page
// starts with a single default frame.
func WithFrames(l *frame.List) Option {
	return func(p *Page) { p.frames = l }
}

// New creates a page with a generated ID. Unless WithFrames is given, the
// page gets one default frame so it is immediately displayable.
func New(name string, opts ...Option) *Page {
	p := &Page{
		id:   uuid.NewString(),
		name: name,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.frames == nil {
		p.frames = frame.NewList(frame.New(frame.WithName(name)))
	}
	return p
}

// ID returns the page's unique identifier.
func (p *Page) ID() string { return p.id }

// Name returns the page's display name.
func (p *Page) Name() string { return p.name }

// Frames returns the page's frame list. Never nil.
func (p *Page) Frames() *frame.List { return p.frames }

// MainFrame returns the page's main frame, or nil when the page has no
// frames (malformed external state; callers must treat nil as "skip").
func (p *Page) MainFrame() *frame.Frame { return p.frames.Main() }
