// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

package frame

// List is an ordered, mutable collection of frames belonging to one page.
// The first frame is the main frame.
type List struct {
	frames []*Frame
}

// NewList creates a list containing the given frames in order.
func NewList(frames ...*Frame) *List {
	l := &List{frames: make([]*Frame, 0, len(frames))}
	l.frames = append(l.frames, frames...)
	return l
}

// Frames returns the frames in order. The returned slice is a copy;
// mutating it does not affect the list.
func (l *List) Frames() []*Frame {
	out := make([]*Frame, len(l.frames))
	copy(out, l.frames)
	return out
}

// Main returns the main frame (the first one), or nil for an empty list.
func (l *List) Main() *Frame {
	if len(l.frames) == 0 {
		return nil
	}
	return l.frames[0]
}

// Len returns the number of frames.
func (l *List) Len() int { return len(l.frames) }

// ByID returns the frame with the given ID, or nil.
func (l *List) ByID(id string) *Frame {
	for _, f := range l.frames {
		if f.id == id {
			return f
		}
	}
	return nil
}

// Add appends a frame to the list.
func (l *List) Add(f *Frame) {
	l.frames = append(l.frames, f)
}

// Remove removes the frame with the given ID and reports whether it was
// present.
func (l *List) Remove(id string) bool {
	for i, f := range l.frames {
		if f.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return true
		}
	}
	return false
}
