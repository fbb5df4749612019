// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

package frame

import "testing"

type recordingRecorder struct {
	calls []Layout
}

func (r *recordingRecorder) RecordLayout(f *Frame, old, updated Layout) {
	r.calls = append(r.calls, updated)
}

func TestNewDefaults(t *testing.T) {
	f := New()
	if f.ID() == "" {
		t.Error("ID() is empty, want generated id")
	}
	if !f.Enabled() {
		t.Error("Enabled() = false for a new frame, want true")
	}
	if f.Layout() != (Layout{}) {
		t.Errorf("Layout() = %+v, want zero", f.Layout())
	}
}

func TestOptions(t *testing.T) {
	f := New(
		WithName("Home"),
		WithLayout(Layout{Width: 320, MinHeight: 480}),
		WithPosition(10, 20),
	)
	if f.Name() != "Home" {
		t.Errorf("Name() = %q, want %q", f.Name(), "Home")
	}
	if got := f.Layout(); got.Width != 320 || got.MinHeight != 480 {
		t.Errorf("Layout() = %+v, want Width 320 MinHeight 480", got)
	}
	if f.X != 10 || f.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", f.X, f.Y)
	}
}

func TestSetLayoutHitsRecorder(t *testing.T) {
	rec := &recordingRecorder{}
	f := New(WithRecorder(rec))

	f.SetLayout(Layout{Width: 770})

	if len(rec.calls) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(rec.calls))
	}
	if rec.calls[0].Width != 770 {
		t.Errorf("recorded width = %v, want 770", rec.calls[0].Width)
	}
}

func TestSetLayoutUntrackedBypassesRecorder(t *testing.T) {
	rec := &recordingRecorder{}
	f := New(WithRecorder(rec))

	f.SetLayoutUntracked(Layout{Width: 770})

	if len(rec.calls) != 0 {
		t.Errorf("recorder calls = %d for an untracked write, want 0", len(rec.calls))
	}
	if f.Layout().Width != 770 {
		t.Errorf("Layout().Width = %v, want 770", f.Layout().Width)
	}
}

func TestDisableFiresHooksOncePerActivation(t *testing.T) {
	f := New()
	calls := 0
	f.OnDisable(func(*Frame) { calls++ })

	f.Disable()
	f.Disable() // idempotent: already disabled

	if calls != 1 {
		t.Errorf("disable hook calls = %d, want 1", calls)
	}
	if f.Enabled() {
		t.Error("Enabled() = true after Disable")
	}

	f.Enable()
	f.Disable()
	if calls != 2 {
		t.Errorf("disable hook calls after re-activation = %d, want 2", calls)
	}
}
