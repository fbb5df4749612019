// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

package page

import (
	"errors"
	"fmt"

	"github.com/pagesmith/canvas/event"
)

// Sentinel errors for page management.
var (
	// ErrNotFound is returned when no page has the requested ID.
	ErrNotFound = errors.New("page: not found")

	// ErrDuplicate is returned when adding a page whose ID is already
	// registered.
	ErrDuplicate = errors.New("page: duplicate id")
)

// SelectionEvent is published when the current page changes.
// Previous is nil on first selection.
type SelectionEvent struct {
	Selected *Page
	Previous *Page
}

// Manager tracks the registered pages and which one is current.
//
// The main page is the first page added; it is what the canvas activates
// during initial startup. Manager is not safe for concurrent use: all
// mutation belongs on the host's single canvas thread.
type Manager struct {
	pages    []*Page
	current  *Page
	selected *event.Stream[SelectionEvent]
}

// NewManager creates an empty manager. Selection changes are published on
// selected; pass nil to run without notifications.
func NewManager(selected *event.Stream[SelectionEvent]) *Manager {
	return &Manager{selected: selected}
}

// Add registers a page. The first page added becomes the main page and is
// selected immediately.
func (m *Manager) Add(p *Page) error {
	for _, cur := range m.pages {
		if cur.id == p.id {
			return fmt.Errorf("%w: %s", ErrDuplicate, p.id)
		}
	}
	m.pages = append(m.pages, p)
	if len(m.pages) == 1 {
		m.setCurrent(p)
	}
	return nil
}

// Remove unregisters the page with the given ID. Removing the current page
// selects the main page as a fallback.
func (m *Manager) Remove(id string) error {
	for i, p := range m.pages {
		if p.id == id {
			m.pages = append(m.pages[:i], m.pages[i+1:]...)
			if m.current == p {
				m.setCurrent(m.MainPage())
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Select makes the page with the given ID current and publishes a
// SelectionEvent. Selecting the already-current page is a no-op.
func (m *Manager) Select(id string) error {
	p := m.ByID(id)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if p == m.current {
		return nil
	}
	m.setCurrent(p)
	return nil
}

func (m *Manager) setCurrent(p *Page) {
	prev := m.current
	m.current = p
	if m.selected != nil {
		m.selected.Publish(SelectionEvent{Selected: p, Previous: prev})
	}
}

// ByID returns the page with the given ID, or nil.
func (m *Manager) ByID(id string) *Page {
	for _, p := range m.pages {
		if p.id == id {
			return p
		}
	}
	return nil
}

// MainPage returns the main page (the first added), or nil when no pages
// exist yet. This is what the canvas activates at startup.
func (m *Manager) MainPage() *Page {
	if len(m.pages) == 0 {
		return nil
	}
	return m.pages[0]
}

// Current returns the currently selected page, or nil.
func (m *Manager) Current() *Page { return m.current }

// Pages returns the registered pages in order. The returned slice is a
// copy.
func (m *Manager) Pages() []*Page {
	out := make([]*Page, len(m.pages))
	copy(out, m.pages)
	return out
}

// Len returns the number of registered pages.
func (m *Manager) Len() int { return len(m.pages) }
