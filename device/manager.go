// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pagesmith/canvas/event"
)

// ErrNotFound is returned when no device has the requested ID.
var ErrNotFound = errors.New("device: not found")

// ChangeEvent is published on the Changed stream when the selection moves
// to a different device, and on the Updated stream when a registered
// device's dimensions are edited.
type ChangeEvent struct {
	Device *Device
}

// Manager tracks the registered device presets and which one is selected.
//
// Like the rest of the canvas state model it is single-threaded: all
// mutation belongs on the host's canvas thread. Having no device selected
// is a routine state, not an error.
type Manager struct {
	devices []*Device
	current *Device
	changed *event.Stream[ChangeEvent]
	updated *event.Stream[ChangeEvent]
}

// NewManager creates a manager pre-populated with Defaults(), desktop
// selected. Selection changes publish on changed, dimension edits on
// updated; either stream may be nil.
func NewManager(changed, updated *event.Stream[ChangeEvent]) *Manager {
	m := &Manager{changed: changed, updated: updated}
	for _, d := range Defaults() {
		cp := d
		m.devices = append(m.devices, &cp)
	}
	m.current = m.devices[0]
	return m
}

// Add registers a device preset and returns the stored copy. An empty ID
// gets a generated one.
func (m *Manager) Add(d Device) *Device {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	cp := d
	m.devices = append(m.devices, &cp)
	return &cp
}

// Remove unregisters the device with the given ID. Removing the selected
// device clears the selection.
func (m *Manager) Remove(id string) error {
	for i, d := range m.devices {
		if d.ID == id {
			m.devices = append(m.devices[:i], m.devices[i+1:]...)
			if m.current == d {
				m.current = nil
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Select makes the device with the given ID current and publishes a
// ChangeEvent. Selecting the already-current device is a no-op.
func (m *Manager) Select(id string) error {
	d := m.ByID(id)
	if d == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if d == m.current {
		return nil
	}
	m.current = d
	if m.changed != nil {
		m.changed.Publish(ChangeEvent{Device: d})
	}
	return nil
}

// Update edits a registered device's dimensions in place and publishes on
// the Updated stream, letting the canvas re-sync if that device is the
// selected one.
func (m *Manager) Update(id string, width, height, minHeight float64) error {
	d := m.ByID(id)
	if d == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	d.Width, d.Height, d.MinHeight = width, height, minHeight
	if m.updated != nil {
		m.updated.Publish(ChangeEvent{Device: d})
	}
	return nil
}

// ByID returns the device with the given ID, or nil.
func (m *Manager) ByID(id string) *Device {
	for _, d := range m.devices {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// CurrentDevice returns the selected device, or nil when none is
// selected.
func (m *Manager) CurrentDevice() *Device { return m.current }

// Devices returns the registered devices in order. The returned slice is
// a copy.
func (m *Manager) Devices() []*Device {
	out := make([]*Device, len(m.devices))
	copy(out, m.devices)
	return out
}
