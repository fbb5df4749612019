// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

// Package device models named layout presets (desktop, tablet, phone) and
// the manager that tracks which preset is selected. The canvas copies the
// selected device's dimensions onto the active frame.
package device

// Device is a named layout preset. Dimensions are CSS pixels; zero means
// unset (e.g. the desktop preset leaves width auto).
type Device struct {
	ID        string
	Name      string
	Width     float64
	Height    float64
	MinHeight float64
}

// Defaults returns the conventional preset set: desktop first (auto
// width), then tablet and the two phone orientations.
func Defaults() []Device {
	return []Device{
		{ID: "desktop", Name: "Desktop"},
		{ID: "tablet", Name: "Tablet", Width: 770},
		{ID: "mobileLandscape", Name: "Mobile landscape", Width: 568},
		{ID: "mobilePortrait", Name: "Mobile portrait", Width: 320},
	}
}
