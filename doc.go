// Package canvas is the coordination layer of a visual page builder's
// editing surface.
//
// # Overview
//
// canvas owns the mapping between logical pages (the documents a user
// edits) and the frames that display them, keeps the viewport transform
// (zoom, pan offset, pointer position in world and screen space)
// consistent, and synchronizes the selected device's layout constraints
// onto the active frame whenever the device or the active page changes.
//
// # Quick Start
//
//	import (
//	    "github.com/pagesmith/canvas"
//	    "github.com/pagesmith/canvas/device"
//	    "github.com/pagesmith/canvas/page"
//	)
//
//	bus := canvas.NewBus()
//	pages := page.NewManager(&bus.PageSelected)
//	devices := device.NewManager(&bus.DeviceChanged, &bus.DeviceUpdated)
//
//	cv := canvas.New(canvas.Env{Bus: bus, Pages: pages, Devices: devices})
//
//	home := page.New("Home")
//	pages.Add(home)
//	cv.Init() // activate the main page's frames
//
//	devices.Select("mobilePortrait") // frame width becomes 320
//	cv.SetZoom(50)
//
// # Architecture
//
// The module is organized leaf-first:
//   - event: typed synchronous publish/subscribe streams
//   - frame: rendering surfaces and per-page frame lists
//   - device: layout presets and their selection
//   - page: documents and their selection
//   - canvas (this package): the state core tying them together
//   - snapshot: debug/thumbnail rendering of the viewport layout
//
// The core receives its collaborators through the small interfaces in
// Env; it never reaches for ambient globals. All state transitions are
// synchronous and single-threaded: a notification handler observes the
// canvas fully consistent, never mid-update.
package canvas
