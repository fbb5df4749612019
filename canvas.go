package canvas

import (
	"io"

	"github.com/pagesmith/canvas/device"
	"github.com/pagesmith/canvas/frame"
	"github.com/pagesmith/canvas/page"
)

// PageProvider resolves the editor's main page during initial activation.
// *page.Manager satisfies it.
type PageProvider interface {
	MainPage() *page.Page
}

// DeviceProvider resolves the currently selected device, or nil when none
// is selected. *device.Manager satisfies it.
type DeviceProvider interface {
	CurrentDevice() *device.Device
}

// FrameProvider resolves the frame the editor currently targets, or nil.
type FrameProvider interface {
	CurrentFrame() *frame.Frame
}

// EditorControl exposes the editor-wide actions the page-switch procedure
// needs: dropping the current selection and stopping an in-progress
// interaction mode before the frame swap.
type EditorControl interface {
	ClearSelection()
	StopInteraction()
	CanvasReady() bool
}

// Env bundles the host capabilities the canvas consumes, passed by
// reference at construction. The canvas RECEIVES these from the host, it
// does not create them; any field except Bus may be nil, and a nil
// capability degrades the dependent behavior to a no-op.
type Env struct {
	Bus     *Bus
	Pages   PageProvider
	Devices DeviceProvider
	Frames  FrameProvider
	Editor  EditorControl
}

// Canvas is the coordination layer between pages and the frames that
// display them. It owns the active frame list, the viewport transform
// (zoom and pan offset), the pointer position in world and screen space,
// and the global script/style injection lists.
//
// Exactly one frame list is active at any time, corresponding to the
// current page; switching pages tears the previous list down before the
// next becomes visible.
//
// Canvas is NOT safe for concurrent use. All state transitions run
// synchronously inside the handler of the triggering notification; a
// multi-threaded host must serialize every mutation onto one goroutine.
// Canvas implements io.Closer to detach its bus subscriptions.
type Canvas struct {
	env Env
	cfg Config

	scripts []Injectable
	styles  []Injectable

	frames        *frame.List
	zoom          float64
	x, y          float64
	pointer       Point
	pointerScreen Point

	initialized bool
	switching   bool
	cancels     []func()
}

// Ensure Canvas implements io.Closer.
var _ io.Closer = (*Canvas)(nil)

// New creates a Canvas bound to the given host environment. If env.Bus is
// nil a private bus is created (reachable via Bus).
//
// Construction registers the upstream subscriptions (page selection,
// device change/update) but activates nothing: the page subsystem may not
// be populated yet. Call Init once it is.
func New(env Env, opts ...Option) *Canvas {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if env.Bus == nil {
		env.Bus = NewBus()
	}

	c := &Canvas{
		env:     env,
		cfg:     cfg,
		scripts: cfg.Scripts,
		styles:  cfg.Styles,
		frames:  frame.NewList(),
		zoom:    DefaultZoom,
	}

	bus := env.Bus
	c.cancels = append(c.cancels,
		bus.PageSelected.Subscribe(c.onPageSelected),
		bus.DeviceChanged.Subscribe(c.onDeviceEvent),
		bus.DeviceUpdated.Subscribe(c.onDeviceEvent),
	)
	return c
}

// Init performs first activation: it resolves the main page, installs its
// frame list as active, and syncs the selected device onto the page's
// main frame. It exists separately from New because the page subsystem
// may not be ready at construction time.
//
// Init is idempotent; calls after the first are no-ops. Missing context
// (no page provider, no main page yet) is routine and leaves the canvas
// with its empty placeholder list.
func (c *Canvas) Init() {
	if c.initialized {
		return
	}
	c.initialized = true

	if c.env.Pages == nil {
		return
	}
	main := c.env.Pages.MainPage()
	if main == nil {
		Logger().Debug("canvas: init before any page exists")
		return
	}
	c.installFrames(main)
	c.SyncDevice(main.MainFrame())
}

// Bus returns the notification bus the canvas is bound to.
func (c *Canvas) Bus() *Bus { return c.env.Bus }

// Config returns the construction-time configuration.
func (c *Canvas) Config() Config { return c.cfg }

// Scripts returns the scripts injected into every frame's document.
func (c *Canvas) Scripts() []Injectable { return c.scripts }

// Styles returns the stylesheets injected into every frame's document.
func (c *Canvas) Styles() []Injectable { return c.styles }

// Frames returns the active frame list. Never nil; before Init (or with
// no pages) it is an empty placeholder.
func (c *Canvas) Frames() *frame.List { return c.frames }

// onPageSelected runs the page-switch procedure. Steps, strictly in
// order:
//
//  1. Clear the editor-wide selection.
//  2. If the canvas is ready, stop any in-progress interaction mode.
//     This happens before the frame swap, so the interaction cannot
//     reference a frame about to be torn down.
//  3. Disable every frame of the previous page (skipped on first load).
//  4. Install the selected page's frame list as active.
//  5. Re-run device sync against the selected page's main frame.
//
// A page selection arriving while a switch is in progress is dropped:
// re-entering the procedure mid-switch would interleave teardown and
// activation of different pages.
func (c *Canvas) onPageSelected(ev page.SelectionEvent) {
	if c.switching {
		Logger().Warn("canvas: page selection dropped, switch in progress")
		return
	}
	c.switching = true
	defer func() { c.switching = false }()

	if ed := c.env.Editor; ed != nil {
		ed.ClearSelection()
		if ed.CanvasReady() {
			ed.StopInteraction()
		}
	}

	if ev.Previous != nil {
		for _, f := range ev.Previous.Frames().Frames() {
			f.Disable()
		}
	}

	c.installFrames(ev.Selected)

	var target *frame.Frame
	if ev.Selected != nil {
		target = ev.Selected.MainFrame()
	}
	c.SyncDevice(target)

	Logger().Debug("canvas: page switched",
		"page", pageName(ev.Selected), "frames", c.frames.Len())
}

// installFrames replaces the active frame list wholesale with the given
// page's list, re-enabling its frames. A nil page (malformed external
// state) installs an empty list.
func (c *Canvas) installFrames(p *page.Page) {
	if p == nil {
		c.frames = frame.NewList()
		return
	}
	list := p.Frames()
	for _, f := range list.Frames() {
		f.Enable()
	}
	c.frames = list
}

func (c *Canvas) onDeviceEvent(device.ChangeEvent) {
	c.SyncDevice(nil)
}

// SyncDevice copies the selected device's width, height and min-height
// onto a frame as one batched write that bypasses undo tracking
// (device-driven layout is not a user-undoable action).
//
// target wins when non-nil; otherwise the editor's current frame is
// used. Missing either the frame or a selected device is a routine
// condition and makes the call a silent no-op. SyncDevice is idempotent.
func (c *Canvas) SyncDevice(target *frame.Frame) {
	f := target
	if f == nil && c.env.Frames != nil {
		f = c.env.Frames.CurrentFrame()
	}
	var d *device.Device
	if c.env.Devices != nil {
		d = c.env.Devices.CurrentDevice()
	}
	if f == nil || d == nil {
		return
	}
	f.SetLayoutUntracked(frame.Layout{
		Width:     d.Width,
		Height:    d.Height,
		MinHeight: d.MinHeight,
	})
	Logger().Debug("canvas: device sync",
		"device", d.Name, "frame", f.ID(), "width", d.Width)
}

// Close detaches the canvas from its bus subscriptions. Close is
// idempotent and always returns nil.
func (c *Canvas) Close() error {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
	return nil
}

func pageName(p *page.Page) string {
	if p == nil {
		return ""
	}
	return p.Name()
}
