package canvas

import (
	"github.com/pagesmith/canvas/device"
	"github.com/pagesmith/canvas/event"
	"github.com/pagesmith/canvas/page"
)

// Origin identifies who initiated a state write, so listeners can
// distinguish user-driven from programmatic changes.
type Origin int

const (
	// OriginProgram marks a programmatic write (the default).
	OriginProgram Origin = iota

	// OriginUser marks a write caused directly by user interaction.
	OriginUser
)

// String returns the origin name.
func (o Origin) String() string {
	if o == OriginUser {
		return "user"
	}
	return "program"
}

// WriteOptions describes a state write. Every notification carries the
// options of the write that caused it.
type WriteOptions struct {
	Origin Origin
}

// WriteOption configures a state write.
type WriteOption func(*WriteOptions)

// FromUser marks the write as user-initiated.
func FromUser() WriteOption {
	return func(o *WriteOptions) { o.Origin = OriginUser }
}

func applyWriteOptions(opts []WriteOption) WriteOptions {
	var o WriteOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ZoomEvent is published after an accepted zoom change. Zoom carries the
// stored (clamped) value.
type ZoomEvent struct {
	Zoom    float64
	Options WriteOptions
}

// CoordsEvent is published after the pan offset changes.
type CoordsEvent struct {
	X, Y    float64
	Options WriteOptions
}

// PointerEvent is published after either pointer coordinate space is
// written. Space tells which one.
type PointerEvent struct {
	Space   CoordSpace
	Point   Point
	Options WriteOptions
}

// Bus aggregates the fixed set of notification streams the canvas
// coordination layer consumes and produces. Each stream has a fixed
// payload shape; delivery is synchronous (see package event).
//
// The zero value is ready to use.
type Bus struct {
	// Consumed by the canvas.
	PageSelected  event.Stream[page.SelectionEvent]
	DeviceChanged event.Stream[device.ChangeEvent]
	DeviceUpdated event.Stream[device.ChangeEvent]

	// Produced by the canvas.
	ZoomChanged    event.Stream[ZoomEvent]
	CoordsChanged  event.Stream[CoordsEvent]
	PointerChanged event.Stream[PointerEvent]
}

// NewBus creates an empty bus.
func NewBus() *Bus { return &Bus{} }
