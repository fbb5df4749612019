package canvas

// CoordSpace selects which pointer coordinate space an accessor reads.
type CoordSpace int

const (
	// World is the document's own coordinate space, unaffected by
	// zoom and pan. It is the default space.
	World CoordSpace = iota

	// Screen is the viewport coordinate space, in device pixels.
	Screen
)

// String returns the coordinate space name.
func (s CoordSpace) String() string {
	if s == Screen {
		return "screen"
	}
	return "world"
}

// Zoom bounds. Zoom is a percentage: 100 means 1:1.
const (
	// DefaultZoom is the zoom level a new canvas starts at.
	DefaultZoom = 100

	// MinZoom is the lower zoom bound. Values below it are clamped on
	// write; zoom at or below zero would make the world-to-screen
	// transform degenerate.
	MinZoom = 1
)

// Zoom returns the current zoom percentage. Always >= MinZoom.
func (c *Canvas) Zoom() float64 { return c.zoom }

// ZoomDecimal returns the zoom as a scale factor (Zoom()/100).
func (c *Canvas) ZoomDecimal() float64 { return c.zoom / 100 }

// SetZoom stores a new zoom level, clamping values below MinZoom up to
// exactly MinZoom. An accepted change publishes a single ZoomChanged
// notification carrying the stored value and the write's options;
// writing the current value publishes nothing.
func (c *Canvas) SetZoom(v float64, opts ...WriteOption) {
	if v < MinZoom {
		Logger().Debug("canvas: zoom clamped", "requested", v)
		v = MinZoom
	}
	if v == c.zoom {
		return
	}
	c.zoom = v
	c.env.Bus.ZoomChanged.Publish(ZoomEvent{Zoom: v, Options: applyWriteOptions(opts)})
}

// Coords returns the pan offset of the viewport.
func (c *Canvas) Coords() Point { return Pt(c.x, c.y) }

// SetCoords stores a new pan offset. The offset is unconstrained. A
// change to either axis publishes one CoordsChanged notification.
func (c *Canvas) SetCoords(x, y float64, opts ...WriteOption) {
	if x == c.x && y == c.y {
		return
	}
	c.x, c.y = x, y
	c.env.Bus.CoordsChanged.Publish(CoordsEvent{X: x, Y: y, Options: applyWriteOptions(opts)})
}

// Pointer returns the stored pointer position in the given coordinate
// space, verbatim. No transform is applied between spaces: each space is
// set independently by whichever producer observed the pointer event,
// and setting one never mutates the other.
func (c *Canvas) Pointer(space CoordSpace) Point {
	if space == Screen {
		return c.pointerScreen
	}
	return c.pointer
}

// SetPointer stores the pointer position in world coordinates and
// publishes a PointerChanged notification.
func (c *Canvas) SetPointer(p Point, opts ...WriteOption) {
	if p == c.pointer {
		return
	}
	c.pointer = p
	c.env.Bus.PointerChanged.Publish(PointerEvent{
		Space:   World,
		Point:   p,
		Options: applyWriteOptions(opts),
	})
}

// SetPointerScreen stores the pointer position in screen coordinates and
// publishes a PointerChanged notification. Both spaces feed the same
// stream, so a listener observes either space's update as one signal.
func (c *Canvas) SetPointerScreen(p Point, opts ...WriteOption) {
	if p == c.pointerScreen {
		return
	}
	c.pointerScreen = p
	c.env.Bus.PointerChanged.Publish(PointerEvent{
		Space:   Screen,
		Point:   p,
		Options: applyWriteOptions(opts),
	})
}

// WorldToScreen maps a world-space point through the current zoom and
// pan. Pointer producers that track only one space can derive the other
// with this; the canvas itself never does so implicitly.
func (c *Canvas) WorldToScreen(p Point) Point {
	z := c.ZoomDecimal()
	return Pt(p.X*z+c.x, p.Y*z+c.y)
}

// ScreenToWorld is the inverse of WorldToScreen. It is total: zoom never
// reaches zero, so the transform cannot degenerate.
func (c *Canvas) ScreenToWorld(p Point) Point {
	z := c.ZoomDecimal()
	return Pt((p.X-c.x)/z, (p.Y-c.y)/z)
}
