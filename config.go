package canvas

import "github.com/pagesmith/canvas/frame"

// Injectable is a script or stylesheet injected into every frame's
// document head: either a plain source URL or an attribute record for
// inline/attributed tags.
type Injectable struct {
	// Src is the resource URL. May be empty when Attrs carries the full
	// tag definition.
	Src string

	// Attrs holds additional tag attributes (e.g. "async", "media").
	Attrs map[string]string
}

// URL returns an Injectable referencing a plain source URL.
func URL(url string) Injectable {
	return Injectable{Src: url}
}

// RenderContext is handed to a custom renderer hook for each frame the
// rendering layer materializes.
type RenderContext struct {
	Canvas *Canvas
	Frame  *frame.Frame
}

// RendererFunc overrides the built-in frame rendering. It is a
// pass-through extension point: the core stores it and the rendering
// layer invokes it.
type RendererFunc func(RenderContext)

// BadgeLabelFunc names the badge shown over a hovered component.
type BadgeLabelFunc func(componentName string) string

// Config holds the construction-time configuration of a Canvas. The core
// persists Scripts and Styles as its own attributes; the remaining fields
// are stored verbatim for the rendering layer to read.
type Config struct {
	// Scripts are injected into every frame's document head.
	Scripts []Injectable

	// Styles are injected into every frame's document head.
	Styles []Injectable

	// StylePrefix prefixes generated CSS class names.
	StylePrefix string

	// AutoscrollLimit is the pixel threshold for edge autoscroll while
	// dragging.
	AutoscrollLimit int

	// FrameContent seeds a new frame's document.
	FrameContent string

	// FrameStyle seeds a new frame's stylesheet.
	FrameStyle string

	// NotTextable lists selectors excluded from text-editing shortcuts.
	NotTextable []string

	// AllowExternalDrop enables native drag-and-drop ingestion.
	AllowExternalDrop bool

	// CustomSpots disables all built-in overlay indicators; to disable
	// only some, list them in CustomSpotTypes instead.
	CustomSpots     bool
	CustomSpotTypes []string

	// InfiniteCanvas enables the unbounded layout mode.
	InfiniteCanvas bool

	// ScrollableCanvas enables canvas scrolling in bounded mode.
	ScrollableCanvas bool

	// CustomRenderer overrides the built-in frame rendering.
	CustomRenderer RendererFunc

	// CustomBadgeLabel overrides component badge naming.
	CustomBadgeLabel BadgeLabelFunc
}

// defaultConfig returns the default canvas configuration.
func defaultConfig() Config {
	return Config{
		StylePrefix:       "cv-",
		AutoscrollLimit:   50,
		NotTextable:       []string{"input", "textarea", "select"},
		AllowExternalDrop: true,
		ScrollableCanvas:  true,
	}
}

// Option configures a Canvas during creation.
//
// Example:
//
//	cv := canvas.New(env,
//	    canvas.WithScripts(canvas.URL("https://cdn.example.com/a.js")),
//	    canvas.WithStylePrefix("pb-"),
//	)
type Option func(*Config)

// WithScripts sets the scripts injected into every frame's document.
func WithScripts(scripts ...Injectable) Option {
	return func(c *Config) { c.Scripts = scripts }
}

// WithStyles sets the stylesheets injected into every frame's document.
func WithStyles(styles ...Injectable) Option {
	return func(c *Config) { c.Styles = styles }
}

// WithStylePrefix sets the prefix for generated CSS class names.
func WithStylePrefix(prefix string) Option {
	return func(c *Config) { c.StylePrefix = prefix }
}

// WithAutoscrollLimit sets the edge-autoscroll pixel threshold.
func WithAutoscrollLimit(px int) Option {
	return func(c *Config) { c.AutoscrollLimit = px }
}

// WithFrameContent seeds new frame documents.
func WithFrameContent(html string) Option {
	return func(c *Config) { c.FrameContent = html }
}

// WithFrameStyle seeds new frame stylesheets.
func WithFrameStyle(css string) Option {
	return func(c *Config) { c.FrameStyle = css }
}

// WithNotTextable sets the selectors excluded from text-editing
// shortcuts.
func WithNotTextable(selectors ...string) Option {
	return func(c *Config) { c.NotTextable = selectors }
}

// WithAllowExternalDrop toggles native drag-and-drop ingestion.
func WithAllowExternalDrop(allow bool) Option {
	return func(c *Config) { c.AllowExternalDrop = allow }
}

// WithCustomSpots disables every built-in overlay indicator.
func WithCustomSpots() Option {
	return func(c *Config) { c.CustomSpots = true }
}

// WithCustomSpotTypes disables the listed built-in overlay indicator
// types only.
func WithCustomSpotTypes(types ...string) Option {
	return func(c *Config) { c.CustomSpotTypes = types }
}

// WithInfiniteCanvas enables the unbounded layout mode.
func WithInfiniteCanvas() Option {
	return func(c *Config) { c.InfiniteCanvas = true }
}

// WithScrollableCanvas toggles canvas scrolling in bounded mode.
func WithScrollableCanvas(scrollable bool) Option {
	return func(c *Config) { c.ScrollableCanvas = scrollable }
}

// WithCustomRenderer overrides the built-in frame rendering.
// The hook is stored verbatim; the rendering layer invokes it.
func WithCustomRenderer(fn RendererFunc) Option {
	return func(c *Config) { c.CustomRenderer = fn }
}

// WithCustomBadgeLabel overrides component badge naming.
func WithCustomBadgeLabel(fn BadgeLabelFunc) Option {
	return func(c *Config) { c.CustomBadgeLabel = fn }
}
