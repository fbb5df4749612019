package canvas

import (
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := New(Env{}).Config()

	if cfg.StylePrefix != "cv-" {
		t.Errorf("StylePrefix = %q, want %q", cfg.StylePrefix, "cv-")
	}
	if cfg.AutoscrollLimit != 50 {
		t.Errorf("AutoscrollLimit = %d, want 50", cfg.AutoscrollLimit)
	}
	if !cfg.AllowExternalDrop {
		t.Error("AllowExternalDrop = false, want true")
	}
	if !cfg.ScrollableCanvas {
		t.Error("ScrollableCanvas = false, want true")
	}
	if cfg.InfiniteCanvas || cfg.CustomSpots {
		t.Error("InfiniteCanvas/CustomSpots enabled by default, want disabled")
	}
	wantTextable := []string{"input", "textarea", "select"}
	if !reflect.DeepEqual(cfg.NotTextable, wantTextable) {
		t.Errorf("NotTextable = %v, want %v", cfg.NotTextable, wantTextable)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	rendered := 0
	c := New(Env{},
		WithStylePrefix("pb-"),
		WithAutoscrollLimit(10),
		WithFrameContent("<main></main>"),
		WithFrameStyle("body{margin:0}"),
		WithNotTextable("code"),
		WithAllowExternalDrop(false),
		WithCustomSpotTypes("resize", "spacing"),
		WithInfiniteCanvas(),
		WithScrollableCanvas(false),
		WithCustomRenderer(func(RenderContext) { rendered++ }),
		WithCustomBadgeLabel(func(name string) string { return "<" + name + ">" }),
	)
	cfg := c.Config()

	if cfg.StylePrefix != "pb-" {
		t.Errorf("StylePrefix = %q, want %q", cfg.StylePrefix, "pb-")
	}
	if cfg.AutoscrollLimit != 10 {
		t.Errorf("AutoscrollLimit = %d, want 10", cfg.AutoscrollLimit)
	}
	if cfg.FrameContent != "<main></main>" || cfg.FrameStyle != "body{margin:0}" {
		t.Errorf("frame seeds = %q / %q", cfg.FrameContent, cfg.FrameStyle)
	}
	if !reflect.DeepEqual(cfg.NotTextable, []string{"code"}) {
		t.Errorf("NotTextable = %v, want [code]", cfg.NotTextable)
	}
	if cfg.AllowExternalDrop {
		t.Error("AllowExternalDrop = true, want false")
	}
	if !reflect.DeepEqual(cfg.CustomSpotTypes, []string{"resize", "spacing"}) {
		t.Errorf("CustomSpotTypes = %v", cfg.CustomSpotTypes)
	}
	if !cfg.InfiniteCanvas {
		t.Error("InfiniteCanvas = false, want true")
	}
	if cfg.ScrollableCanvas {
		t.Error("ScrollableCanvas = true, want false")
	}

	// Hooks are stored verbatim for the rendering layer.
	cfg.CustomRenderer(RenderContext{Canvas: c})
	if rendered != 1 {
		t.Errorf("custom renderer calls = %d, want 1", rendered)
	}
	if got := cfg.CustomBadgeLabel("Hero"); got != "<Hero>" {
		t.Errorf("CustomBadgeLabel(Hero) = %q, want %q", got, "<Hero>")
	}
}

func TestInjectableHelpers(t *testing.T) {
	inj := URL("https://cdn.example.com/a.js")
	if inj.Src != "https://cdn.example.com/a.js" || inj.Attrs != nil {
		t.Errorf("URL() = %+v", inj)
	}
}
