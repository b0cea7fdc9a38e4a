package render

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("default width = %d, want 80", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("default style = %q, want dark", opts.Style)
	}
	if !opts.PreserveNewLines {
		t.Error("PreserveNewLines should default to true")
	}
}

func TestOptionBuilders(t *testing.T) {
	opts := DefaultOptions().
		WithWidth(120).
		WithStyle("light").
		WithEmoji(false).
		WithPreserveNewLines(false)

	if opts.Width != 120 || opts.Style != "light" || opts.EnableEmoji || opts.PreserveNewLines {
		t.Errorf("option builders produced %+v", opts)
	}
}

func TestOptionBuildersDoNotMutateReceiver(t *testing.T) {
	base := DefaultOptions()
	_ = base.WithWidth(200)

	if base.Width != 80 {
		t.Errorf("WithWidth mutated its receiver: %d", base.Width)
	}
}

func TestCacheKeyDistinguishesOptions(t *testing.T) {
	a := cacheKey(DefaultOptions())
	b := cacheKey(DefaultOptions().WithWidth(40))
	c := cacheKey(DefaultOptions().WithStyle("light"))

	if a == b || a == c || b == c {
		t.Errorf("cache keys should differ: %q %q %q", a, b, c)
	}
}

func TestLoadOptionsFromConfigWithWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := LoadOptionsFromConfigWithWidth(72)
	if opts.Width != 72 {
		t.Errorf("width = %d, want 72", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("style = %q, want default dark", opts.Style)
	}
}
