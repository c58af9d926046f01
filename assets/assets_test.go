package assets

import (
	"io/fs"
	"slices"
	"testing"

	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/replay"
)

func TestEmbeddedLevelsBuild(t *testing.T) {
	l := NewLevelLoader("")
	names, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	want := []string{"test_one", "test_two", "tiled_one"}
	if !slices.Equal(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}

	for _, name := range names {
		desc, err := l.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		lvl, err := core.NewLevel(desc)
		if err != nil {
			t.Errorf("NewLevel(%s): %v", name, err)
			continue
		}
		if lvl.Goal() == nil || len(lvl.Children()) == 0 {
			t.Errorf("%s: expected a goal and at least one child", name)
		}
	}
}

func TestOrder(t *testing.T) {
	l := NewLevelLoader("")
	if _, err := l.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	got := l.Order([]string{"tiled_one", "missing", "test_one", "tiled_one"})
	want := []string{"tiled_one", "test_one", "test_two"}
	if !slices.Equal(got, want) {
		t.Errorf("Order = %v, want %v", got, want)
	}
}

func TestExampleScriptsParse(t *testing.T) {
	paths, err := fs.Glob(Scripts(), "scripts/*.yaml")
	if err != nil || len(paths) == 0 {
		t.Fatalf("no scripts: %v", err)
	}
	l := NewLevelLoader("")
	for _, p := range paths {
		data, err := fs.ReadFile(Scripts(), p)
		if err != nil {
			t.Fatal(err)
		}
		s, err := replay.Parse(data)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if _, err := l.Get(s.Level); err != nil {
			t.Errorf("%s names unknown level %q: %v", p, s.Level, err)
		}
	}
}
