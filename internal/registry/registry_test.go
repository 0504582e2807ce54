package registry

import (
	"sort"
	"testing"
	"unicode/utf8"
)

func TestBuiltinRampsRegistered(t *testing.T) {
	for _, name := range []string{"ascii", "blocks", "dots", "shade", "digits"} {
		if !Exists(name) {
			t.Errorf("built-in ramp %q not registered", name)
		}
	}
}

func TestBuiltinRampsUsable(t *testing.T) {
	for _, r := range List() {
		if n := utf8.RuneCountInString(r.Glyphs); n < 2 {
			t.Errorf("ramp %q has %d glyphs, need at least 2", r.Name, n)
		}
		if !utf8.ValidString(r.Glyphs) {
			t.Errorf("ramp %q is not valid UTF-8", r.Name)
		}
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if !sort.SliceIsSorted(list, func(i, j int) bool { return list[i].Name < list[j].Name }) {
		t.Error("List() should be sorted by name")
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("blocks")
	if err != nil {
		t.Fatalf("Lookup(blocks) failed: %v", err)
	}
	if r.Glyphs != " ░▒▓█" {
		t.Errorf("blocks glyphs = %q", r.Glyphs)
	}

	if _, err := Lookup("no-such-ramp"); err == nil {
		t.Error("Lookup of unknown ramp should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ramp should panic")
		}
	}()
	Register(Ramp{Name: "ascii", Glyphs: "ab"})
}
