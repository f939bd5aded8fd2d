package charlist

import (
	"errors"
	"testing"
)

func TestNew_Layout(t *testing.T) {
	l := New("abc")
	want := []rune{Empty, 'a', 'b', 'c', 'a', 'b', 'c'}
	got := l.Chars()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chars[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if l.Size() != 3 {
		t.Errorf("Size() = %d, want 3", l.Size())
	}
}

func TestNew_LastOccurrenceWins(t *testing.T) {
	l := New("abca")

	if n := len(l.Supported()); n != 3 {
		t.Errorf("supported = %d characters, want 3", n)
	}
	// 'a' resolves to its last position (index 3 -> 4), so a->b under
	// Down has to wrap.
	p, ok := l.Path('a', 'b', Down)
	if !ok {
		t.Fatal("expected path")
	}
	if p.Start != 4 || p.End != 6 {
		t.Errorf("path = %+v, want {4 6}", p)
	}
}

func TestPath(t *testing.T) {
	digits := New(Number)

	tests := []struct {
		name       string
		start, end rune
		dir        Direction
		want       Path
	}{
		{"any wraps forward", '9', '1', Any, Path{10, 12}},
		{"any wraps backward", '1', '9', Any, Path{12, 10}},
		{"any tie keeps direct up", '0', '5', Any, Path{1, 6}},
		{"any tie keeps direct down", '5', '0', Any, Path{6, 1}},
		{"any from empty", Empty, '5', Any, Path{0, 6}},
		{"any to empty", '5', Empty, Any, Path{6, 0}},
		{"down to empty scrolls off", '3', Empty, Down, Path{4, 21}},
		{"down wraps", '5', '2', Down, Path{6, 13}},
		{"down direct", '2', '5', Down, Path{3, 6}},
		{"up wraps", '2', '5', Up, Path{13, 6}},
		{"up direct", '5', '2', Up, Path{6, 3}},
		{"up from empty", Empty, '5', Up, Path{10, 6}},
		{"same char", '7', '7', Any, Path{8, 8}},
		{"empty to empty", Empty, Empty, Any, Path{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := digits.Path(tt.start, tt.end, tt.dir)
			if !ok {
				t.Fatal("expected path to resolve")
			}
			if got != tt.want {
				t.Errorf("Path(%q, %q, %v) = %+v, want %+v", tt.start, tt.end, tt.dir, got, tt.want)
			}
		})
	}
}

func TestPath_Unsupported(t *testing.T) {
	digits := New(Number)
	if _, ok := digits.Path('x', '1', Any); ok {
		t.Error("expected unsupported start to fail")
	}
	if _, ok := digits.Path('1', '$', Down); ok {
		t.Error("expected unsupported end to fail")
	}
	if _, ok := New("").Path('1', '2', Any); ok {
		t.Error("expected empty alphabet to fail")
	}
}

func TestPath_DirectionMonotonic(t *testing.T) {
	for _, alphabet := range []string{Number, Alphabet, Currency, "x"} {
		l := New(alphabet)
		chars := append([]rune{Empty}, []rune(alphabet)...)
		for _, a := range chars {
			for _, b := range chars {
				down, ok := l.Path(a, b, Down)
				if !ok {
					t.Fatalf("down %q->%q unresolved", a, b)
				}
				if down.End < down.Start {
					t.Errorf("%s: down %q->%q = %+v", alphabet, a, b, down)
				}
				up, _ := l.Path(a, b, Up)
				if up.Start < up.End {
					t.Errorf("%s: up %q->%q = %+v", alphabet, a, b, up)
				}
				anyPath, _ := l.Path(a, b, Any)
				if anyPath.Steps() > l.Size() {
					t.Errorf("%s: any %q->%q takes %d steps", alphabet, a, b, anyPath.Steps())
				}
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"ANY", Any},
		{"up", Up},
		{" Down ", Down},
		{"", Any},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestResolveAndPresets(t *testing.T) {
	lists := Resolve("number", "*#")
	if len(lists) != 2 {
		t.Fatalf("got %d lists", len(lists))
	}
	if lists[0].Size() != 10 {
		t.Errorf("number preset size = %d", lists[0].Size())
	}
	if !lists[1].Supports('#') || lists[1].Supports('1') {
		t.Error("literal alphabet not used as-is")
	}

	s := UnionSupported(lists...)
	if !s.Has('5') || !s.Has('*') || s.Has(Empty) {
		t.Errorf("unexpected union %v", s.Sorted())
	}

	if _, err := Preset("klingon"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if len(PresetNames()) != 4 {
		t.Errorf("expected 4 presets, got %v", PresetNames())
	}
}
