package easing

import (
	"errors"
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	for _, name := range Names() {
		fn, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		t    float64
		want float64
	}{
		{"linear", Linear, 0.3, 0.3},
		{"easeIn", EaseIn, 0.5, 0.25},
		{"easeOut", EaseOut, 0.5, 0.75},
		{"easeInOut low", EaseInOut, 0.25, 0.125},
		{"easeInOut high", EaseInOut, 0.75, 0.875},
		{"easeOutCubic", EaseOutCubic, 0.5, 0.875},
		{"bounce first arc", Bounce, 0.2, 7.5625 * 0.04},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.t, got, tt.want)
		}
	}
}

func TestBackOutOvershoots(t *testing.T) {
	if got := BackOut(0.6); got <= 1 {
		t.Errorf("BackOut(0.6) = %v, want > 1", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("wobble"); !errors.Is(err, ErrUnknownEasing) {
		t.Errorf("expected ErrUnknownEasing, got %v", err)
	}
	if _, err := Lookup(Default); err != nil {
		t.Errorf("default easing missing: %v", err)
	}
}

func TestSample(t *testing.T) {
	s := Sample(Linear, 4)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(s) != len(want) {
		t.Fatalf("len = %d", len(s))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
	if len(Sample(Linear, 0)) != 2 {
		t.Error("n < 1 should clamp to one interval")
	}
}
