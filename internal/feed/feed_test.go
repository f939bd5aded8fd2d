package feed

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/san-kum/ticker/internal/config"
)

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(config.Feed{Kind: "tide"}, nil)
	if !errors.Is(err, ErrUnknownFeed) {
		t.Errorf("expected ErrUnknownFeed, got %v", err)
	}
}

func TestNew_Empty(t *testing.T) {
	for _, cfg := range []config.Feed{
		{Kind: "sequence"},
		{Kind: "toggle"},
		{Kind: "random", Charset: "ab"},
	} {
		if _, err := New(cfg, nil); !errors.Is(err, ErrEmptyFeed) {
			t.Errorf("%s: expected ErrEmptyFeed, got %v", cfg.Kind, err)
		}
	}
}

func TestSequence(t *testing.T) {
	src, err := New(config.Feed{Values: []string{"a", "b", "c"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, src.Next())
	}
	if strings.Join(got, "") != "bcab" {
		t.Errorf("expected bcab, got %v", got)
	}
}

func TestWalk_Grouping(t *testing.T) {
	cfg := config.Feed{Kind: "walk", Start: 98456.32, Decimals: 2, Grouping: true}
	if got := Initial(cfg); got != "98,456.32" {
		t.Errorf("expected 98,456.32, got %s", got)
	}

	src, _ := New(config.Feed{Kind: "walk", Start: 98456.32, Volatility: 250, Decimals: 2, Grouping: true}, rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		v := src.Next()
		parts := strings.Split(v, ".")
		if len(parts) != 2 || len(parts[1]) != 2 {
			t.Fatalf("expected two decimals, got %s", v)
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			t.Fatalf("unparseable %s: %v", v, err)
		}
		if n < 98456.32-250*20 || n > 98456.32+250*20 {
			t.Fatalf("walk escaped its bound: %s", v)
		}
	}
}

func TestWalk_Relative(t *testing.T) {
	w := &Walk{Value: 1000, Volatility: 0.025, Relative: true, rng: rand.New(rand.NewSource(3))}
	prev := 1000.0
	for i := 0; i < 50; i++ {
		n, err := strconv.Atoi(w.Next())
		if err != nil {
			t.Fatal(err)
		}
		if float64(n) < prev*0.975-1 || float64(n) > prev*1.025 {
			t.Fatalf("step too large: %v -> %d", prev, n)
		}
		prev = float64(n)
	}
}

func TestDigits(t *testing.T) {
	src, _ := New(config.Feed{Kind: "digits"}, rand.New(rand.NewSource(5)))
	for i := 0; i < 200; i++ {
		n, err := strconv.Atoi(src.Next())
		if err != nil {
			t.Fatal(err)
		}
		if n < 0 || n >= 10000 {
			t.Fatalf("out of range: %d", n)
		}
	}
}

func TestCounter_Wraps(t *testing.T) {
	c := &Counter{Value: 98, Limit: 99}
	if got := c.Next(); got != "99" {
		t.Errorf("expected 99, got %s", got)
	}
	if got := c.Next(); got != "0" {
		t.Errorf("expected wrap to 0, got %s", got)
	}
}

func TestToggle(t *testing.T) {
	src, _ := New(config.Feed{Kind: "toggle", Values: []string{"8,520.50"}, Mask: "****.**"}, nil)
	if got := src.Next(); got != "****.**" {
		t.Errorf("expected mask first, got %s", got)
	}
	if got := src.Next(); got != "8,520.50" {
		t.Errorf("expected value, got %s", got)
	}
}

func TestRandom(t *testing.T) {
	src, _ := New(config.Feed{Kind: "random", Charset: "AB-", Length: 7}, rand.New(rand.NewSource(9)))
	v := src.Next()
	if len(v) != 7 {
		t.Fatalf("expected 7 chars, got %q", v)
	}
	if strings.Trim(v, "AB-") != "" {
		t.Errorf("character outside charset: %q", v)
	}
}

func TestPresetFeeds(t *testing.T) {
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		src, err := New(cfg.Feed, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if Initial(cfg.Feed) == "" {
			t.Errorf("preset %s: empty initial value", name)
		}
		if src.Next() == "" {
			t.Errorf("preset %s: empty value", name)
		}
	}
}
