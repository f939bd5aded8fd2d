package config

import (
	"fmt"
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"price": {
		Alphabets: []string{"currency"}, Direction: "any", Duration: 800 * time.Millisecond,
		Easing: "easeInOut", CharWidth: 1, Prefix: "$",
		Feed: Feed{Kind: "sequence", Values: []string{"73.18", "76.58", "173.50", "9.10"}, Interval: 1800 * time.Millisecond},
	},
	"digits": {
		Alphabets: []string{"number"}, Direction: "any", Duration: 500 * time.Millisecond,
		Easing: "easeInOut", CharWidth: 1,
		Feed: Feed{Kind: "digits", Start: 999, Interval: 1500 * time.Millisecond},
	},
	"btc": {
		Alphabets: []string{"currency"}, Direction: "any", Duration: 500 * time.Millisecond,
		Easing: "easeOutCubic", CharWidth: 1, Prefix: "$",
		Feed: Feed{Kind: "walk", Start: 98456.32, Volatility: 250, Decimals: 2, Grouping: true, Interval: 1500 * time.Millisecond},
	},
	"volume": {
		Alphabets: []string{"0123456789,"}, Direction: "any", Duration: 500 * time.Millisecond,
		Easing: "easeInOut", CharWidth: 1,
		Feed: Feed{Kind: "walk", Start: 8567890, Volatility: 0.025, Relative: true, Grouping: true, Interval: 1500 * time.Millisecond},
	},
	"score": {
		Alphabets: []string{"number"}, Direction: "down", Duration: 500 * time.Millisecond,
		Easing: "bounce", CharWidth: 1,
		Feed: Feed{Kind: "counter", Start: 1, Limit: 99, Interval: 1500 * time.Millisecond},
	},
	"privacy": {
		Alphabets: []string{"0123456789.,*"}, Direction: "any", Duration: 600 * time.Millisecond,
		Easing: "easeInOut", CharWidth: 1,
		Feed: Feed{Kind: "toggle", Values: []string{"8,520.50"}, Mask: "****.**", Interval: 1600 * time.Millisecond},
	},
	"mixed": {
		Alphabets: []string{"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"}, Direction: "any", Duration: 500 * time.Millisecond,
		Easing: "backOut", CharWidth: 1,
		Feed: Feed{Kind: "random", Charset: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-#$", Length: 7, Values: []string{"A1-B2#C"}, Interval: 1500 * time.Millisecond},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in, or
// nil when the preset does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := p.Clone()
	if cfg.FrameRate == 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	return cfg
}

// LookupPreset is GetPreset with an error for unknown names.
func LookupPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
