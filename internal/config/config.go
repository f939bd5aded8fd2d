package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/easing"
	"github.com/san-kum/ticker/internal/ticker"
)

const (
	DefaultDuration  = 500 * time.Millisecond
	DefaultInterval  = 1500 * time.Millisecond
	DefaultFrameRate = 60
	DefaultCharWidth = 1.0
)

type Config struct {
	Alphabets        []string      `yaml:"alphabets"`
	Direction        string        `yaml:"direction"`
	Duration         time.Duration `yaml:"duration"`
	Easing           string        `yaml:"easing"`
	CharWidth        float64       `yaml:"char_width"`
	AnimateOnMount   bool          `yaml:"animate_on_mount"`
	DisableAnimation bool          `yaml:"disable_animation"`
	Prefix           string        `yaml:"prefix"`
	Suffix           string        `yaml:"suffix"`
	FrameRate        int           `yaml:"frame_rate"`
	Theme            string        `yaml:"theme"`
	Feed             Feed          `yaml:"feed"`
}

// Feed describes where demo values come from.
type Feed struct {
	Kind       string        `yaml:"kind"`
	Values     []string      `yaml:"values"`
	Start      float64       `yaml:"start"`
	Volatility float64       `yaml:"volatility"`
	Relative   bool          `yaml:"relative"`
	Decimals   int           `yaml:"decimals"`
	Grouping   bool          `yaml:"grouping"`
	Limit      int           `yaml:"limit"`
	Mask       string        `yaml:"mask"`
	Charset    string        `yaml:"charset"`
	Length     int           `yaml:"length"`
	Interval   time.Duration `yaml:"interval"`
}

func DefaultConfig() *Config {
	return &Config{
		Alphabets: []string{"number"},
		Direction: "any",
		Duration:  DefaultDuration,
		Easing:    easing.Default,
		CharWidth: DefaultCharWidth,
		FrameRate: DefaultFrameRate,
		Feed: Feed{
			Kind:     "sequence",
			Values:   []string{"0", "42", "1337", "9"},
			Interval: DefaultInterval,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over a copy of base, so keys missing from the file keep
// the values of base. A nil base starts from DefaultConfig.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if base != nil {
		cfg = base.Clone()
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Alphabets = append([]string(nil), c.Alphabets...)
	out.Feed.Values = append([]string(nil), c.Feed.Values...)
	return &out
}

// Validate checks the fields that name registered things or must be positive.
func (c *Config) Validate() error {
	if _, err := charlist.ParseDirection(c.Direction); err != nil {
		return &Error{Field: "direction", Err: err}
	}
	if _, err := easing.Lookup(c.Easing); err != nil {
		return &Error{Field: "easing", Err: err}
	}
	if c.Duration < 0 {
		return &Error{Field: "duration", Err: ErrNegativeDuration}
	}
	if c.CharWidth <= 0 {
		return &Error{Field: "char_width", Err: ErrNonPositive}
	}
	if c.FrameRate <= 0 {
		return &Error{Field: "frame_rate", Err: ErrNonPositive}
	}
	if c.Feed.Interval < 0 {
		return &Error{Field: "feed.interval", Err: ErrNegativeDuration}
	}
	return nil
}

// Options builds ticker options. onEnd may be nil.
func (c *Config) Options(onEnd func()) (ticker.Options, error) {
	if err := c.Validate(); err != nil {
		return ticker.Options{}, err
	}
	dir, _ := charlist.ParseDirection(c.Direction)
	ease, _ := easing.Lookup(c.Easing)

	alphabets := c.Alphabets
	if len(alphabets) == 0 {
		alphabets = []string{"number"}
	}

	return ticker.Options{
		Alphabets:        charlist.Resolve(alphabets...),
		Direction:        dir,
		Duration:         c.Duration,
		Easing:           ease,
		CharWidth:        c.CharWidth,
		AnimateOnMount:   c.AnimateOnMount,
		DisableAnimation: c.DisableAnimation,
		Prefix:           c.Prefix,
		Suffix:           c.Suffix,
		OnAnimationEnd:   onEnd,
	}, nil
}

// FrameInterval is the time between two frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(c.FrameRate)
}
