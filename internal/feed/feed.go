// Package feed produces the stream of values a demo ticker cycles through.
package feed

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/ticker/internal/config"
)

// ErrUnknownFeed indicates a feed kind that has no source.
var ErrUnknownFeed = errors.New("feed: unknown kind")

// ErrEmptyFeed indicates a feed that has nothing to emit.
var ErrEmptyFeed = errors.New("feed: no values")

// Source yields successive display strings.
type Source interface {
	Next() string
}

// Kinds lists the feed kinds New accepts.
func Kinds() []string {
	return []string{"sequence", "walk", "digits", "counter", "toggle", "random"}
}

// New builds the source described by cfg. A nil rng is seeded from the clock.
func New(cfg config.Feed, rng *rand.Rand) (Source, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch cfg.Kind {
	case "", "sequence":
		if len(cfg.Values) == 0 {
			return nil, ErrEmptyFeed
		}
		return &Sequence{Values: cfg.Values, i: 1}, nil
	case "walk":
		return &Walk{
			Value:      cfg.Start,
			Volatility: cfg.Volatility,
			Relative:   cfg.Relative,
			Decimals:   cfg.Decimals,
			Grouping:   cfg.Grouping,
			rng:        rng,
		}, nil
	case "digits":
		return &Digits{rng: rng}, nil
	case "counter":
		return &Counter{Value: int(cfg.Start), Limit: cfg.Limit}, nil
	case "toggle":
		if len(cfg.Values) == 0 {
			return nil, ErrEmptyFeed
		}
		return &Toggle{Value: cfg.Values[0], Mask: cfg.Mask}, nil
	case "random":
		if cfg.Charset == "" || cfg.Length <= 0 {
			return nil, ErrEmptyFeed
		}
		return &Random{Charset: []rune(cfg.Charset), Length: cfg.Length, rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownFeed, cfg.Kind, Kinds())
	}
}

// Initial is the value shown before the first Next.
func Initial(cfg config.Feed) string {
	switch cfg.Kind {
	case "walk":
		w := Walk{Value: cfg.Start, Decimals: cfg.Decimals, Grouping: cfg.Grouping}
		return w.format()
	case "digits", "counter":
		return strconv.Itoa(int(cfg.Start))
	}
	if len(cfg.Values) > 0 {
		return cfg.Values[0]
	}
	return ""
}

// Sequence cycles through a fixed list.
type Sequence struct {
	Values []string
	i      int
}

func (s *Sequence) Next() string {
	v := s.Values[s.i%len(s.Values)]
	s.i++
	return v
}

// Walk is a random walk. Volatility is an absolute step bound, or a fraction
// of the current value when Relative is set.
type Walk struct {
	Value      float64
	Volatility float64
	Relative   bool
	Decimals   int
	Grouping   bool

	rng *rand.Rand
}

func (w *Walk) Next() string {
	step := (w.rng.Float64() - 0.5) * 2 * w.Volatility
	if w.Relative {
		w.Value *= 1 + step
	} else {
		w.Value += step
	}
	if w.Decimals == 0 {
		w.Value = math.Floor(w.Value)
	}
	return w.format()
}

var printer = message.NewPrinter(language.English)

func (w *Walk) format() string {
	if !w.Grouping {
		return strconv.FormatFloat(w.Value, 'f', w.Decimals, 64)
	}
	return printer.Sprintf("%."+strconv.Itoa(w.Decimals)+"f", w.Value)
}

// Digits jumps to a random integer whose digit count varies between two and
// four, so columns appear and disappear.
type Digits struct {
	rng *rand.Rand
}

func (d *Digits) Next() string {
	r := d.rng.Float64()
	limit := 100
	switch {
	case r > 0.8:
		limit = 10000
	case r > 0.5:
		limit = 1000
	}
	return strconv.Itoa(d.rng.Intn(limit))
}

// Counter counts up and wraps to zero once it passes Limit.
type Counter struct {
	Value int
	Limit int
}

func (c *Counter) Next() string {
	c.Value++
	if c.Limit > 0 && c.Value > c.Limit {
		c.Value = 0
	}
	return strconv.Itoa(c.Value)
}

// Toggle alternates between a value and its mask, starting with the mask.
type Toggle struct {
	Value  string
	Mask   string
	masked bool
}

func (t *Toggle) Next() string {
	t.masked = !t.masked
	if t.masked {
		return t.Mask
	}
	return t.Value
}

// Random draws Length characters from Charset.
type Random struct {
	Charset []rune
	Length  int

	rng *rand.Rand
}

func (r *Random) Next() string {
	out := make([]rune, r.Length)
	for i := range out {
		out[i] = r.Charset[r.rng.Intn(len(r.Charset))]
	}
	return string(out)
}
