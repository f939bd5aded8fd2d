package ticker

import (
	"time"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/column"
	"github.com/san-kum/ticker/internal/diff"
	"github.com/san-kum/ticker/internal/easing"
	"github.com/san-kum/ticker/internal/logging"
)

const DefaultDuration = 500 * time.Millisecond

// Options configures a Ticker.
type Options struct {
	// Alphabets are tried in order when resolving a column's path.
	Alphabets []*charlist.List
	Direction charlist.Direction
	Duration  time.Duration
	Easing    easing.Func
	// CharWidth scales every column's rendered width.
	CharWidth float64

	AnimateOnMount   bool
	DisableAnimation bool

	Prefix string
	Suffix string

	// OnAnimationEnd runs after an animated transition settles.
	OnAnimationEnd func()
}

// DefaultOptions scrolls digits the short way round in 500ms with easeInOut.
func DefaultOptions() Options {
	return Options{
		Alphabets: []*charlist.List{charlist.New(charlist.Number)},
		Direction: charlist.Any,
		Duration:  DefaultDuration,
		Easing:    easing.EaseInOut,
		CharWidth: 1,
	}
}

// Ticker owns the column set for one displayed value and advances it when
// the host calls Tick. It is not safe for concurrent use.
type Ticker struct {
	opts      Options
	supported charlist.Set

	columns []column.Column
	value   string

	progress  float64
	start     time.Time
	animating bool
	pending   bool

	// captured when a transition starts
	duration time.Duration
	ease     easing.Func
}

// New creates a Ticker showing initial. With AnimateOnMount the columns
// start empty and scroll in on the first Tick.
func New(initial string, opts Options) *Ticker {
	if opts.Easing == nil {
		opts.Easing = easing.EaseInOut
	}
	if opts.CharWidth <= 0 {
		opts.CharWidth = 1
	}

	t := &Ticker{
		opts:      opts,
		supported: charlist.UnionSupported(opts.Alphabets...),
		value:     initial,
		progress:  1,
	}

	if opts.AnimateOnMount {
		t.pending = true
		return t
	}

	for _, r := range initial {
		c := column.Empty().Retarget(r, opts.Alphabets, opts.Direction)
		t.columns = append(t.columns, c.Sample(1, false).Column)
	}
	return t
}

// SetValue starts a transition to value. It reports false when value is
// already displayed.
func (t *Ticker) SetValue(value string, now time.Time) bool {
	if value == t.value && !t.pending {
		return false
	}
	t.pending = false
	t.transition(value, now)
	return true
}

func (t *Ticker) transition(value string, now time.Time) {
	current := t.columns
	if t.animating && t.progress > 0 && t.progress < 1 {
		snap := make([]column.Column, len(current))
		for i, c := range current {
			snap[i] = c.Sample(t.progress, true).Column
		}
		current = snap
	}

	live := make([]column.Column, 0, len(current))
	source := make([]rune, 0, len(current))
	for _, c := range current {
		if c.CurrentWidth > 0 {
			live = append(live, c)
			source = append(source, c.CurrentChar)
		}
	}

	target := []rune(value)
	actions := diff.ComputeActions(source, target, t.supported)

	result := make([]column.Column, 0, len(actions))
	ci, ti := 0, 0
	for _, a := range actions {
		switch a {
		case diff.Insert:
			result = append(result, t.retarget(column.Empty(), target[ti]))
			ti++
		case diff.Same:
			result = append(result, t.retarget(columnAt(live, ci), target[ti]))
			ci++
			ti++
		case diff.Delete:
			result = append(result, t.retarget(columnAt(live, ci), charlist.Empty))
			ci++
		}
	}

	counts := diff.Count(actions)
	logging.Logger().Debug("ticker retarget",
		"from", t.value, "to", value,
		"same", counts.Same, "insert", counts.Insert, "delete", counts.Delete,
		"interrupted", t.animating)

	t.columns = result
	t.value = value

	if t.opts.DisableAnimation || len(result) == 0 {
		t.settle(false)
		return
	}
	t.progress = 0
	t.start = now
	t.animating = true
	t.duration = t.opts.Duration
	t.ease = t.opts.Easing
}

func (t *Ticker) retarget(c column.Column, r rune) column.Column {
	return c.Retarget(r, t.opts.Alphabets, t.opts.Direction)
}

func columnAt(cols []column.Column, i int) column.Column {
	if i < len(cols) {
		return cols[i]
	}
	return column.Empty()
}

// Tick advances the animation to now and returns the frame to draw.
func (t *Ticker) Tick(now time.Time) Frame {
	if t.pending {
		t.pending = false
		t.transition(t.value, now)
	}
	if !t.animating {
		return t.Frame()
	}

	linear := 1.0
	if t.duration > 0 {
		linear = float64(now.Sub(t.start)) / float64(t.duration)
	}
	linear = max(0, min(linear, 1))
	t.progress = t.ease(linear)

	if linear >= 1 {
		t.settle(true)
	}
	return t.Frame()
}

// settle completes every column and drops the ones that vanished.
func (t *Ticker) settle(notify bool) {
	final := make([]column.Column, 0, len(t.columns))
	for _, c := range t.columns {
		c = c.Sample(1, false).Column
		if c.CurrentWidth > 0 {
			final = append(final, c)
		}
	}
	t.columns = final
	t.progress = 1
	t.animating = false

	logging.Logger().Debug("ticker settled", "value", t.value, "columns", len(final))
	if notify && t.opts.OnAnimationEnd != nil {
		t.opts.OnAnimationEnd()
	}
}

// Value is the most recently set value.
func (t *Ticker) Value() string { return t.value }

// Animating reports whether a transition is in flight.
func (t *Ticker) Animating() bool { return t.animating || t.pending }

// Progress is the eased progress of the current transition, 1 when idle.
func (t *Ticker) Progress() float64 { return t.progress }

// Columns returns a copy of the column set.
func (t *Ticker) Columns() []column.Column {
	out := make([]column.Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Options returns the active options.
func (t *Ticker) Options() Options { return t.opts }

// SetDirection applies to the next transition.
func (t *Ticker) SetDirection(d charlist.Direction) { t.opts.Direction = d }

// SetEasing applies to the next transition. Nil selects the default.
func (t *Ticker) SetEasing(fn easing.Func) {
	if fn == nil {
		fn = easing.EaseInOut
	}
	t.opts.Easing = fn
}

// SetDuration applies to the next transition.
func (t *Ticker) SetDuration(d time.Duration) { t.opts.Duration = d }

// SetDisableAnimation switches between animated and immediate updates.
func (t *Ticker) SetDisableAnimation(disabled bool) { t.opts.DisableAnimation = disabled }
