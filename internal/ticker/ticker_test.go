package ticker_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/column"
	"github.com/san-kum/ticker/internal/easing"
	"github.com/san-kum/ticker/internal/ticker"
)

var _ = Describe("Ticker", func() {
	var (
		t0   time.Time
		opts ticker.Options
		ends int
	)

	BeforeEach(func() {
		t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		ends = 0
		opts = ticker.DefaultOptions()
		opts.Alphabets = charlist.Resolve("currency")
		opts.Duration = time.Second
		opts.Easing = easing.Linear
		opts.OnAnimationEnd = func() { ends++ }
	})

	at := func(d time.Duration) time.Time { return t0.Add(d) }

	Describe("construction", func() {
		It("shows the initial value without animating", func() {
			tk := ticker.New("73.18", opts)

			Expect(tk.Animating()).To(BeFalse())
			f := tk.Frame()
			Expect(f.Glyphs()).To(Equal("73.18"))
			Expect(f.Progress).To(Equal(1.0))
			Expect(f.Cells).To(HaveLen(5))
			for _, c := range f.Cells {
				Expect(c.Width).To(BeNumerically("~", column.HalfWidthRatio, 1e-9))
				Expect(c.Offset).To(BeZero())
				Expect(c.Opacity).To(Equal(1.0))
			}
		})

		It("scrolls in from nothing when animating on mount", func() {
			opts.AnimateOnMount = true
			tk := ticker.New("42", opts)

			Expect(tk.Frame().Cells).To(BeEmpty())
			Expect(tk.Animating()).To(BeTrue())

			f := tk.Tick(at(0))
			Expect(f.Progress).To(BeZero())
			Expect(tk.Columns()).To(HaveLen(2))

			f = tk.Tick(at(time.Second))
			Expect(f.Glyphs()).To(Equal("42"))
			Expect(ends).To(Equal(1))
		})

		It("applies prefix and suffix to the accessible text", func() {
			opts.Prefix = "$"
			opts.Suffix = " USD"
			f := ticker.New("9.10", opts).Frame()
			Expect(f.Text).To(Equal("$9.10 USD"))
			Expect(f.Glyphs()).To(Equal("9.10"))
		})
	})

	Describe("transitions", func() {
		It("interpolates and settles on the new value", func() {
			tk := ticker.New("73.18", opts)
			Expect(tk.SetValue("76.58", at(0))).To(BeTrue())
			Expect(tk.Animating()).To(BeTrue())

			f := tk.Tick(at(500 * time.Millisecond))
			Expect(f.Progress).To(BeNumerically("~", 0.5, 1e-9))
			Expect(ends).To(BeZero())

			f = tk.Tick(at(time.Second))
			Expect(tk.Animating()).To(BeFalse())
			Expect(f.Glyphs()).To(Equal("76.58"))
			Expect(ends).To(Equal(1))

			tk.Tick(at(2 * time.Second))
			Expect(ends).To(Equal(1))
		})

		It("ignores an unchanged value", func() {
			tk := ticker.New("12", opts)
			Expect(tk.SetValue("12", at(0))).To(BeFalse())
			Expect(tk.Animating()).To(BeFalse())
		})

		It("adds one column when the digit count grows", func() {
			tk := ticker.New("99", opts)
			tk.SetValue("100", at(0))

			cols := tk.Columns()
			Expect(cols).To(HaveLen(3))
			Expect(cols[0].Inserting()).To(BeTrue())
			Expect(cols[1].Inserting()).To(BeFalse())
			Expect(cols[2].Inserting()).To(BeFalse())

			f := tk.Tick(at(time.Second))
			Expect(f.Glyphs()).To(Equal("100"))
		})

		It("keeps deleted columns until the transition completes", func() {
			tk := ticker.New("100", opts)
			tk.SetValue("9", at(0))
			Expect(tk.Columns()).To(HaveLen(3))

			f := tk.Tick(at(500 * time.Millisecond))
			Expect(f.Cells).To(HaveLen(3))
			Expect(f.Cells[0].Opacity).To(BeNumerically("~", 0.5, 1e-9))

			f = tk.Tick(at(time.Second))
			Expect(tk.Columns()).To(HaveLen(1))
			Expect(f.Glyphs()).To(Equal("9"))
		})

		It("passes unsupported characters through", func() {
			tk := ticker.New("$1", opts)
			tk.SetValue("$2", at(0))
			Expect(tk.Columns()).To(HaveLen(2))

			f := tk.Tick(at(time.Second))
			Expect(f.Glyphs()).To(Equal("$2"))
		})

		It("morphs width when the script class changes", func() {
			tk := ticker.New("1", opts)
			tk.SetValue("中", at(0))

			f := tk.Tick(at(time.Second))
			Expect(f.Glyphs()).To(Equal("中"))
			Expect(f.Width()).To(BeNumerically("~", column.FullWidthRatio, 1e-9))
		})

		It("settles immediately when animation is disabled", func() {
			opts.DisableAnimation = true
			tk := ticker.New("1", opts)
			tk.SetValue("23", at(0))

			Expect(tk.Animating()).To(BeFalse())
			Expect(tk.Frame().Glyphs()).To(Equal("23"))
			Expect(ends).To(BeZero())
		})

		It("completes on the first tick with a zero duration", func() {
			opts.Duration = 0
			tk := ticker.New("1", opts)
			tk.SetValue("2", at(0))
			Expect(tk.Tick(at(0)).Glyphs()).To(Equal("2"))
			Expect(tk.Animating()).To(BeFalse())
		})

		It("uses a custom easing function", func() {
			opts.Easing = func(t float64) float64 { return t * t }
			tk := ticker.New("1", opts)
			tk.SetValue("2", at(0))
			Expect(tk.Tick(at(500 * time.Millisecond)).Progress).To(BeNumerically("~", 0.25, 1e-9))
		})

		It("captures easing and duration when a transition starts", func() {
			tk := ticker.New("1", opts)
			tk.SetValue("2", at(0))
			tk.SetDuration(10 * time.Second)
			tk.SetEasing(easing.EaseIn)
			Expect(tk.Tick(at(500 * time.Millisecond)).Progress).To(BeNumerically("~", 0.5, 1e-9))
		})
	})

	Describe("interruption", func() {
		It("carries the mid-flight offset into the next transition", func() {
			// Over the currency alphabet '0' -> '8' wraps backwards in four steps.
			tk := ticker.New("0", opts)
			tk.SetValue("8", at(0))

			f := tk.Tick(at(125 * time.Millisecond))
			Expect(f.Cells[0].Offset).To(BeNumerically("~", -0.5, 1e-9))

			tk.SetValue("5", at(125*time.Millisecond))
			cols := tk.Columns()
			Expect(cols).To(HaveLen(1))
			Expect(cols[0].PrevDelta).To(BeNumerically("~", -0.5, 1e-9))

			f = tk.Frame()
			Expect(f.Progress).To(BeZero())
			Expect(f.Cells[0].Offset).To(BeNumerically("~", -0.5, 1e-9))

			prev := f.Progress
			for _, ms := range []time.Duration{325, 525, 725, 925} {
				f = tk.Tick(at(ms * time.Millisecond))
				Expect(f.Progress).To(BeNumerically(">", prev))
				prev = f.Progress
			}

			f = tk.Tick(at(1125 * time.Millisecond))
			Expect(f.Glyphs()).To(Equal("5"))
			Expect(f.Cells[0].Offset).To(BeZero())
			Expect(tk.Columns()[0].PrevDelta).To(BeZero())
			Expect(ends).To(Equal(1))
		})

		It("drops columns that never became visible", func() {
			tk := ticker.New("1", opts)
			tk.SetValue("12", at(0))
			tk.SetValue("1", at(0))

			f := tk.Tick(at(time.Second))
			Expect(f.Glyphs()).To(Equal("1"))
		})
	})

	Describe("options", func() {
		It("scrolls forward with the down direction", func() {
			opts.Direction = charlist.Down
			tk := ticker.New("5", opts)
			tk.SetValue("2", at(0))

			col := tk.Columns()[0]
			Expect(col.EndIndex).To(BeNumerically(">", col.StartIndex))
		})

		It("switches direction for later transitions", func() {
			tk := ticker.New("2", opts)
			tk.SetDirection(charlist.Up)
			tk.SetValue("5", at(0))

			col := tk.Columns()[0]
			Expect(col.StartIndex).To(BeNumerically(">", col.EndIndex))
		})

		It("scales widths by the char width", func() {
			opts.CharWidth = 2
			f := ticker.New("1", opts).Frame()
			Expect(f.Width()).To(BeNumerically("~", 2*column.HalfWidthRatio, 1e-9))
		})
	})
})
