// Package ticker drives a set of columns from one displayed value to the
// next.
//
// The Ticker has no clock. The host passes the current time to [Ticker.SetValue]
// whenever the value changes and to [Ticker.Tick] once per frame, then draws
// the returned [Frame]. Stopping the animation means no longer calling Tick.
//
// # Example
//
//	opts := ticker.DefaultOptions()
//	opts.Alphabets = charlist.Resolve("currency")
//	tk := ticker.New("73.18", opts)
//	tk.SetValue("76.58", time.Now())
//	for tk.Animating() {
//		frame := tk.Tick(time.Now())
//		draw(frame)
//	}
//
// Changing the value mid-flight snapshots every column at the current
// progress before diffing, so glyphs continue from where they are drawn.
package ticker
