// Package viz draws tickers in the terminal.
//
// [Rasterize] turns a ticker frame into three rows of terminal cells: the
// resting row in the middle and the glyphs scrolling past above and below
// it. [Render] styles those rows with a [Theme]. [Model] is a Bubble Tea
// program that feeds values into a ticker and redraws it every frame.
//
// # Key Bindings
//
//	Space - Pause/Resume the feed
//	N     - Push the next value now
//	E     - Cycle easing functions
//	D     - Cycle scroll direction
//	A     - Toggle animation off and on
//	T     - Cycle color themes
//	?     - Toggle full help
//	Q     - Quit
package viz
