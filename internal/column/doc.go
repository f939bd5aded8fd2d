// Package column implements the per-column transition state machine.
//
// A [Column] is idle when its progress reached 1 and animating otherwise:
//
//	col := column.Empty().Retarget('7', lists, charlist.Any)
//	for _, p := range []float64{0, 0.25, 0.5, 1} {
//		s := col.Sample(p, false)
//		// draw s.GlyphIndex shifted by s.RowOffset rows
//	}
//	col = col.Sample(1, false).Column
//
// To change target mid-flight, sample the current progress with
// interruption set and retarget the returned column. The row offset at
// that moment is carried into the new transition and decays linearly to
// zero, so the glyph never snaps.
//
// Width classification ([IsFullWidth], [Column.RenderWidth]) lets a column
// widen or narrow smoothly when its glyph changes script class.
package column
