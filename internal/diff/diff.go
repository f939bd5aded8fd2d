// Package diff aligns an old and a new character sequence into per-column
// actions.
//
// Runs of consecutive supported characters of equal length are paired
// position by position. Runs of different length are aligned with a
// unit-cost edit distance. Characters outside every alphabet are passed
// through or replaced without diffing.
package diff

// Action classifies one aligned position.
type Action uint8

const (
	// Same reuses a column slot; its glyph may still change.
	Same Action = iota
	// Insert adds a column for one target character.
	Insert
	// Delete removes the column of one source character.
	Delete
)

func (a Action) String() string {
	switch a {
	case Same:
		return "SAME"
	case Insert:
		return "INSERT"
	case Delete:
		return "DELETE"
	}
	return "UNKNOWN"
}

// Membership reports whether a character can scroll.
type Membership interface {
	Has(r rune) bool
}

// ComputeActions aligns source with target. Same consumes one character from
// each side, Insert one target character and Delete one source character.
func ComputeActions(source, target []rune, supported Membership) []Action {
	si, ti := 0, 0
	actions := make([]Action, 0, max(len(source), len(target)))

	for {
		endS := si == len(source)
		endT := ti == len(target)
		if endS && endT {
			break
		}
		if endS {
			for ; ti < len(target); ti++ {
				actions = append(actions, Insert)
			}
			break
		}
		if endT {
			for ; si < len(source); si++ {
				actions = append(actions, Delete)
			}
			break
		}

		sSupp := supported.Has(source[si])
		tSupp := supported.Has(target[ti])

		switch {
		case sSupp && tSupp:
			se, te := si+1, ti+1
			for se < len(source) && supported.Has(source[se]) {
				se++
			}
			for te < len(target) && supported.Has(target[te]) {
				te++
			}
			actions = appendRun(actions, source[si:se], target[ti:te])
			si, ti = se, te
		case sSupp:
			actions = append(actions, Insert)
			ti++
		case tSupp:
			actions = append(actions, Delete)
			si++
		default:
			actions = append(actions, Same)
			si++
			ti++
		}
	}
	return actions
}

// appendRun aligns two runs of supported characters.
func appendRun(actions []Action, src, tgt []rune) []Action {
	if len(src) == len(tgt) {
		for range src {
			actions = append(actions, Same)
		}
		return actions
	}
	return append(actions, editScript(src, tgt)...)
}

// editScript backtracks a Levenshtein matrix. Ties favour Insert, then
// Delete, then Same.
func editScript(src, tgt []rune) []Action {
	rows, cols := len(src), len(tgt)
	matrix := make([][]int, rows+1)
	for r := range matrix {
		matrix[r] = make([]int, cols+1)
		matrix[r][0] = r
	}
	for c := 0; c <= cols; c++ {
		matrix[0][c] = c
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			cost := 1
			if src[r-1] == tgt[c-1] {
				cost = 0
			}
			matrix[r][c] = min(matrix[r-1][c]+1, matrix[r][c-1]+1, matrix[r-1][c-1]+cost)
		}
	}

	script := make([]Action, 0, max(rows, cols))
	r, c := rows, cols
	for r > 0 || c > 0 {
		switch {
		case r == 0:
			script = append(script, Insert)
			c--
		case c == 0:
			script = append(script, Delete)
			r--
		default:
			ins, del, rep := matrix[r][c-1], matrix[r-1][c], matrix[r-1][c-1]
			if ins < del && ins < rep {
				script = append(script, Insert)
				c--
			} else if del < rep {
				script = append(script, Delete)
				r--
			} else {
				script = append(script, Same)
				r--
				c--
			}
		}
	}

	for i, j := 0, len(script)-1; i < j; i, j = i+1, j-1 {
		script[i], script[j] = script[j], script[i]
	}
	return script
}

// Counts tallies an action sequence.
type Counts struct {
	Same   int
	Insert int
	Delete int
}

// Sources is the number of source characters consumed.
func (c Counts) Sources() int { return c.Same + c.Delete }

// Targets is the number of target characters consumed.
func (c Counts) Targets() int { return c.Same + c.Insert }

// Count tallies actions by kind.
func Count(actions []Action) Counts {
	var c Counts
	for _, a := range actions {
		switch a {
		case Same:
			c.Same++
		case Insert:
			c.Insert++
		case Delete:
			c.Delete++
		}
	}
	return c
}
