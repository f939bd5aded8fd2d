package charlist

import (
	"fmt"
	"sort"
	"strings"
)

// Empty is the sentinel character meaning "no glyph".
const Empty rune = 0

// Direction selects how a column scrolls between two characters.
type Direction int

const (
	// Any takes the shorter way around the alphabet.
	Any Direction = iota
	// Up always scrolls towards lower indices.
	Up
	// Down always scrolls towards higher indices.
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "any"
	}
}

// ParseDirection parses any, up or down, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "":
		return Any, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Any, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Directions returns every direction in declaration order.
func Directions() []Direction { return []Direction{Any, Up, Down} }

// Set is a set of characters.
type Set map[rune]struct{}

// Has reports whether r is in the set.
func (s Set) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Add puts r in the set.
func (s Set) Add(r rune) { s[r] = struct{}{} }

// Union adds every member of other to s.
func (s Set) Union(other Set) {
	for r := range other {
		s[r] = struct{}{}
	}
}

// Sorted returns the members in code point order.
func (s Set) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Path holds the endpoints of a scroll path inside a List's sequence.
// Either endpoint may lie beyond the alphabet's first copy when the
// direction forces a wraparound.
type Path struct {
	Start int
	End   int
}

// Steps is the number of glyph transitions along the path.
func (p Path) Steps() int {
	if p.End >= p.Start {
		return p.End - p.Start
	}
	return p.Start - p.End
}

// List is an immutable circular alphabet.
type List struct {
	size    int
	chars   []rune
	indices map[rune]int
}

// New builds a List from the code points of alphabet. When a character
// repeats, the index of its last occurrence wins.
func New(alphabet string) *List {
	runes := []rune(alphabet)
	n := len(runes)

	l := &List{
		size:    n,
		chars:   make([]rune, 2*n+1),
		indices: make(map[rune]int, n),
	}
	for i, r := range runes {
		l.indices[r] = i
	}

	l.chars[0] = Empty
	for i, r := range runes {
		l.chars[1+i] = r
		l.chars[1+n+i] = r
	}
	return l
}

// Size is the number of code points in the source alphabet.
func (l *List) Size() int { return l.size }

// Chars returns the circular sequence. Callers must not modify it.
func (l *List) Chars() []rune { return l.chars }

// Supported returns the characters this list can place on a path.
func (l *List) Supported() Set {
	s := make(Set, len(l.indices))
	for r := range l.indices {
		s[r] = struct{}{}
	}
	return s
}

// Supports reports whether r belongs to the alphabet. The sentinel is not
// reported as supported.
func (l *List) Supports(r rune) bool {
	_, ok := l.indices[r]
	return ok
}

// Path resolves the scroll path from start to end. It returns false when a
// non-sentinel endpoint is missing from the alphabet.
func (l *List) Path(start, end rune, dir Direction) (Path, bool) {
	startIndex := l.indexOf(start)
	endIndex := l.indexOf(end)
	if startIndex < 0 || endIndex < 0 {
		return Path{}, false
	}

	n := l.size
	switch dir {
	case Down:
		if end == Empty {
			endIndex = len(l.chars)
		} else if endIndex < startIndex {
			endIndex += n
		}
	case Up:
		if startIndex < endIndex {
			startIndex += n
		}
	case Any:
		if start != Empty && end != Empty {
			if endIndex < startIndex {
				nonWrap := startIndex - endIndex
				wrap := n - startIndex + endIndex
				if wrap < nonWrap {
					endIndex += n
				}
			} else if startIndex < endIndex {
				nonWrap := endIndex - startIndex
				wrap := n - endIndex + startIndex
				if wrap < nonWrap {
					startIndex += n
				}
			}
		}
	}
	return Path{Start: startIndex, End: endIndex}, true
}

func (l *List) indexOf(r rune) int {
	if r == Empty {
		return 0
	}
	if i, ok := l.indices[r]; ok {
		return i + 1
	}
	return -1
}

// UnionSupported merges the supported sets of lists.
func UnionSupported(lists ...*List) Set {
	s := make(Set)
	for _, l := range lists {
		if l == nil {
			continue
		}
		s.Union(l.Supported())
	}
	return s
}
