// Package easing maps linear animation time in [0,1] to eased progress.
//
// Bounce and BackOut may leave [0,1] transiently; column sampling accepts
// that. Any function with the [Func] signature can stand in for the named
// ones.
package easing

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownEasing indicates an easing name that is not in the table.
var ErrUnknownEasing = errors.New("easing: unknown easing function")

// Func remaps t in [0,1].
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseIn accelerates from rest.
func EaseIn(t float64) float64 { return t * t }

// EaseOut decelerates to rest.
func EaseOut(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOut accelerates for the first half and decelerates for the second.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Bounce settles with three diminishing rebounds.
func Bounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// EaseOutCubic decelerates more sharply than EaseOut.
func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// EaseOutExpo approaches 1 exponentially and lands exactly on it.
func EaseOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// BackOut overshoots past 1 before settling.
func BackOut(t float64) float64 {
	const (
		c1 = 1.70158
		c3 = c1 + 1
	)
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

var table = map[string]Func{
	"linear":       Linear,
	"easeIn":       EaseIn,
	"easeOut":      EaseOut,
	"easeInOut":    EaseInOut,
	"bounce":       Bounce,
	"easeOutCubic": EaseOutCubic,
	"easeOutExpo":  EaseOutExpo,
	"backOut":      BackOut,
}

// Default is the easing used when none is configured.
const Default = "easeInOut"

// Lookup returns the named easing function.
func Lookup(name string) (Func, error) {
	fn, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEasing, name)
	}
	return fn, nil
}

// Names returns the table's names, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Sample evaluates fn at n+1 evenly spaced points from 0 to 1.
func Sample(fn Func, n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = fn(float64(i) / float64(n))
	}
	return out
}
