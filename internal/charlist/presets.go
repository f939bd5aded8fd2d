package charlist

import (
	"fmt"
	"sort"
)

// Built-in alphabets.
const (
	Number       = "0123456789"
	Alphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Currency scrolls digits and separators; currency symbols stay fixed.
	Currency = "0123456789.,"
)

var presets = map[string]string{
	"number":       Number,
	"alphabet":     Alphabet,
	"alphanumeric": Alphanumeric,
	"currency":     Currency,
}

// Preset returns the alphabet registered under name.
func Preset(name string) (string, error) {
	a, ok := presets[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return a, nil
}

// PresetNames returns the registered preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Resolve turns each argument into a List. A preset name selects that
// preset; anything else is used as a literal alphabet.
func Resolve(alphabets ...string) []*List {
	lists := make([]*List, 0, len(alphabets))
	for _, s := range alphabets {
		if a, ok := presets[s]; ok {
			s = a
		}
		lists = append(lists, New(s))
	}
	return lists
}
