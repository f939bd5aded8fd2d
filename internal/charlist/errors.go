package charlist

import "errors"

var (
	// ErrUnknownDirection indicates a direction name other than any, up or down.
	ErrUnknownDirection = errors.New("charlist: unknown scrolling direction")

	// ErrUnknownPreset indicates an alphabet preset name that is not registered.
	ErrUnknownPreset = errors.New("charlist: unknown alphabet preset")
)
