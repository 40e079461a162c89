package bind

import "errors"

// Sentinel errors for the page and fragment registry.
var (
	// ErrNotFound is returned when a page or fragment is not registered.
	ErrNotFound = errors.New("bind: not found")

	// ErrExists is returned when registering a name that is already taken.
	ErrExists = errors.New("bind: already registered")
)
