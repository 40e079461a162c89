package recording

import "errors"

// ErrUnbalanced is returned by Validate and Playback when a recording
// closes an element that was never opened or leaves elements open.
var ErrUnbalanced = errors.New("recording: unbalanced element scopes")

// UnbalancedError reports where a recording stopped being balanced.
type UnbalancedError struct {
	// Index of the offending command, or the command count when elements
	// were left open.
	Index int
	// Open is the number of elements open at Index.
	Open int
}

func (e *UnbalancedError) Error() string {
	if e.Open > 0 {
		return "recording: elements left open"
	}
	return "recording: close without open element"
}

func (e *UnbalancedError) Unwrap() error {
	return ErrUnbalanced
}
