package bind

// CursorIcon is a pointer icon hint produced by a pass.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorPointer
	CursorText
	CursorCrosshair
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorNotAllowed
	CursorWait
	CursorHelp
	CursorEWResize
	CursorNSResize
)

var cursorNames = [...]string{
	CursorDefault:    "default",
	CursorPointer:    "pointer",
	CursorText:       "text",
	CursorCrosshair:  "crosshair",
	CursorMove:       "move",
	CursorGrab:       "grab",
	CursorGrabbing:   "grabbing",
	CursorNotAllowed: "not-allowed",
	CursorWait:       "wait",
	CursorHelp:       "help",
	CursorEWResize:   "ew-resize",
	CursorNSResize:   "ns-resize",
}

// String returns the CSS name of the cursor.
func (c CursorIcon) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "unknown"
}

// CursorIconByName returns the cursor with the given CSS name.
func CursorIconByName(name string) (CursorIcon, bool) {
	for c, n := range cursorNames {
		if n == name {
			return CursorIcon(c), true
		}
	}
	return CursorDefault, false
}

// MouseButton holds the transitions of one mouse button during the current
// frame.
type MouseButton struct {
	Pressed       bool // went down this frame
	Down          bool // is held
	Released      bool // went up this frame
	Clicked       bool // pressed and released over the same spot
	DoubleClicked bool
	TripleClicked bool
}

// Input is the per-frame input state a pass reads.
type Input struct {
	Left, Right MouseButton

	// Focus is the element id focused before the pass; zero means none.
	Focus uint32
}

// Result is the output of one pass.
type Result[E any] struct {
	// Events in the order they were triggered.
	Events []EventRecord[E]

	// Pointer is the last pointer icon requested by a Pointer marker or a
	// hovered text box.
	Pointer CursorIcon

	// Focus is the focused element id after the pass and FocusChanged
	// reports whether a click moved it.
	Focus        uint32
	FocusChanged bool
}

// Dispatch delivers every event to d in order. A nil d is a no-op.
func (r *Result[E]) Dispatch(d Dispatcher[E]) {
	if d == nil {
		return
	}
	for _, ev := range r.Events {
		d.Dispatch(ev.Event, ev.Context)
	}
}
