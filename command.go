package bind

import "fmt"

// CommandKind identifies the variant of a Command.
type CommandKind uint8

const (
	CommandElement     CommandKind = iota // Structural or flow-control marker
	CommandDeclaration                    // Local name binding
	CommandConfig                         // Element or text configuration directive
)

var commandKindNames = [...]string{
	CommandElement:     "Element",
	CommandDeclaration: "Declaration",
	CommandConfig:      "Config",
}

// String returns the string representation of a CommandKind.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// ElementKind identifies a structural or flow-control marker.
// Every Opened kind has exactly one matching Closed kind; IfOpened and
// IfNotOpened share IfClosed. Pointer stands alone.
type ElementKind uint8

const (
	// Structure
	ElementOpened ElementKind = iota
	ElementClosed
	TextElementOpened
	TextElementClosed
	ConfigOpened
	ConfigClosed
	TextConfigOpened
	TextConfigClosed

	// Repetition, reuse and widgets
	ListOpened
	ListClosed
	UseOpened
	UseClosed
	TreeViewOpened
	TreeViewClosed
	TextBoxOpened
	TextBoxClosed

	// Conditionals
	IfOpened
	IfNotOpened
	IfClosed

	// Pointer icon hint
	Pointer

	// Event scopes
	HoverOpened
	HoverClosed
	HoveredOpened
	HoveredClosed
	UnHoveredOpened
	UnHoveredClosed
	FocusOpened
	FocusClosed
	FocusedOpened
	FocusedClosed
	UnFocusedOpened
	UnFocusedClosed
	LeftPressedOpened
	LeftPressedClosed
	LeftDownOpened
	LeftDownClosed
	LeftReleasedOpened
	LeftReleasedClosed
	LeftClickedOpened
	LeftClickedClosed
	LeftDoubleClickedOpened
	LeftDoubleClickedClosed
	LeftTripleClickedOpened
	LeftTripleClickedClosed
	RightPressedOpened
	RightPressedClosed
	RightDownOpened
	RightDownClosed
	RightReleasedOpened
	RightReleasedClosed
	RightClickedOpened
	RightClickedClosed

	elementKindCount
)

// elementKindNames maps ElementKind values to their string representation.
var elementKindNames = [...]string{
	ElementOpened:           "ElementOpened",
	ElementClosed:           "ElementClosed",
	TextElementOpened:       "TextElementOpened",
	TextElementClosed:       "TextElementClosed",
	ConfigOpened:            "ConfigOpened",
	ConfigClosed:            "ConfigClosed",
	TextConfigOpened:        "TextConfigOpened",
	TextConfigClosed:        "TextConfigClosed",
	ListOpened:              "ListOpened",
	ListClosed:              "ListClosed",
	UseOpened:               "UseOpened",
	UseClosed:               "UseClosed",
	TreeViewOpened:          "TreeViewOpened",
	TreeViewClosed:          "TreeViewClosed",
	TextBoxOpened:           "TextBoxOpened",
	TextBoxClosed:           "TextBoxClosed",
	IfOpened:                "IfOpened",
	IfNotOpened:             "IfNotOpened",
	IfClosed:                "IfClosed",
	Pointer:                 "Pointer",
	HoverOpened:             "HoverOpened",
	HoverClosed:             "HoverClosed",
	HoveredOpened:           "HoveredOpened",
	HoveredClosed:           "HoveredClosed",
	UnHoveredOpened:         "UnHoveredOpened",
	UnHoveredClosed:         "UnHoveredClosed",
	FocusOpened:             "FocusOpened",
	FocusClosed:             "FocusClosed",
	FocusedOpened:           "FocusedOpened",
	FocusedClosed:           "FocusedClosed",
	UnFocusedOpened:         "UnFocusedOpened",
	UnFocusedClosed:         "UnFocusedClosed",
	LeftPressedOpened:       "LeftPressedOpened",
	LeftPressedClosed:       "LeftPressedClosed",
	LeftDownOpened:          "LeftDownOpened",
	LeftDownClosed:          "LeftDownClosed",
	LeftReleasedOpened:      "LeftReleasedOpened",
	LeftReleasedClosed:      "LeftReleasedClosed",
	LeftClickedOpened:       "LeftClickedOpened",
	LeftClickedClosed:       "LeftClickedClosed",
	LeftDoubleClickedOpened: "LeftDoubleClickedOpened",
	LeftDoubleClickedClosed: "LeftDoubleClickedClosed",
	LeftTripleClickedOpened: "LeftTripleClickedOpened",
	LeftTripleClickedClosed: "LeftTripleClickedClosed",
	RightPressedOpened:      "RightPressedOpened",
	RightPressedClosed:      "RightPressedClosed",
	RightDownOpened:         "RightDownOpened",
	RightDownClosed:         "RightDownClosed",
	RightReleasedOpened:     "RightReleasedOpened",
	RightReleasedClosed:     "RightReleasedClosed",
	RightClickedOpened:      "RightClickedOpened",
	RightClickedClosed:      "RightClickedClosed",
}

// String returns the string representation of an ElementKind.
func (k ElementKind) String() string {
	if int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return "Unknown"
}

// ElementKindByName returns the ElementKind whose String is name.
func ElementKindByName(name string) (ElementKind, bool) {
	for k, n := range elementKindNames {
		if n == name {
			return ElementKind(k), true
		}
	}
	return 0, false
}

// Closer returns the Closed kind matching an Opened kind.
func (k ElementKind) Closer() (ElementKind, bool) {
	switch {
	case k == IfOpened || k == IfNotOpened:
		return IfClosed, true
	case k == IfClosed || k == Pointer || k >= elementKindCount:
		return 0, false
	case k < IfOpened || k > Pointer:
		// Paired kinds alternate Opened, Closed from an even offset.
		base := ElementOpened
		if k > Pointer {
			base = HoverOpened
		}
		if (k-base)%2 == 0 {
			return k + 1, true
		}
	}
	return 0, false
}

// IsClosed reports whether k closes a scope.
func (k ElementKind) IsClosed() bool {
	switch {
	case k == IfClosed:
		return true
	case k == IfOpened || k == IfNotOpened || k == Pointer || k >= elementKindCount:
		return false
	}
	_, opens := k.Closer()
	return !opens
}

// IsEventScope reports whether k opens or closes a hover, focus or mouse
// button scope.
func (k ElementKind) IsEventScope() bool {
	return k >= HoverOpened && k < elementKindCount
}

// Element is a marker command with its operands. Which operand is used
// depends on Kind:
//
//	ElementOpened                       ID (optional)
//	TextElementClosed, TextBoxClosed    Content
//	ListClosed, UseClosed, TreeViewClosed  Source
//	IfOpened, IfNotOpened               Condition
//	event scope Opened kinds            Event (optional)
//	Pointer                             Cursor
type Element[E any] struct {
	Kind      ElementKind
	ID        *DataSrc[string]
	Content   DataSrc[string]
	Source    string
	Condition string
	Event     *DataSrc[E]
	Cursor    CursorIcon
}

// Command is one entry of a flattened layout command sequence.
// Kind selects which of Element, Name/Value or Config is meaningful.
type Command[E any] struct {
	Kind CommandKind

	Element Element[E]

	// Declaration
	Name  string
	Value DataSrc[Declaration[E]]

	Config Config
}

func (c Command[E]) String() string {
	switch c.Kind {
	case CommandElement:
		e := c.Element
		switch {
		case e.Kind == ElementOpened && e.ID != nil:
			return fmt.Sprintf("%s(%s)", e.Kind, e.ID)
		case e.Kind == TextElementClosed || e.Kind == TextBoxClosed:
			return fmt.Sprintf("%s(%s)", e.Kind, e.Content)
		case e.Kind == ListClosed || e.Kind == UseClosed || e.Kind == TreeViewClosed:
			return fmt.Sprintf("%s(%s)", e.Kind, e.Source)
		case e.Kind == IfOpened || e.Kind == IfNotOpened:
			return fmt.Sprintf("%s(%s)", e.Kind, e.Condition)
		case e.Kind == Pointer:
			return fmt.Sprintf("%s(%s)", e.Kind, e.Cursor)
		case e.Event != nil:
			return fmt.Sprintf("%s(%s)", e.Kind, e.Event)
		}
		return e.Kind.String()
	case CommandDeclaration:
		return fmt.Sprintf("Declaration(%s = %s)", c.Name, c.Value)
	case CommandConfig:
		return c.Config.String()
	}
	return "Unknown"
}

// Mark returns an operand-less marker command.
func Mark[E any](k ElementKind) Command[E] {
	return Command[E]{Kind: CommandElement, Element: Element[E]{Kind: k}}
}

// OpenElementID returns an ElementOpened marker naming the element.
func OpenElementID[E any](id DataSrc[string]) Command[E] {
	c := Mark[E](ElementOpened)
	c.Element.ID = &id
	return c
}

// CloseText returns a TextElementClosed marker adding content.
func CloseText[E any](content DataSrc[string]) Command[E] {
	c := Mark[E](TextElementClosed)
	c.Element.Content = content
	return c
}

// CloseList returns a ListClosed marker iterating source.
func CloseList[E any](source string) Command[E] {
	c := Mark[E](ListClosed)
	c.Element.Source = source
	return c
}

// CloseUse returns a UseClosed marker invoking fragment.
func CloseUse[E any](fragment string) Command[E] {
	c := Mark[E](UseClosed)
	c.Element.Source = fragment
	return c
}

// CloseTreeView returns a TreeViewClosed marker laying out the tree name.
func CloseTreeView[E any](name string) Command[E] {
	c := Mark[E](TreeViewClosed)
	c.Element.Source = name
	return c
}

// CloseTextBox returns a TextBoxClosed marker showing content.
func CloseTextBox[E any](content DataSrc[string]) Command[E] {
	c := Mark[E](TextBoxClosed)
	c.Element.Content = content
	return c
}

// If returns an IfOpened marker taken when condition resolves true.
func If[E any](condition string) Command[E] {
	c := Mark[E](IfOpened)
	c.Element.Condition = condition
	return c
}

// IfNot returns an IfNotOpened marker taken when condition resolves false.
func IfNot[E any](condition string) Command[E] {
	c := Mark[E](IfNotOpened)
	c.Element.Condition = condition
	return c
}

// On returns an event-scope Opened marker. A nil event only gates the body.
func On[E any](k ElementKind, event *DataSrc[E]) Command[E] {
	c := Mark[E](k)
	c.Element.Event = event
	return c
}

// SetPointer returns a Pointer marker.
func SetPointer[E any](icon CursorIcon) Command[E] {
	c := Mark[E](Pointer)
	c.Element.Cursor = icon
	return c
}

// Declare returns a Declaration command.
func Declare[E any](name string, value DataSrc[Declaration[E]]) Command[E] {
	return Command[E]{Kind: CommandDeclaration, Name: name, Value: value}
}

// Configure returns a Config command.
func Configure[E any](cfg Config) Command[E] {
	return Command[E]{Kind: CommandConfig, Config: cfg}
}
