package recording

import (
	"fmt"

	"github.com/gogpu/bind/layout"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one layout.Engine method.
type CommandType uint8

const (
	// Tree mutations
	CmdOpenElement      CommandType = iota // Open a child of the current element
	CmdCloseElement                        // Close the current element
	CmdConfigureElement                    // Attach a configuration
	CmdAddText                             // Add a text leaf

	// Queries
	CmdHovered      // Hover test of the current element
	CmdElementID    // Name to id lookup
	CmdScrollOffset // Scroll offset of the current element
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdOpenElement:      "OpenElement",
	CmdCloseElement:     "CloseElement",
	CmdConfigureElement: "ConfigureElement",
	CmdAddText:          "AddText",
	CmdHovered:          "Hovered",
	CmdElementID:        "ElementID",
	CmdScrollOffset:     "ScrollOffset",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsQuery reports whether commands of type c only read engine state.
func (c CommandType) IsQuery() bool {
	return c >= CmdHovered && c <= CmdScrollOffset
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// OpenElementCommand records Engine.OpenElement.
type OpenElementCommand struct{}

// Type implements Command.
func (OpenElementCommand) Type() CommandType { return CmdOpenElement }

func (OpenElementCommand) String() string { return "OpenElement" }

// CloseElementCommand records Engine.CloseElement.
type CloseElementCommand struct{}

// Type implements Command.
func (CloseElementCommand) Type() CommandType { return CmdCloseElement }

func (CloseElementCommand) String() string { return "CloseElement" }

// ConfigureElementCommand records Engine.ConfigureElement with a copy of
// the configuration and the id the engine returned.
type ConfigureElementCommand struct {
	Config layout.ElementConfig
	ID     uint32
}

// Type implements Command.
func (ConfigureElementCommand) Type() CommandType { return CmdConfigureElement }

func (c ConfigureElementCommand) String() string {
	s := fmt.Sprintf("ConfigureElement id=%08x w=%s h=%s", c.ID, c.Config.Width.Kind, c.Config.Height.Kind)
	if c.Config.ID != "" {
		s += fmt.Sprintf(" name=%q", c.Config.ID)
	}
	if c.Config.Color.Visible() {
		s += " color=" + c.Config.Color.String()
	}
	if c.Config.Image != nil {
		s += fmt.Sprintf(" image=%q", c.Config.Image.Name)
	}
	if c.Config.Floating.AttachTo != layout.AttachNone {
		s += fmt.Sprintf(" floating z=%d", c.Config.Floating.ZIndex)
	}
	return s
}

// AddTextCommand records Engine.AddTextElement.
type AddTextCommand struct {
	Text   string
	Config layout.TextConfig
	Wrap   bool
}

// Type implements Command.
func (AddTextCommand) Type() CommandType { return CmdAddText }

func (c AddTextCommand) String() string {
	return fmt.Sprintf("AddText %q size=%g color=%s", c.Text, c.Config.EffectiveFontSize(), c.Config.Color)
}

// HoveredCommand records Engine.Hovered and its answer.
type HoveredCommand struct {
	Result bool
}

// Type implements Command.
func (HoveredCommand) Type() CommandType { return CmdHovered }

func (c HoveredCommand) String() string { return fmt.Sprintf("Hovered -> %t", c.Result) }

// ElementIDCommand records Engine.ElementID and its answer.
type ElementIDCommand struct {
	Name string
	ID   uint32
}

// Type implements Command.
func (ElementIDCommand) Type() CommandType { return CmdElementID }

func (c ElementIDCommand) String() string {
	return fmt.Sprintf("ElementID %q -> %08x", c.Name, c.ID)
}

// ScrollOffsetCommand records Engine.ScrollOffset and its answer.
type ScrollOffsetCommand struct {
	Offset layout.Vec2
}

// Type implements Command.
func (ScrollOffsetCommand) Type() CommandType { return CmdScrollOffset }

func (c ScrollOffsetCommand) String() string {
	return fmt.Sprintf("ScrollOffset -> (%g, %g)", c.Offset.X, c.Offset.Y)
}
