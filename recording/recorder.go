package recording

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/bind/layout"
)

// HoverFunc decides whether the element with the given id is hovered.
// Unnamed elements receive sequence ids in open order starting at 1;
// named elements receive layout.HashID of their name once configured.
type HoverFunc func(id uint32) bool

// AlwaysHovered reports every element as hovered.
func AlwaysHovered(uint32) bool { return true }

// HoverIDs returns a HoverFunc that reports the elements configured with
// one of the given names as hovered.
func HoverIDs(names ...string) HoverFunc {
	ids := make(map[uint32]struct{}, len(names))
	for _, n := range names {
		ids[layout.HashID(n)] = struct{}{}
	}
	return func(id uint32) bool {
		_, ok := ids[id]
		return ok
	}
}

// HoverSequence returns a HoverFunc that reports the elements opened at
// the given positions (starting at 1) as hovered.
func HoverSequence(seq ...uint32) HoverFunc {
	return func(id uint32) bool {
		for _, s := range seq {
			if s == id {
				return true
			}
		}
		return false
	}
}

// Recorder captures layout.Engine calls as commands.
// Use FinishRecording to obtain an immutable Recording that can be
// replayed to a different engine.
//
// Example:
//
//	rec := recording.NewRecorder(nil)
//	rec.OpenElement()
//	rec.ConfigureElement(layout.NewElementConfig().FixedX(10))
//	rec.CloseElement()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	target   layout.Engine
	hover    HoverFunc
	commands []Command

	// Element ids of the open elements, innermost last.
	stack []uint32
	seq   uint32
}

var _ layout.Engine = (*Recorder)(nil)

// NewRecorder creates a Recorder. With a nil target the Recorder answers
// the engine queries itself: nothing is hovered, ElementID hashes the
// name and scroll offsets are zero. With a non-nil target every call is
// forwarded and the target's answers are recorded.
func NewRecorder(target layout.Engine) *Recorder {
	return &Recorder{
		target:   target,
		commands: make([]Command, 0, 64),
	}
}

// SetHover sets the hover test used when the Recorder has no target.
func (r *Recorder) SetHover(f HoverFunc) {
	r.hover = f
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Depth returns the number of currently open elements.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// FinishRecording returns the commands recorded so far and resets the
// Recorder for the next pass. The hover test and target are kept.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{commands: r.commands}
	r.commands = make([]Command, 0, cap(rec.commands))
	r.stack = r.stack[:0]
	r.seq = 0
	return rec
}

// OpenElement implements layout.Engine.
func (r *Recorder) OpenElement() {
	r.seq++
	r.stack = append(r.stack, r.seq)
	r.commands = append(r.commands, OpenElementCommand{})
	if r.target != nil {
		r.target.OpenElement()
	}
}

// CloseElement implements layout.Engine.
func (r *Recorder) CloseElement() {
	if n := len(r.stack); n > 0 {
		r.stack = r.stack[:n-1]
	}
	r.commands = append(r.commands, CloseElementCommand{})
	if r.target != nil {
		r.target.CloseElement()
	}
}

// ConfigureElement implements layout.Engine.
func (r *Recorder) ConfigureElement(cfg *layout.ElementConfig) uint32 {
	var id uint32
	if r.target != nil {
		id = r.target.ConfigureElement(cfg)
	} else {
		id = r.current()
		if cfg.ID != "" {
			id = layout.HashID(cfg.ID)
		}
	}
	if n := len(r.stack); n > 0 {
		r.stack[n-1] = id
	}
	r.commands = append(r.commands, ConfigureElementCommand{Config: *cfg, ID: id})
	return id
}

// AddTextElement implements layout.Engine. A nil cfg records the zero
// text configuration.
func (r *Recorder) AddTextElement(text string, cfg *layout.TextConfig, wrap bool) {
	c := AddTextCommand{Text: text, Wrap: wrap}
	if cfg != nil {
		c.Config = *cfg
	}
	r.commands = append(r.commands, c)
	if r.target != nil {
		r.target.AddTextElement(text, cfg, wrap)
	}
}

// Hovered implements layout.Engine.
func (r *Recorder) Hovered() bool {
	var hovered bool
	switch {
	case r.target != nil:
		hovered = r.target.Hovered()
	case r.hover != nil && len(r.stack) > 0:
		hovered = r.hover(r.current())
	}
	r.commands = append(r.commands, HoveredCommand{Result: hovered})
	return hovered
}

// ElementID implements layout.Engine.
func (r *Recorder) ElementID(name string) uint32 {
	var id uint32
	if r.target != nil {
		id = r.target.ElementID(name)
	} else {
		id = layout.HashID(name)
	}
	r.commands = append(r.commands, ElementIDCommand{Name: name, ID: id})
	return id
}

// ScrollOffset implements layout.Engine.
func (r *Recorder) ScrollOffset() layout.Vec2 {
	var off layout.Vec2
	if r.target != nil {
		off = r.target.ScrollOffset()
	}
	r.commands = append(r.commands, ScrollOffsetCommand{Offset: off})
	return off
}

func (r *Recorder) current() uint32 {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return 0
}

// Recording is an immutable list of recorded engine calls.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns the number of recorded commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Texts returns the text of every AddText command in order.
func (r *Recording) Texts() []string {
	var texts []string
	for _, c := range r.commands {
		if t, ok := c.(AddTextCommand); ok {
			texts = append(texts, t.Text)
		}
	}
	return texts
}

// Configs returns every recorded element configuration in order.
func (r *Recording) Configs() []layout.ElementConfig {
	var cfgs []layout.ElementConfig
	for _, c := range r.commands {
		if cc, ok := c.(ConfigureElementCommand); ok {
			cfgs = append(cfgs, cc.Config)
		}
	}
	return cfgs
}

// Validate checks that every CloseElement matches an earlier OpenElement
// and that no element is left open. The returned error wraps
// ErrUnbalanced.
func (r *Recording) Validate() error {
	open := 0
	for i, c := range r.commands {
		switch c.Type() {
		case CmdOpenElement:
			open++
		case CmdCloseElement:
			if open == 0 {
				return &UnbalancedError{Index: i}
			}
			open--
		}
	}
	if open > 0 {
		return &UnbalancedError{Index: len(r.commands), Open: open}
	}
	return nil
}

// Playback replays the recording to e. The recording is validated first
// and nothing is replayed when it is unbalanced.
func (r *Recording) Playback(e layout.Engine) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case OpenElementCommand:
			e.OpenElement()
		case CloseElementCommand:
			e.CloseElement()
		case ConfigureElementCommand:
			cfg := c.Config
			e.ConfigureElement(&cfg)
		case AddTextCommand:
			cfg := c.Config
			e.AddTextElement(c.Text, &cfg, c.Wrap)
		case HoveredCommand:
			e.Hovered()
		case ElementIDCommand:
			e.ElementID(c.Name)
		case ScrollOffsetCommand:
			e.ScrollOffset()
		}
	}
	return nil
}

// WriteTo writes the recording as an indented listing, one command per
// line. Queries are omitted.
func (r *Recording) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		depth int
	)
	for _, cmd := range r.commands {
		if cmd.Type().IsQuery() {
			continue
		}
		if cmd.Type() == CmdCloseElement {
			if depth > 0 {
				depth--
			}
			continue
		}
		n, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", depth), cmd)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if cmd.Type() == CmdOpenElement {
			depth++
		}
	}
	return total, nil
}
