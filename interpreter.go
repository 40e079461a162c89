package bind

import (
	"log/slog"

	"github.com/gogpu/bind/layout"
)

// MaxUseDepth bounds nested fragment invocations so a fragment that uses
// itself cannot exhaust the stack.
const MaxUseDepth = 64

// noSkip marks the absence of a skip region.
const noSkip = -1

// pass is the state shared by every walk of one interpretation pass.
type pass[E any] struct {
	engine    layout.Engine
	data      DataAccess[E]
	fragments map[string][]Command[E]
	input     Input
	log       *slog.Logger

	events  []EventRecord[E]
	pointer CursorIcon

	focus        uint32
	focusChanged bool
	lastID       uint32 // id returned by the latest ConfigureElement
	configured   bool   // lastID is valid

	depth int // nested Use invocations
}

// scope is a Use, TreeView or TextBox scope whose Closed marker has not
// been reached yet.
type scope[E any] struct {
	kind       ElementKind
	locals     Locals[E]
	collecting bool
}

// Interpret runs one pass over cmds and returns the triggered events, the
// pointer hint and the focus state. fragments holds the reusable command
// sequences available to Use. The leading Declarations of cmds form the
// top-level scope.
//
// Interpret never fails: unresolved references fall back to defaults,
// missing fragments and list sources are skipped and unmatched Closed
// markers are ignored.
func Interpret[E any](
	cmds []Command[E],
	fragments map[string][]Command[E],
	engine layout.Engine,
	data DataAccess[E],
	input Input,
) Result[E] {
	if data == nil {
		data = NoData[E]{}
	}
	p := &pass[E]{
		engine:    engine,
		data:      data,
		fragments: fragments,
		input:     input,
		log:       Logger(),
		focus:     input.Focus,
	}
	p.walk(cmds, leadingDecls(cmds), nil, nil, nil)
	return Result[E]{
		Events:       p.events,
		Pointer:      p.pointer,
		Focus:        p.focus,
		FocusChanged: p.focusChanged,
	}
}

// leadingDecls collects the Declarations at the start of cmds. Pointer
// markers may be interleaved. It returns nil when there are none.
func leadingDecls[E any](cmds []Command[E]) Locals[E] {
	var locals Locals[E]
	for i := range cmds {
		c := &cmds[i]
		switch {
		case c.Kind == CommandDeclaration:
			if locals == nil {
				locals = make(Locals[E])
			}
			locals[c.Name] = &c.Value
		case c.Kind == CommandElement && c.Element.Kind == Pointer:
		default:
			return locals
		}
	}
	return locals
}

// walk interprets cmds once and returns the nesting level it ended at,
// which is zero for a balanced sequence.
//
// cfg and tcfg are the accumulators to configure; nil selects fresh ones.
// A Use fragment receives its caller's accumulators so its directives
// extend the element the caller is configuring.
func (p *pass[E]) walk(
	cmds []Command[E],
	locals Locals[E],
	list *ListContext,
	cfg *layout.ElementConfig,
	tcfg *layout.TextConfig,
) int {
	if cfg == nil {
		cfg = layout.NewElementConfig()
	}
	if tcfg == nil {
		tcfg = layout.NewTextConfig()
	}
	r := &resolver[E]{data: p.data, locals: locals, list: list}

	var (
		level     int
		skip      = noSkip
		scopes    []scope[E]
		opened    int    // engine elements opened by this walk and not closed
		pendingID string // ID operand of the latest ElementOpened
	)
	skipping := func() bool { return skip != noSkip }
	// leave reports whether the Closed marker k matched an Opened one.
	// Unmatched markers have no effect beyond the log line.
	leave := func(k ElementKind) bool {
		if level == 0 {
			p.log.Debug("bind: unmatched closing marker", "kind", k)
			return false
		}
		level--
		return true
	}

	for i := 0; i < len(cmds); i++ {
		c := &cmds[i]

		if c.Kind != CommandDeclaration && len(scopes) > 0 {
			scopes[len(scopes)-1].collecting = false
		}

		switch c.Kind {
		case CommandDeclaration:
			if n := len(scopes); n > 0 && scopes[n-1].collecting {
				scopes[n-1].locals[c.Name] = &c.Value
			}
			continue
		case CommandConfig:
			if !skipping() {
				p.configure(&c.Config, cfg, tcfg, r, 0)
			}
			continue
		}

		e := &c.Element
		switch k := e.Kind; {
		case k == ElementOpened:
			level++
			if !skipping() {
				p.engine.OpenElement()
				opened++
				pendingID = ""
				if e.ID != nil {
					pendingID = r.textOr(*e.ID, "")
				}
			}
		case k == ElementClosed:
			if leave(k) && !skipping() {
				if opened == 0 {
					p.log.Debug("bind: close without open element")
					break
				}
				p.engine.CloseElement()
				opened--
			}

		case k == ConfigOpened:
			level++
			if !skipping() {
				cfg.Reset()
			}
		case k == ConfigClosed:
			if leave(k) && !skipping() {
				if cfg.ID == "" && pendingID != "" {
					cfg.SetID(pendingID)
				}
				pendingID = ""
				p.configureElement(cfg)
			}

		case k == TextElementOpened:
			level++
		case k == TextElementClosed:
			if leave(k) && !skipping() {
				p.engine.AddTextElement(r.text(e.Content), tcfg, tcfg.Wrap)
			}

		case k == TextConfigOpened:
			level++
			if !skipping() {
				tcfg.Reset()
			}
		case k == TextConfigClosed:
			leave(k)

		case k == IfOpened || k == IfNotOpened:
			if !skipping() && r.boolName(e.Condition) == (k == IfNotOpened) {
				skip = level
			}
			level++
		case k == IfClosed:
			leave(k)
			if skip >= level {
				skip = noSkip
			}

		case k == Pointer:
			if !skipping() {
				p.pointer = e.Cursor
			}

		case k == ListOpened:
			end := listEnd(cmds, i)
			if !skipping() && end < len(cmds) {
				p.list(cmds[i+1:end], cmds[end].Element.Source, r)
			}
			// The body and its ListClosed are consumed here; nesting is
			// unchanged across the pair.
			i = end

		case k == UseOpened || k == TreeViewOpened || k == TextBoxOpened:
			level++
			scopes = append(scopes, scope[E]{kind: k, locals: make(Locals[E]), collecting: true})
		case k == UseClosed || k == TreeViewClosed || k == TextBoxClosed:
			if !leave(k) {
				break
			}
			var sc scope[E]
			if n := len(scopes); n > 0 {
				sc = scopes[n-1]
				scopes = scopes[:n-1]
			}
			if skipping() {
				break
			}
			switch k {
			case UseClosed:
				p.use(e.Source, sc.locals, list, cfg, tcfg)
			case TreeViewClosed:
				p.treeView(e.Source, sc.locals, r)
			case TextBoxClosed:
				p.textBox(e.Content, sc.locals, r)
			}

		case k == ListClosed:
			// Reached only without a matching ListOpened.
			p.log.Debug("bind: list closed without open", "source", e.Source)

		case k.IsEventScope():
			if _, opens := k.Closer(); opens {
				if !skipping() {
					skip = level
					if p.eventHolds(k) {
						skip = noSkip
						if e.Event != nil {
							p.events = append(p.events, EventRecord[E]{Event: r.event(*e.Event)})
						}
					}
				}
				level++
				break
			}
			leave(k)
			if skip == level {
				skip = noSkip
			}
		}
	}

	if opened > 0 {
		p.log.Debug("bind: closing unbalanced elements", "count", opened)
		for ; opened > 0; opened-- {
			p.engine.CloseElement()
		}
	}
	return level
}

// listEnd returns the index of the ListClosed matching the ListOpened at
// start, or len(cmds) when there is none.
func listEnd[E any](cmds []Command[E], start int) int {
	depth := 0
	for j := start; j < len(cmds); j++ {
		c := &cmds[j]
		if c.Kind != CommandElement {
			continue
		}
		switch c.Element.Kind {
		case ListOpened:
			depth++
		case ListClosed:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return len(cmds)
}

// list interprets body once per item of source. Each iteration starts
// with fresh accumulators and sees the body's leading Declarations as its
// scope.
func (p *pass[E]) list(body []Command[E], source string, r *resolver[E]) {
	n, ok := p.data.ListLength(source, r.list)
	if !ok {
		return
	}
	locals := leadingDecls(body)
	for i := 0; i < n; i++ {
		p.walk(body, locals, &ListContext{Source: source, Index: i}, nil, nil)
	}
}

// use interprets a fragment against the caller's accumulators. The
// fragment's leading Declarations are defaults that the caller's
// Declarations override.
func (p *pass[E]) use(
	name string,
	args Locals[E],
	list *ListContext,
	cfg *layout.ElementConfig,
	tcfg *layout.TextConfig,
) {
	frag, ok := p.fragments[name]
	if !ok {
		p.log.Debug("bind: fragment not found", "name", name)
		return
	}
	if p.depth >= MaxUseDepth {
		p.log.Warn("bind: fragment nesting too deep", "name", name, "limit", MaxUseDepth)
		return
	}

	locals := leadingDecls(frag)
	if len(args) > 0 {
		if locals == nil {
			locals = make(Locals[E], len(args))
		}
		for k, v := range args {
			locals[k] = v
		}
	}

	p.depth++
	p.walk(frag, locals, list, cfg, tcfg)
	p.depth--
}

// configureElement flushes cfg to the engine. Clicking a hovered element
// focuses it.
func (p *pass[E]) configureElement(cfg *layout.ElementConfig) {
	id := p.engine.ConfigureElement(cfg)
	p.lastID, p.configured = id, true
	if p.input.Left.Clicked && p.engine.Hovered() {
		if p.focus != id {
			p.focusChanged = true
		}
		p.focus = id
	}
}

// hasFocus reports whether the latest configured element holds focus.
func (p *pass[E]) hasFocus() bool {
	return p.configured && p.focus != 0 && p.lastID == p.focus
}

// eventHolds evaluates the condition of an event scope for the current
// element.
func (p *pass[E]) eventHolds(k ElementKind) bool {
	switch k {
	case HoverOpened, HoveredOpened:
		return p.engine.Hovered()
	case UnHoveredOpened:
		return !p.engine.Hovered()
	case FocusOpened:
		return p.hasFocus()
	case FocusedOpened:
		return p.focusChanged && p.hasFocus()
	case UnFocusedOpened:
		return !p.hasFocus()
	}

	var b MouseButton
	switch k {
	case LeftPressedOpened, LeftDownOpened, LeftReleasedOpened,
		LeftClickedOpened, LeftDoubleClickedOpened, LeftTripleClickedOpened:
		b = p.input.Left
	default:
		b = p.input.Right
	}
	var hit bool
	switch k {
	case LeftPressedOpened, RightPressedOpened:
		hit = b.Pressed
	case LeftDownOpened, RightDownOpened:
		hit = b.Down
	case LeftReleasedOpened, RightReleasedOpened:
		hit = b.Released
	case LeftClickedOpened, RightClickedOpened:
		hit = b.Clicked
	case LeftDoubleClickedOpened:
		hit = b.DoubleClicked
	case LeftTripleClickedOpened:
		hit = b.TripleClicked
	}
	return hit && p.engine.Hovered()
}
