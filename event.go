package bind

// EventContext carries optional data attached to an emitted event, such as
// the label of a clicked tree view item.
type EventContext struct {
	Text  *string
	Code  *uint32
	Code2 *uint32
}

// ContextText returns a context carrying text.
func ContextText(text string) *EventContext {
	return &EventContext{Text: &text}
}

// ContextCode returns a context carrying code.
func ContextCode(code uint32) *EventContext {
	return &EventContext{Code: &code}
}

// WithText returns a copy of c with Text set. A nil c is treated as empty.
func (c *EventContext) WithText(text string) *EventContext {
	n := c.clone()
	n.Text = &text
	return n
}

// WithCode returns a copy of c with Code set.
func (c *EventContext) WithCode(code uint32) *EventContext {
	n := c.clone()
	n.Code = &code
	return n
}

// WithCode2 returns a copy of c with Code2 set.
func (c *EventContext) WithCode2(code uint32) *EventContext {
	n := c.clone()
	n.Code2 = &code
	return n
}

func (c *EventContext) clone() *EventContext {
	if c == nil {
		return &EventContext{}
	}
	n := *c
	return &n
}

// EventRecord is one event triggered during a pass.
type EventRecord[E any] struct {
	Event   E
	Context *EventContext
}

// Dispatcher delivers events to the application after a pass.
type Dispatcher[E any] interface {
	Dispatch(event E, ctx *EventContext)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc[E any] func(event E, ctx *EventContext)

// Dispatch calls f(event, ctx).
func (f DispatcherFunc[E]) Dispatch(event E, ctx *EventContext) {
	f(event, ctx)
}
