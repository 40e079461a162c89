package bind

import "github.com/gogpu/bind/layout"

// TreeViewKind is the state of a tree view node.
type TreeViewKind uint8

const (
	TreeEmptyRoot     TreeViewKind = iota // Root without children
	TreeRoot                              // Root showing Items
	TreeEmptyItem                         // Leaf
	TreeCollapsedItem                     // Item with hidden children
	TreeExpandedItem                      // Item showing Items
)

var treeViewKindNames = [...]string{
	TreeEmptyRoot:     "empty-root",
	TreeRoot:          "root",
	TreeEmptyItem:     "empty-item",
	TreeCollapsedItem: "collapsed-item",
	TreeExpandedItem:  "expanded-item",
}

// String returns the string representation of a TreeViewKind.
func (k TreeViewKind) String() string {
	if int(k) < len(treeViewKindNames) {
		return treeViewKindNames[k]
	}
	return "unknown"
}

// TreeViewKindByName returns the kind whose String is name.
func TreeViewKindByName(name string) (TreeViewKind, bool) {
	for k, n := range treeViewKindNames {
		if n == name {
			return TreeViewKind(k), true
		}
	}
	return 0, false
}

// TreeViewItem is one node of a tree supplied by DataAccess.TreeView.
// Items is only laid out for TreeRoot and TreeExpandedItem.
type TreeViewItem[E any] struct {
	Kind   TreeViewKind
	Label  string
	Events *TreeViewEvents[E]
	Items  []TreeViewItem[E]
}

// TreeViewEvents are the events a node emits when its parts are clicked.
// Emitted events carry a context whose Text is the node label and whose
// codes come from Context.
type TreeViewEvents[E any] struct {
	BubbleLeftClicked  *E
	BubbleRightClicked *E
	LabelLeftClicked   *E
	LabelRightClicked  *E
	IconLeftClicked    *E
	IconRightClicked   *E

	Context *EventContext
}

// OnBubble sets the events of the bubble around the node icon.
func (ev *TreeViewEvents[E]) OnBubble(left, right *E) *TreeViewEvents[E] {
	ev.BubbleLeftClicked, ev.BubbleRightClicked = left, right
	return ev
}

// OnLabel sets the events of the node row.
func (ev *TreeViewEvents[E]) OnLabel(left, right *E) *TreeViewEvents[E] {
	ev.LabelLeftClicked, ev.LabelRightClicked = left, right
	return ev
}

// OnIcon sets the events of the node icon.
func (ev *TreeViewEvents[E]) OnIcon(left, right *E) *TreeViewEvents[E] {
	ev.IconLeftClicked, ev.IconRightClicked = left, right
	return ev
}

// WithContext attaches user codes to every emitted event.
func (ev *TreeViewEvents[E]) WithContext(ctx *EventContext) *TreeViewEvents[E] {
	ev.Context = ctx
	return ev
}

// treeStyle holds the colors and sizes of a tree view, overridable with
// scope Declarations.
type treeStyle struct {
	background layout.Color
	hover      layout.Color
	text       layout.Color
	hoverText  layout.Color
	guide      layout.Color
	fontSize   uint16
}

var treeIconColors = [...]layout.Color{
	TreeEmptyRoot:     layout.Red,
	TreeRoot:          layout.Green,
	TreeEmptyItem:     layout.Yellow,
	TreeCollapsedItem: layout.Orange,
	TreeExpandedItem:  layout.Red,
}

// treeView lays out the tree the data source returns for name. Scope
// Declarations color, hover_color, text_color and font_size restyle it.
func (p *pass[E]) treeView(name string, scope Locals[E], r *resolver[E]) {
	root, ok := p.data.TreeView(name, r.list)
	if !ok || root == nil {
		return
	}
	sr := r.scoped(scope)
	st := treeStyle{
		background: localColor(sr, "color", layout.Color{}),
		hover:      localColor(sr, "hover_color", layout.Blue),
		text:       localColor(sr, "text_color", layout.Black),
		hoverText:  layout.White,
		guide:      layout.RGB(0, 96.0/255, 1),
		fontSize:   localU16(sr, "font_size", 12),
	}
	p.treeNode(root, &st)
}

func (p *pass[E]) treeNode(item *TreeViewItem[E], st *treeStyle) {
	e := p.engine
	e.OpenElement()
	e.ConfigureElement(layout.NewElementConfig().GrowX(0, 0).SetDirection(layout.TopToBottom))

	p.treeRow(item, st)

	switch item.Kind {
	case TreeRoot:
		for i := range item.Items {
			p.treeNode(&item.Items[i], st)
		}
	case TreeExpandedItem:
		e.OpenElement()
		e.ConfigureElement(layout.NewElementConfig().GrowX(0, 0))

		// Guide line the children are indented behind.
		e.OpenElement()
		e.ConfigureElement(layout.NewElementConfig().FixedX(20).GrowY(0, 0).
			SetColor(st.guide).SetShape(layout.ShapeLine, 2))
		e.CloseElement()

		e.OpenElement()
		e.ConfigureElement(layout.NewElementConfig().GrowX(0, 0).SetDirection(layout.TopToBottom))
		for i := range item.Items {
			p.treeNode(&item.Items[i], st)
		}
		e.CloseElement()

		e.CloseElement()
	}

	e.CloseElement()
}

// treeRow lays out the bubble, icon and label of one node and emits the
// click events of the innermost hovered part.
func (p *pass[E]) treeRow(item *TreeViewItem[E], st *treeStyle) {
	e := p.engine

	e.OpenElement()
	rowHovered := e.Hovered()
	row := layout.NewElementConfig().SetAlignY(layout.AlignYCenter).SetChildGap(3).GrowX(0, 0).
		SetColor(st.background)
	label := layout.NewTextConfig().SetColor(st.text).SetFontSize(st.fontSize)
	if rowHovered {
		row.SetColor(st.hover)
		label.SetColor(st.hoverText)
	}
	e.ConfigureElement(row)

	e.OpenElement()
	bubbleHovered := e.Hovered()
	e.ConfigureElement(layout.NewElementConfig().FixedX(20).FixedY(20).SetPaddingAll(5))

	e.OpenElement()
	iconHovered := e.Hovered()
	color := layout.Black
	if int(item.Kind) < len(treeIconColors) {
		color = treeIconColors[item.Kind]
	}
	e.ConfigureElement(layout.NewElementConfig().FixedX(10).FixedY(10).
		SetColor(color).SetShape(layout.ShapeCircle, 0))
	e.CloseElement()

	e.CloseElement()

	e.AddTextElement(item.Label, label, false)
	e.CloseElement()

	ev := item.Events
	if ev == nil {
		return
	}
	left, right := p.input.Left.Clicked, p.input.Right.Clicked
	switch {
	case iconHovered && (ev.IconLeftClicked != nil || ev.IconRightClicked != nil):
		p.treeEmit(item, left, ev.IconLeftClicked, right, ev.IconRightClicked)
	case bubbleHovered:
		p.treeEmit(item, left, ev.BubbleLeftClicked, right, ev.BubbleRightClicked)
	case rowHovered:
		p.treeEmit(item, left, ev.LabelLeftClicked, right, ev.LabelRightClicked)
	}
}

func (p *pass[E]) treeEmit(item *TreeViewItem[E], left bool, onLeft *E, right bool, onRight *E) {
	ctx := item.Events.Context.WithText(item.Label)
	if left && onLeft != nil {
		p.events = append(p.events, EventRecord[E]{Event: *onLeft, Context: ctx})
	}
	if right && onRight != nil {
		p.events = append(p.events, EventRecord[E]{Event: *onRight, Context: ctx})
	}
}

// localColor resolves a widget style Declaration. Names not declared in
// the widget scope keep def rather than falling through to the data
// source.
func localColor[E any](r *resolver[E], name string, def layout.Color) layout.Color {
	if _, ok := r.locals[name]; !ok {
		return def
	}
	return resolveName(name, r.locals, r.list, r.data.Color, declColor[E], def)
}

func localU16[E any](r *resolver[E], name string, def uint16) uint16 {
	if _, ok := r.locals[name]; !ok {
		return def
	}
	return toUint16(resolveName(name, r.locals, r.list, r.data.Numeric, declNumeric[E], float64(def)))
}
