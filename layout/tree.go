package layout

// rootName is the ID string of the implicit root element.
const rootName = "Root"

// node is one element or text leaf of the frame being built.
type node struct {
	id       uint32 // configured ID hash, or structID
	structID uint32 // derived from parent and sibling index
	parent   int
	children []int

	cfg ElementConfig

	isText  bool
	text    string
	textCfg TextConfig
	wrap    bool

	w, h     float64
	content  Dimensions
	box      BoundingBox
	floating bool
}

// frameRecord is what a finished frame remembers about an element for the
// hover and scroll queries of the next frame.
type frameRecord struct {
	id, structID uint32
	box          BoundingBox
	content      Dimensions
	clip         Clip
	passThrough  bool
}

// Tree is a reference Engine that computes a simplified flex-like layout.
//
// A frame is built between BeginLayout and EndLayout. Hovered answers from
// the geometry of the previous frame, so hover-dependent content lags the
// pointer by one frame.
//
// Tree is NOT safe for concurrent use.
type Tree struct {
	measurer Measurer
	viewport Dimensions
	pointer  Vec2

	nodes    []node
	open     []int
	byID     map[uint32]int
	floating []int
	inFrame  bool

	prev   map[uint32]frameRecord
	scroll map[uint32]Vec2
}

// Compile-time check that Tree implements Engine.
var _ Engine = (*Tree)(nil)

// NewTree creates a layout tree measuring text with m.
// A nil measurer selects FixedAdvance.
func NewTree(m Measurer) *Tree {
	if m == nil {
		m = FixedAdvance{}
	}
	return &Tree{
		measurer: m,
		byID:     make(map[uint32]int),
		prev:     make(map[uint32]frameRecord),
		scroll:   make(map[uint32]Vec2),
	}
}

// SetPointer sets the pointer position used by Hovered and Scroll.
func (t *Tree) SetPointer(x, y float64) {
	t.pointer = Vec2{X: x, Y: y}
}

// Pointer returns the pointer position.
func (t *Tree) Pointer() Vec2 {
	return t.pointer
}

// BeginLayout starts a new frame with the given viewport size.
func (t *Tree) BeginLayout(width, height float64) {
	t.viewport = Dimensions{Width: width, Height: height}
	t.nodes = t.nodes[:0]
	t.open = t.open[:0]
	t.floating = t.floating[:0]
	clear(t.byID)

	id := HashID(rootName)
	root := node{id: id, structID: id, parent: -1}
	root.cfg.FixedX(width).FixedY(height)
	t.nodes = append(t.nodes, root)
	t.open = append(t.open, 0)
	t.byID[id] = 0
	t.inFrame = true
}

// OpenElement implements Engine.
func (t *Tree) OpenElement() {
	if !t.inFrame {
		t.BeginLayout(t.viewport.Width, t.viewport.Height)
	}
	parent := t.open[len(t.open)-1]
	idx := len(t.nodes)
	id := childID(t.nodes[parent].id, len(t.nodes[parent].children))
	t.nodes = append(t.nodes, node{id: id, structID: id, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, idx)
	t.open = append(t.open, idx)
	t.byID[id] = idx
}

// CloseElement implements Engine. Closing the root is a no-op.
func (t *Tree) CloseElement() {
	if len(t.open) > 1 {
		t.open = t.open[:len(t.open)-1]
	}
}

// ConfigureElement implements Engine.
func (t *Tree) ConfigureElement(cfg *ElementConfig) uint32 {
	if !t.inFrame {
		t.BeginLayout(t.viewport.Width, t.viewport.Height)
	}
	i := t.open[len(t.open)-1]
	n := &t.nodes[i]
	if i == 0 {
		// The root keeps its viewport sizing.
		w, h := n.cfg.Width, n.cfg.Height
		n.cfg = *cfg
		n.cfg.Width, n.cfg.Height = w, h
	} else {
		n.cfg = *cfg
	}
	if cfg.ID != "" {
		n.id = HashID(cfg.ID)
		t.byID[n.id] = i
	}
	return n.id
}

// AddTextElement implements Engine.
func (t *Tree) AddTextElement(text string, cfg *TextConfig, wrap bool) {
	if !t.inFrame {
		t.BeginLayout(t.viewport.Width, t.viewport.Height)
	}
	parent := t.open[len(t.open)-1]
	id := childID(t.nodes[parent].id, len(t.nodes[parent].children))
	n := node{id: id, structID: id, parent: parent, isText: true, text: text, wrap: wrap}
	if cfg != nil {
		n.textCfg = *cfg
	}
	t.nodes = append(t.nodes, n)
	t.nodes[parent].children = append(t.nodes[parent].children, len(t.nodes)-1)
}

// Hovered implements Engine.
func (t *Tree) Hovered() bool {
	if len(t.open) == 0 {
		return false
	}
	n := &t.nodes[t.open[len(t.open)-1]]
	rec, ok := t.prev[n.id]
	if !ok {
		rec, ok = t.prev[n.structID]
	}
	return ok && !rec.passThrough && rec.box.Contains(t.pointer)
}

// ElementID implements Engine.
func (t *Tree) ElementID(name string) uint32 {
	return HashID(name)
}

// ScrollOffset implements Engine.
func (t *Tree) ScrollOffset() Vec2 {
	if len(t.open) == 0 {
		return Vec2{}
	}
	n := &t.nodes[t.open[len(t.open)-1]]
	if off, ok := t.scroll[n.id]; ok {
		return off
	}
	return t.scroll[n.structID]
}

// Scroll scrolls the innermost clipping element under the pointer by
// (dx, dy), clamped to its content. It reports whether anything scrolled.
func (t *Tree) Scroll(dx, dy float64) bool {
	var (
		target uint32
		found  bool
		area   float64
	)
	for id, rec := range t.prev {
		if !rec.clip.Enabled() || !rec.box.Contains(t.pointer) {
			continue
		}
		a := rec.box.Width * rec.box.Height
		if !found || a < area || (a == area && id < target) {
			target, area, found = id, a, true
		}
	}
	if !found {
		return false
	}

	rec := t.prev[target]
	off := t.scroll[target]
	if rec.clip.Horizontal {
		off.X = clampRange(off.X+dx, 0, rec.content.Width-rec.box.Width)
	}
	if rec.clip.Vertical {
		off.Y = clampRange(off.Y+dy, 0, rec.content.Height-rec.box.Height)
	}
	t.scroll[rec.id] = off
	t.scroll[rec.structID] = off
	return true
}

// EndLayout closes the frame, computes the layout and returns the render
// commands in drawing order.
func (t *Tree) EndLayout() []RenderCommand {
	if !t.inFrame {
		return nil
	}
	t.inFrame = false
	t.open = t.open[:0]

	t.fit(0)
	t.grow(0)
	t.place(0, 0, 0)
	t.placeFloating()

	clear(t.prev)
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.isText {
			continue
		}
		rec := frameRecord{
			id:          n.id,
			structID:    n.structID,
			box:         n.box,
			content:     n.content,
			clip:        n.cfg.Clip,
			passThrough: n.cfg.Floating.PointerPassThrough,
		}
		t.prev[n.id] = rec
		if n.structID != n.id {
			t.prev[n.structID] = rec
		}
	}

	return t.render()
}

// Box returns the box computed for the element with the given id in the
// last finished frame.
func (t *Tree) Box(id uint32) (BoundingBox, bool) {
	rec, ok := t.prev[id]
	return rec.box, ok
}

// Len returns the number of elements and text leaves in the current or last
// frame, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
