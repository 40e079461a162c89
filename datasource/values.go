package datasource

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/gogpu/bind"
	"github.com/gogpu/bind/layout"
)

// backend supplies top-level values and lists.
type backend interface {
	value(name string) (any, bool)
	list(name string) ([]any, bool)
}

// values implements bind.DataAccess over a backend.
//
// Lists resolved by ListLength are remembered by source name, so item
// lookups of the iterations that follow see the same sequence even when it
// was read from a field of an enclosing item.
type values struct {
	backend backend
	dir     string

	mu     sync.Mutex
	lists  map[string][]any
	images map[string]*layout.Image
}

func (v *values) init(b backend, dir string) {
	v.backend = b
	v.dir = dir
	v.lists = make(map[string][]any)
	v.images = make(map[string]*layout.Image)
}

func (v *values) lookup(name string, list *bind.ListContext) (any, bool) {
	if item, ok := v.item(list); ok {
		if x, ok := item[name]; ok {
			return x, true
		}
	}
	return v.backend.value(name)
}

// item returns the mapping at list, if any.
func (v *values) item(list *bind.ListContext) (map[string]any, bool) {
	if list == nil {
		return nil, false
	}
	v.mu.Lock()
	items, ok := v.lists[list.Source]
	v.mu.Unlock()
	if !ok {
		items, ok = v.backend.list(list.Source)
	}
	if !ok || list.Index < 0 || list.Index >= len(items) {
		return nil, false
	}
	item, ok := items[list.Index].(map[string]any)
	return item, ok
}

func (v *values) Bool(name string, list *bind.ListContext) (bool, bool) {
	x, ok := v.lookup(name, list)
	if !ok {
		return false, false
	}
	b, ok := x.(bool)
	return b, ok
}

func (v *values) Numeric(name string, list *bind.ListContext) (float64, bool) {
	x, ok := v.lookup(name, list)
	if !ok {
		return 0, false
	}
	return toFloat(x)
}

// Text accepts strings and numbers.
func (v *values) Text(name string, list *bind.ListContext) (string, bool) {
	x, ok := v.lookup(name, list)
	if !ok {
		return "", false
	}
	if s, ok := x.(string); ok {
		return s, true
	}
	if f, ok := toFloat(x); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return "", false
}

func (v *values) Color(name string, list *bind.ListContext) (layout.Color, bool) {
	x, ok := v.lookup(name, list)
	if !ok {
		return layout.Color{}, false
	}
	c, err := toColor(x)
	if err != nil {
		return layout.Color{}, false
	}
	return c, true
}

func (v *values) Event(name string, list *bind.ListContext) (string, bool) {
	x, ok := v.lookup(name, list)
	if !ok {
		return "", false
	}
	s, ok := x.(string)
	return s, ok
}

// Image resolves a string value naming an image file. Relative paths are
// taken from the directory of the document. Decoded images are cached,
// and so are failures.
func (v *values) Image(name string, list *bind.ListContext) (*layout.Image, bool) {
	x, ok := v.lookup(name, list)
	if !ok {
		return nil, false
	}
	ref, ok := x.(string)
	if !ok || ref == "" {
		return nil, false
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if img, cached := v.images[ref]; cached {
		return img, img != nil
	}

	path := ref
	if !filepath.IsAbs(path) && v.dir != "" {
		path = filepath.Join(v.dir, path)
	}
	img, err := LoadImage(path)
	if err != nil {
		bind.Logger().Debug("datasource: image not loaded", "name", name, "path", path, "err", err)
		img = nil
	}
	v.images[ref] = img
	return img, img != nil
}

// SetImage caches img under ref, the string an image value names it by.
func (v *values) SetImage(ref string, img *layout.Image) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.images[ref] = img
}

// ListLength resolves a sequence, looking in the enclosing item first.
func (v *values) ListLength(name string, list *bind.ListContext) (int, bool) {
	var (
		items []any
		ok    bool
	)
	if item, found := v.item(list); found {
		items, ok = item[name].([]any)
	}
	if !ok {
		items, ok = v.backend.list(name)
	}
	if !ok {
		return 0, false
	}

	v.mu.Lock()
	v.lists[name] = items
	v.mu.Unlock()
	return len(items), true
}

func (v *values) TreeView(name string, list *bind.ListContext) (*bind.TreeViewItem[string], bool) {
	x, ok := v.lookup(name, list)
	if !ok {
		return nil, false
	}
	m, ok := x.(map[string]any)
	if !ok {
		return nil, false
	}
	item, err := toTree(m)
	if err != nil {
		bind.Logger().Debug("datasource: bad tree view", "name", name, "err", err)
		return nil, false
	}
	return item, true
}

func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	}
	return 0, false
}

// toColor accepts a color name, a hex string or three or four components
// in [0, 1].
func toColor(x any) (layout.Color, error) {
	switch c := x.(type) {
	case layout.Color:
		return c, nil
	case string:
		return layout.ParseColor(c)
	case []any:
		if len(c) != 3 && len(c) != 4 {
			return layout.Color{}, fmt.Errorf("%w: color takes three or four components", ErrBadValue)
		}
		var parts [4]float64
		parts[3] = 1
		for i, p := range c {
			f, ok := toFloat(p)
			if !ok {
				return layout.Color{}, fmt.Errorf("%w: color component %v", ErrBadValue, p)
			}
			parts[i] = f
		}
		return layout.RGBA(parts[0], parts[1], parts[2], parts[3]), nil
	}
	return layout.Color{}, fmt.Errorf("%w: %T is not a color", ErrBadValue, x)
}

// treeEvents maps the events fields of a tree node to their setters.
var treeEvents = map[string]func(*bind.TreeViewEvents[string], *string){
	"bubble_left":  func(ev *bind.TreeViewEvents[string], e *string) { ev.BubbleLeftClicked = e },
	"bubble_right": func(ev *bind.TreeViewEvents[string], e *string) { ev.BubbleRightClicked = e },
	"label_left":   func(ev *bind.TreeViewEvents[string], e *string) { ev.LabelLeftClicked = e },
	"label_right":  func(ev *bind.TreeViewEvents[string], e *string) { ev.LabelRightClicked = e },
	"icon_left":    func(ev *bind.TreeViewEvents[string], e *string) { ev.IconLeftClicked = e },
	"icon_right":   func(ev *bind.TreeViewEvents[string], e *string) { ev.IconRightClicked = e },
}

// toTree converts a tree view node:
//
//	kind:   one of bind.TreeViewKind's names (default empty-item)
//	label:  text of the node
//	events: {bubble_left, bubble_right, label_left, label_right,
//	         icon_left, icon_right} event names
//	code, code2: numbers attached to emitted events
//	items:  child nodes
func toTree(m map[string]any) (*bind.TreeViewItem[string], error) {
	item := &bind.TreeViewItem[string]{Kind: bind.TreeEmptyItem}

	if k, ok := m["kind"]; ok {
		name, _ := k.(string)
		kind, ok := bind.TreeViewKindByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: tree kind %v", ErrBadValue, k)
		}
		item.Kind = kind
	}
	if l, ok := m["label"]; ok {
		item.Label = fmt.Sprint(l)
	}

	if evs, ok := m["events"].(map[string]any); ok {
		ev := &bind.TreeViewEvents[string]{}
		for key, val := range evs {
			set, known := treeEvents[key]
			name, isText := val.(string)
			if !known || !isText {
				return nil, fmt.Errorf("%w: tree event %s", ErrBadValue, key)
			}
			set(ev, &name)
		}
		item.Events = ev
	}
	if c, ok := toFloat(m["code"]); ok {
		if item.Events == nil {
			item.Events = &bind.TreeViewEvents[string]{}
		}
		item.Events.Context = item.Events.Context.WithCode(uint32(c))
	}
	if c, ok := toFloat(m["code2"]); ok {
		if item.Events == nil {
			item.Events = &bind.TreeViewEvents[string]{}
		}
		item.Events.Context = item.Events.Context.WithCode2(uint32(c))
	}

	if raw, ok := m["items"]; ok {
		children, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: tree items must be a sequence", ErrBadValue)
		}
		item.Items = make([]bind.TreeViewItem[string], 0, len(children))
		for _, c := range children {
			cm, ok := c.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: tree item must be a mapping", ErrBadValue)
			}
			child, err := toTree(cm)
			if err != nil {
				return nil, err
			}
			item.Items = append(item.Items, *child)
		}
	}
	return item, nil
}
