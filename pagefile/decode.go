package pagefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/bind"
	"github.com/gogpu/bind/layout"
)

type cmd = bind.Command[string]

// File holds the decoded pages and fragments of a page file.
type File struct {
	Pages     map[string][]bind.Command[string]
	Fragments map[string][]bind.Command[string]
}

// PageNames returns the page names in sorted order.
func (f *File) PageNames() []string {
	return sortedKeys(f.Pages)
}

// FragmentNames returns the fragment names in sorted order.
func (f *File) FragmentNames() []string {
	return sortedKeys(f.Fragments)
}

// Register adds every fragment and page of f to b. It stops at the first
// name b already holds and returns the Binder's error.
func (f *File) Register(b *bind.Binder[string]) error {
	for _, name := range f.FragmentNames() {
		if err := b.AddFragment(name, f.Fragments[name]); err != nil {
			return fmt.Errorf("pagefile: %w", err)
		}
	}
	for _, name := range f.PageNames() {
		if err := b.AddPage(name, f.Pages[name]); err != nil {
			return fmt.Errorf("pagefile: %w", err)
		}
	}
	return nil
}

// Apply adds or replaces every fragment and page of f in b, for reloading
// a file that was registered before.
func (f *File) Apply(b *bind.Binder[string]) error {
	for _, name := range f.FragmentNames() {
		cmds := f.Fragments[name]
		err := b.ReplaceFragment(name, cmds)
		if errors.Is(err, bind.ErrNotFound) {
			err = b.AddFragment(name, cmds)
		}
		if err != nil {
			return fmt.Errorf("pagefile: %w", err)
		}
	}
	for _, name := range f.PageNames() {
		cmds := f.Pages[name]
		err := b.ReplacePage(name, cmds)
		if errors.Is(err, bind.ErrNotFound) {
			err = b.AddPage(name, cmds)
		}
		if err != nil {
			return fmt.Errorf("pagefile: %w", err)
		}
	}
	return nil
}

// Load reads and decodes the page file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pagefile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a page file from data.
func Parse(data []byte) (*File, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a page file from r. An empty document yields an empty File.
func Decode(r io.Reader) (*File, error) {
	f := &File{
		Pages:     make(map[string][]bind.Command[string]),
		Fragments: make(map[string][]bind.Command[string]),
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		return nil, &ParseError{Index: -1, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return f, nil
		}
		root = root.Content[0]
	}
	root = deref(root)
	if isNull(root) {
		return f, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, syntaxError("", root, "top level must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], deref(root.Content[i+1])
		var dst map[string][]bind.Command[string]
		switch key.Value {
		case "pages":
			dst = f.Pages
		case "fragments":
			dst = f.Fragments
		default:
			return nil, syntaxError("", key, "unknown section %q", key.Value)
		}
		if err := decodeSection(val, dst); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func decodeSection(n *yaml.Node, dst map[string][]bind.Command[string]) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return syntaxError("", n, "section must map names to command lists")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		name := key.Value
		if _, dup := dst[name]; dup {
			return syntaxError(name, key, "defined twice")
		}
		cmds, err := DecodeCommands(name, n.Content[i+1])
		if err != nil {
			return err
		}
		dst[name] = cmds
	}
	return nil
}

// DecodeCommands decodes one command list node. page names the list in
// errors. The result is checked for balanced markers.
func DecodeCommands(page string, n *yaml.Node) ([]bind.Command[string], error) {
	n = deref(n)
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, syntaxError(page, n, "commands must be a sequence")
	}

	cmds := make([]bind.Command[string], 0, len(n.Content))
	for i, item := range n.Content {
		c, err := decodeCommand(deref(item))
		if err != nil {
			return nil, &ParseError{Page: page, Index: i, Line: item.Line, Err: err}
		}
		cmds = append(cmds, c)
	}

	if err := Validate(cmds); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Page = page
			if pe.Index >= 0 && pe.Index < len(n.Content) {
				pe.Line = n.Content[pe.Index].Line
			}
		}
		return nil, err
	}
	return cmds, nil
}

// Validate checks that the Opened and Closed markers of cmds nest. The
// returned error is a *ParseError wrapping ErrUnbalanced whose Index is
// the offending marker, or the unclosed opener.
func Validate[E any](cmds []bind.Command[E]) error {
	type open struct {
		closer bind.ElementKind
		index  int
	}
	var stack []open

	for i := range cmds {
		if cmds[i].Kind != bind.CommandElement {
			continue
		}
		k := cmds[i].Element.Kind
		if closer, ok := k.Closer(); ok {
			stack = append(stack, open{closer: closer, index: i})
			continue
		}
		if !k.IsClosed() {
			continue
		}
		if len(stack) == 0 {
			return &ParseError{Index: i, Err: fmt.Errorf("%w: %s without opener", ErrUnbalanced, k)}
		}
		top := stack[len(stack)-1]
		if top.closer != k {
			return &ParseError{Index: i, Err: fmt.Errorf("%w: %s closes %s opened at %d",
				ErrUnbalanced, k, cmds[top.index].Element.Kind, top.index)}
		}
		stack = stack[:len(stack)-1]
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &ParseError{Index: top.index, Err: fmt.Errorf("%w: %s never closed",
			ErrUnbalanced, cmds[top.index].Element.Kind)}
	}
	return nil
}

func decodeCommand(n *yaml.Node) (cmd, error) {
	var (
		name string
		op   *yaml.Node
	)
	switch {
	case n.Kind == yaml.ScalarNode && !isNull(n):
		name = n.Value
	case n.Kind == yaml.MappingNode && len(n.Content) == 2:
		name = n.Content[0].Value
		op = deref(n.Content[1])
		if isNull(op) {
			op = nil
		}
	default:
		return cmd{}, fmt.Errorf("%w: command must be a name or a single-key mapping", ErrSyntax)
	}

	if name == "Declare" {
		return decodeDeclaration(op)
	}
	if k, ok := bind.ElementKindByName(name); ok {
		return decodeElement(k, op)
	}
	if k, ok := bind.ConfigKindByName(name); ok {
		cfg, err := decodeConfig(k, op)
		if err != nil {
			return cmd{}, err
		}
		return bind.Configure[string](cfg), nil
	}
	return cmd{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

func decodeElement(k bind.ElementKind, op *yaml.Node) (cmd, error) {
	switch {
	case k == bind.ElementOpened:
		if op == nil {
			return bind.Mark[string](k), nil
		}
		id, err := textOperand(op)
		if err != nil {
			return cmd{}, err
		}
		return bind.OpenElementID[string](id), nil

	case k == bind.TextElementClosed || k == bind.TextBoxClosed:
		if op == nil {
			return cmd{}, missing(k)
		}
		content, err := textOperand(op)
		if err != nil {
			return cmd{}, err
		}
		if k == bind.TextBoxClosed {
			return bind.CloseTextBox[string](content), nil
		}
		return bind.CloseText[string](content), nil

	case k == bind.ListClosed || k == bind.UseClosed || k == bind.TreeViewClosed ||
		k == bind.IfOpened || k == bind.IfNotOpened:
		if op == nil {
			return cmd{}, missing(k)
		}
		name, err := nameOperand(op)
		if err != nil {
			return cmd{}, err
		}
		c := bind.Mark[string](k)
		switch k {
		case bind.ListClosed, bind.UseClosed, bind.TreeViewClosed:
			c.Element.Source = name
		default:
			c.Element.Condition = name
		}
		return c, nil

	case k == bind.Pointer:
		if op == nil {
			return cmd{}, missing(k)
		}
		icon, ok := bind.CursorIconByName(op.Value)
		if op.Kind != yaml.ScalarNode || !ok {
			return cmd{}, bad(op, "unknown cursor %q", op.Value)
		}
		return bind.SetPointer[string](icon), nil

	case k.IsEventScope() && !k.IsClosed():
		if op == nil {
			return bind.On[string](k, nil), nil
		}
		ev, err := textOperand(op)
		if err != nil {
			return cmd{}, err
		}
		return bind.On(k, &ev), nil
	}

	if op != nil {
		return cmd{}, fmt.Errorf("%w: %s takes no operand", ErrBadOperand, k)
	}
	return bind.Mark[string](k), nil
}

func decodeConfig(k bind.ConfigKind, op *yaml.Node) (bind.Config, error) {
	operand := k.Operand()
	if op == nil && operand != bind.OperandNone && operand != bind.OperandFlag {
		return bind.Config{}, missing(k)
	}

	switch operand {
	case bind.OperandNumber:
		n, err := numberOperand(op)
		if err != nil {
			return bind.Config{}, err
		}
		return bind.NumberDirective(k, n), nil

	case bind.OperandPair:
		if op.Kind != yaml.SequenceNode || len(op.Content) != 2 {
			return bind.Config{}, bad(op, "%s takes two numbers", k)
		}
		a, err := numberOperand(deref(op.Content[0]))
		if err != nil {
			return bind.Config{}, err
		}
		b, err := numberOperand(deref(op.Content[1]))
		if err != nil {
			return bind.Config{}, err
		}
		return bind.PairDirective(k, a, b), nil

	case bind.OperandColor:
		c, err := colorOperand(op)
		if err != nil {
			return bind.Config{}, err
		}
		return bind.ColorDirective(k, c), nil

	case bind.OperandText:
		t, err := textOperand(op)
		if err != nil {
			return bind.Config{}, err
		}
		return bind.IDDirective(t), nil

	case bind.OperandName:
		name, err := nameOperand(op)
		if err != nil {
			return bind.Config{}, err
		}
		return bind.NameDirective(k, name), nil

	case bind.OperandClip:
		return clipOperand(op)

	case bind.OperandFlag:
		on := true
		if op != nil {
			if op.Kind != yaml.ScalarNode || op.Decode(&on) != nil {
				return bind.Config{}, bad(op, "%s takes a boolean", k)
			}
		}
		return bind.FlagDirective(k, on), nil
	}

	if op != nil {
		return bind.Config{}, fmt.Errorf("%w: %s takes no operand", ErrBadOperand, k)
	}
	return bind.Directive(k), nil
}

// decodeDeclaration decodes {name: n, <kind>: value}. A "$other" value of
// any kind, or the ref kind, binds n to another name.
func decodeDeclaration(op *yaml.Node) (cmd, error) {
	if op == nil {
		return cmd{}, fmt.Errorf("%w: Declare", ErrMissingOperand)
	}
	if op.Kind != yaml.MappingNode || len(op.Content) != 4 {
		return cmd{}, bad(op, "Declare takes name and one value")
	}

	var (
		name string
		kind string
		val  *yaml.Node
	)
	for i := 0; i < len(op.Content); i += 2 {
		key, v := op.Content[i].Value, deref(op.Content[i+1])
		if key == "name" {
			name = v.Value
			continue
		}
		kind, val = key, v
	}
	if name == "" || val == nil {
		return cmd{}, bad(op, "Declare takes name and one value")
	}
	if val.Kind != yaml.ScalarNode {
		return cmd{}, bad(val, "declaration value must be a scalar")
	}

	if kind == "ref" || isRef(val) {
		ref := strings.TrimPrefix(val.Value, "$")
		if ref == "" {
			return cmd{}, bad(val, "empty reference")
		}
		return bind.Declare(name, bind.Dynamic[bind.Declaration[string]](ref)), nil
	}

	dk, ok := bind.DeclKindByName(kind)
	if !ok {
		return cmd{}, bad(op, "unknown declaration kind %q", kind)
	}

	var d bind.Declaration[string]
	switch dk {
	case bind.DeclBool:
		var b bool
		if err := val.Decode(&b); err != nil {
			return cmd{}, bad(val, "not a boolean")
		}
		d = bind.BoolDecl[string](b)
	case bind.DeclNumeric:
		var f float64
		if err := val.Decode(&f); err != nil {
			return cmd{}, bad(val, "not a number")
		}
		d = bind.NumericDecl[string](f)
	case bind.DeclText:
		d = bind.TextDecl[string](unescape(val.Value))
	case bind.DeclColor:
		c, err := literalColor(val)
		if err != nil {
			return cmd{}, err
		}
		d = bind.ColorDecl[string](c)
	case bind.DeclEvent:
		d = bind.EventDecl(unescape(val.Value))
	case bind.DeclImage:
		d = bind.ImageDecl[string](unescape(val.Value))
	}
	return bind.Declare(name, bind.Static(d)), nil
}

func textOperand(n *yaml.Node) (bind.DataSrc[string], error) {
	if n.Kind != yaml.ScalarNode {
		return bind.DataSrc[string]{}, bad(n, "expected a string")
	}
	if isRef(n) {
		return bind.Dynamic[string](n.Value[1:]), nil
	}
	return bind.Static(unescape(n.Value)), nil
}

// nameOperand accepts a plain name; a leading "$" is allowed and dropped.
func nameOperand(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", bad(n, "expected a name")
	}
	name := strings.TrimPrefix(n.Value, "$")
	if name == "" {
		return "", bad(n, "expected a name")
	}
	return name, nil
}

func numberOperand(n *yaml.Node) (bind.DataSrc[float64], error) {
	if n.Kind != yaml.ScalarNode {
		return bind.DataSrc[float64]{}, bad(n, "expected a number")
	}
	if isRef(n) {
		return bind.Dynamic[float64](n.Value[1:]), nil
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return bind.DataSrc[float64]{}, bad(n, "%q is not a number", n.Value)
	}
	return bind.Static(f), nil
}

func boolOperand(n *yaml.Node) (bind.DataSrc[bool], error) {
	if n.Kind != yaml.ScalarNode {
		return bind.DataSrc[bool]{}, bad(n, "expected a boolean")
	}
	if isRef(n) {
		return bind.Dynamic[bool](n.Value[1:]), nil
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return bind.DataSrc[bool]{}, bad(n, "%q is not a boolean", n.Value)
	}
	return bind.Static(b), nil
}

func colorOperand(n *yaml.Node) (bind.DataSrc[layout.Color], error) {
	if n.Kind == yaml.ScalarNode && isRef(n) {
		return bind.Dynamic[layout.Color](n.Value[1:]), nil
	}
	c, err := literalColor(n)
	if err != nil {
		return bind.DataSrc[layout.Color]{}, err
	}
	return bind.Static(c), nil
}

// literalColor accepts a color name, a hex string or a sequence of three
// or four components in [0, 1].
func literalColor(n *yaml.Node) (layout.Color, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		c, err := layout.ParseColor(n.Value)
		if err != nil {
			return layout.Color{}, bad(n, "%v", err)
		}
		return c, nil
	case yaml.SequenceNode:
		var parts []float64
		if err := n.Decode(&parts); err != nil || len(parts) < 3 || len(parts) > 4 {
			return layout.Color{}, bad(n, "color takes three or four components")
		}
		if len(parts) == 3 {
			return layout.RGB(parts[0], parts[1], parts[2]), nil
		}
		return layout.RGBA(parts[0], parts[1], parts[2], parts[3]), nil
	}
	return layout.Color{}, bad(n, "expected a color")
}

func clipOperand(n *yaml.Node) (bind.Config, error) {
	var vn, hn *yaml.Node
	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) != 2 {
			return bind.Config{}, bad(n, "Clip takes vertical and horizontal")
		}
		vn, hn = deref(n.Content[0]), deref(n.Content[1])
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			switch key := n.Content[i].Value; key {
			case "vertical":
				vn = deref(n.Content[i+1])
			case "horizontal":
				hn = deref(n.Content[i+1])
			default:
				return bind.Config{}, bad(n.Content[i], "unknown Clip axis %q", key)
			}
		}
	default:
		return bind.Config{}, bad(n, "Clip takes vertical and horizontal")
	}

	var v, h bind.DataSrc[bool]
	var err error
	if vn != nil {
		if v, err = boolOperand(vn); err != nil {
			return bind.Config{}, err
		}
	}
	if hn != nil {
		if h, err = boolOperand(hn); err != nil {
			return bind.Config{}, err
		}
	}
	return bind.ClipDirective(v, h), nil
}

// isRef reports whether a scalar is a "$name" reference. "$$" escapes a
// literal dollar sign.
func isRef(n *yaml.Node) bool {
	return n.Tag == "!!str" && len(n.Value) > 1 && n.Value[0] == '$' && n.Value[1] != '$'
}

func unescape(s string) string {
	if strings.HasPrefix(s, "$$") {
		return s[1:]
	}
	return s
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func missing(k fmt.Stringer) error {
	return fmt.Errorf("%w: %s", ErrMissingOperand, k)
}

func bad(n *yaml.Node, format string, args ...any) error {
	if n.Line > 0 {
		return fmt.Errorf("%w: line %d: %s", ErrBadOperand, n.Line, fmt.Sprintf(format, args...))
	}
	return fmt.Errorf("%w: %s", ErrBadOperand, fmt.Sprintf(format, args...))
}

func syntaxError(page string, n *yaml.Node, format string, args ...any) error {
	return &ParseError{Page: page, Index: -1, Line: n.Line, Err: fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))}
}

func sortedKeys(m map[string][]bind.Command[string]) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
