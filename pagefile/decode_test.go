package pagefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/bind"
	"github.com/gogpu/bind/recording"
)

const sample = `
fragments:
  button:
    - Declare: {name: label, text: OK}
    - ElementOpened
    - ConfigOpened
    - PaddingAll: 8
    - Color: "#3060c0"
    - ConfigClosed
    - TextElementOpened
    - TextElementClosed: $label
    - ElementClosed
pages:
  main:
    - ElementOpened: root
    - ConfigOpened
    - GrowAll
    - ConfigClosed
    - UseOpened
    - Declare: {name: label, ref: title}
    - UseClosed: button
    - ElementClosed
`

func strs(cmds []bind.Command[string]) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.String()
	}
	return out
}

func TestParseSample(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if diff := cmp.Diff([]string{"main"}, f.PageNames()); diff != "" {
		t.Errorf("PageNames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"button"}, f.FragmentNames()); diff != "" {
		t.Errorf("FragmentNames mismatch (-want +got):\n%s", diff)
	}

	wantButton := []string{
		`Declaration(label = text("OK"))`,
		"ElementOpened",
		"ConfigOpened",
		"PaddingAll(8)",
		"Color(#3060c0ff)",
		"ConfigClosed",
		"TextElementOpened",
		"TextElementClosed($label)",
		"ElementClosed",
	}
	if diff := cmp.Diff(wantButton, strs(f.Fragments["button"])); diff != "" {
		t.Errorf("button mismatch (-want +got):\n%s", diff)
	}

	wantMain := []string{
		"ElementOpened(root)",
		"ConfigOpened",
		"GrowAll",
		"ConfigClosed",
		"UseOpened",
		"Declaration(label = $title)",
		"UseClosed(button)",
		"ElementClosed",
	}
	if diff := cmp.Diff(wantMain, strs(f.Pages["main"])); diff != "" {
		t.Errorf("main mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "~\n", "pages:\n"} {
		f, err := Parse([]byte(in))
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if len(f.Pages) != 0 || len(f.Fragments) != 0 {
			t.Errorf("Parse(%q) = %d pages, %d fragments, want none", in, len(f.Pages), len(f.Fragments))
		}
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want string
	}{
		{"marker", "ConfigOpened", "ConfigOpened"},
		{"static text", "TextElementClosed: hello", "TextElementClosed(hello)"},
		{"escaped dollar", `TextElementClosed: "$$5"`, "TextElementClosed($5)"},
		{"numeric text", "TextElementClosed: 42", "TextElementClosed(42)"},
		{"dynamic id", "ElementOpened: $row_id", "ElementOpened($row_id)"},
		{"list", "ListClosed: rows", "ListClosed(rows)"},
		{"list dollar", "ListClosed: $rows", "ListClosed(rows)"},
		{"tree", "TreeViewClosed: files", "TreeViewClosed(files)"},
		{"textbox", "TextBoxClosed: $draft", "TextBoxClosed($draft)"},
		{"if", "IfOpened: visible", "IfOpened(visible)"},
		{"if not", "IfNotOpened: $visible", "IfNotOpened(visible)"},
		{"pointer", "Pointer: text", "Pointer(text)"},
		{"event static", "LeftClickedOpened: save", "LeftClickedOpened(save)"},
		{"event dynamic", "HoverOpened: $on_hover", "HoverOpened($on_hover)"},
		{"event bare", "FocusedOpened", "FocusedOpened"},
		{"number", "ChildGap: 4", "ChildGap(4)"},
		{"number float", "FixedX: 12.5", "FixedX(12.5)"},
		{"number dynamic", "FixedY: $height", "FixedY($height)"},
		{"pair", "GrowXMinMax: [10, $max]", "GrowXMinMax(10, $max)"},
		{"color name", "BorderColor: White", "BorderColor(#ffffffff)"},
		{"color short hex", "FontColor: '#f00'", "FontColor(#ff0000ff)"},
		{"color components", "Color: [0, 0, 1, 0.5]", "Color(#0000ff80)"},
		{"color dynamic", "Color: $accent", "Color($accent)"},
		{"id", "Id: save", "Id(save)"},
		{"id dynamic", "Id: $name", "Id($name)"},
		{"image", "Image: logo", "Image(logo)"},
		{"use", "Use: card_style", "Use(card_style)"},
		{"clip mapping", "Clip: {vertical: true, horizontal: $scroll_x}", "Clip(vertical=true, horizontal=$scroll_x)"},
		{"clip sequence", "Clip: [false, true]", "Clip(vertical=false, horizontal=true)"},
		{"clip one axis", "Clip: {vertical: true}", "Clip(vertical=true, horizontal=false)"},
		{"flag bare", "Wrap", "Wrap(true)"},
		{"flag null", "Editable:", "Editable(true)"},
		{"flag off", "Wrap: false", "Wrap(false)"},
		{"decl bool", "Declare: {name: on, bool: true}", "Declaration(on = bool(true))"},
		{"decl numeric", "Declare: {name: n, numeric: 3}", "Declaration(n = numeric(3))"},
		{"decl color", "Declare: {name: c, color: red}", "Declaration(c = color(#ff0000ff))"},
		{"decl event", "Declare: {name: e, event: close}", `Declaration(e = event(close))`},
		{"decl image", "Declare: {name: i, image: logo}", `Declaration(i = image("logo"))`},
		{"decl dollar ref", "Declare: {name: t, text: $title}", "Declaration(t = $title)"},
		{"decl escaped text", `Declare: {name: t, text: "$$9"}`, `Declaration(t = text("$9"))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte("pages:\n  p:\n    - " + tt.cmd + "\n"))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			cmds := f.Pages["p"]
			if len(cmds) != 1 {
				t.Fatalf("got %d commands, want 1", len(cmds))
			}
			if got := cmds[0].String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		index int
	}{
		{"not yaml", "pages: [", ErrSyntax, -1},
		{"top level sequence", "- a\n", ErrSyntax, -1},
		{"unknown section", "widgets: {}\n", ErrSyntax, -1},
		{"page not a list", "pages:\n  p: 3\n", ErrSyntax, -1},
		{"unknown command", "pages:\n  p:\n    - Frobnicate\n", ErrUnknownCommand, 0},
		{"two keys", "pages:\n  p:\n    - {ChildGap: 1, FixedX: 2}\n", ErrSyntax, 0},
		{"missing content", "pages:\n  p:\n    - TextElementOpened\n    - TextElementClosed\n", ErrMissingOperand, 1},
		{"missing number", "pages:\n  p:\n    - ChildGap\n", ErrMissingOperand, 0},
		{"bad number", "pages:\n  p:\n    - ChildGap: wide\n", ErrBadOperand, 0},
		{"bad pair", "pages:\n  p:\n    - FitXMinMax: [1]\n", ErrBadOperand, 0},
		{"bad color", "pages:\n  p:\n    - Color: '#12'\n", ErrBadOperand, 0},
		{"bad cursor", "pages:\n  p:\n    - Pointer: finger\n", ErrBadOperand, 0},
		{"bad flag", "pages:\n  p:\n    - Wrap: sometimes\n", ErrBadOperand, 0},
		{"operand on plain marker", "pages:\n  p:\n    - ConfigOpened: x\n    - ConfigClosed\n", ErrBadOperand, 0},
		{"operand on plain directive", "pages:\n  p:\n    - GrowAll: 1\n", ErrBadOperand, 0},
		{"bad declaration kind", "pages:\n  p:\n    - Declare: {name: x, float: 1}\n", ErrBadOperand, 0},
		{"declaration without name", "pages:\n  p:\n    - Declare: {text: a, bool: true}\n", ErrBadOperand, 0},
		{"unclosed", "pages:\n  p:\n    - ElementOpened\n", ErrUnbalanced, 0},
		{"stray closer", "pages:\n  p:\n    - ElementClosed\n", ErrUnbalanced, 0},
		{"crossed", "pages:\n  p:\n    - ElementOpened\n    - IfOpened: x\n    - ElementClosed\n    - IfClosed\n", ErrUnbalanced, 2},
		{"duplicate page", "pages:\n  p: []\n  p: []\n", ErrSyntax, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %T, want *ParseError", err)
			}
			if pe.Index != tt.index {
				t.Errorf("Index = %d, want %d", pe.Index, tt.index)
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse([]byte("pages:\n  home:\n    - ElementOpened\n    - Bogus\n    - ElementClosed\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Page != "home" || pe.Index != 1 || pe.Line != 4 {
		t.Errorf("location = %q/%d/line %d, want home/1/line 4", pe.Page, pe.Index, pe.Line)
	}
	msg := err.Error()
	for _, part := range []string{`"home"`, "command 1", "line 4", "Bogus"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestParseAnchors(t *testing.T) {
	input := `
fragments:
  row: &row
    - ElementOpened
    - ElementClosed
pages:
  main: *row
`
	f, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(strs(f.Fragments["row"]), strs(f.Pages["main"])); diff != "" {
		t.Errorf("aliased page mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	ok := []bind.Command[string]{
		bind.Mark[string](bind.ElementOpened),
		bind.If[string]("x"),
		bind.SetPointer[string](bind.CursorPointer),
		bind.Mark[string](bind.IfClosed),
		bind.IfNot[string]("y"),
		bind.Mark[string](bind.IfClosed),
		bind.Mark[string](bind.ElementClosed),
	}
	if err := Validate(ok); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if err := Validate[string](nil); err != nil {
		t.Errorf("Validate(nil): %v", err)
	}

	wrong := []bind.Command[string]{
		bind.Mark[string](bind.ListOpened),
		bind.CloseUse[string]("f"),
	}
	err := Validate(wrong)
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("err = %v, want ErrUnbalanced", err)
	}
}

type titleData struct {
	bind.NoData[string]
}

func (titleData) Text(name string, _ *bind.ListContext) (string, bool) {
	if name == "title" {
		return "Hello", true
	}
	return "", false
}

func TestRegisterAndRun(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b := bind.NewBinder[string]()
	if err := f.Register(b); err != nil {
		t.Fatalf("Register: %v", err)
	}

	rec := recording.NewRecorder(nil)
	if _, err := b.Run("main", rec, titleData{}, bind.Input{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	r := rec.FinishRecording()
	if err := r.Validate(); err != nil {
		t.Fatalf("recording: %v", err)
	}
	if diff := cmp.Diff([]string{"Hello"}, r.Texts()); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}

	if err := f.Register(b); !errors.Is(err, bind.ErrExists) {
		t.Errorf("second Register err = %v, want ErrExists", err)
	}
}

func TestApply(t *testing.T) {
	b := bind.NewBinder[string]()
	first, err := Parse([]byte("pages:\n  main:\n    - TextElementOpened\n    - TextElementClosed: one\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Apply(b); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	second, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if err := second.Apply(b); err != nil {
		t.Fatalf("Apply reload: %v", err)
	}

	cmds, ok := b.Page("main")
	if !ok {
		t.Fatal("page main missing after reload")
	}
	if diff := cmp.Diff(strs(second.Pages["main"]), strs(cmds)); diff != "" {
		t.Errorf("reloaded page mismatch (-want +got):\n%s", diff)
	}
	if _, ok := b.Fragment("button"); !ok {
		t.Error("fragment button not added by Apply")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Pages["main"]) != 8 {
		t.Errorf("main has %d commands, want 8", len(f.Pages["main"]))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load missing err = %v, want os.ErrNotExist", err)
	}
}
