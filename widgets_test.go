package bind

import (
	"testing"

	"github.com/gogpu/bind/layout"
	"github.com/gogpu/bind/recording"
	"github.com/google/go-cmp/cmp"
)

func fileTree() *TreeViewItem[string] {
	events := (&TreeViewEvents[string]{}).
		OnLabel(evt("label-a"), evt("label-a-right")).
		OnBubble(evt("bubble-a"), nil).
		OnIcon(evt("icon-a"), nil).
		WithContext(ContextCode(7))
	return &TreeViewItem[string]{
		Kind:  TreeRoot,
		Label: "root",
		Items: []TreeViewItem[string]{
			{Kind: TreeCollapsedItem, Label: "a", Events: events, Items: []TreeViewItem[string]{{Label: "hidden"}}},
			{Kind: TreeExpandedItem, Label: "b", Items: []TreeViewItem[string]{
				{Kind: TreeEmptyItem, Label: "c"},
			}},
		},
	}
}

func TestTreeViewLayout(t *testing.T) {
	data := &testData{trees: map[string]*TreeViewItem[string]{"files": fileTree()}}
	cmds := []cmd{
		openTree,
		Declare("font_size", Static(NumericDecl[string](20))),
		Declare("text_color", Static(ColorDecl[string](layout.Red))),
		CloseTreeView[string]("files"),
	}
	_, r := run(t, cmds, nil, data, Input{}, nil)

	if diff := cmp.Diff([]string{"root", "a", "b", "c"}, r.Texts()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	for _, tc := range textConfigs(r) {
		if tc.FontSize != 20 || tc.Color != layout.Red {
			t.Errorf("label style = %+v, want size 20 red", tc)
		}
	}

	var lines, circles int
	for _, cfg := range r.Configs() {
		switch cfg.Shape {
		case layout.ShapeLine:
			lines++
		case layout.ShapeCircle:
			circles++
		}
	}
	// One guide line for the expanded item, one icon per visible node.
	if lines != 1 || circles != 4 {
		t.Errorf("lines = %d circles = %d, want 1 and 4", lines, circles)
	}
}

func TestTreeViewEvents(t *testing.T) {
	// Open order of the first item "a": node 5, row 6, bubble 7, icon 8.
	tests := []struct {
		name  string
		hover recording.HoverFunc
		in    Input
		want  []string
	}{
		{"label", recording.HoverSequence(6), Input{Left: MouseButton{Clicked: true}}, []string{"label-a"}},
		{"label right", recording.HoverSequence(6), Input{Right: MouseButton{Clicked: true}}, []string{"label-a-right"}},
		{"bubble", recording.HoverSequence(6, 7), Input{Left: MouseButton{Clicked: true}}, []string{"bubble-a"}},
		{"icon", recording.HoverSequence(6, 7, 8), Input{Left: MouseButton{Clicked: true}}, []string{"icon-a"}},
		{"no click", recording.HoverSequence(6), Input{}, nil},
		{"item without events", recording.HoverSequence(10), Input{Left: MouseButton{Clicked: true}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &testData{trees: map[string]*TreeViewItem[string]{"files": fileTree()}}
			cmds := []cmd{openTree, CloseTreeView[string]("files")}
			res, _ := run(t, cmds, nil, data, tt.in, tt.hover)

			var got []string
			for _, ev := range res.Events {
				got = append(got, ev.Event)
				if ev.Context == nil || ev.Context.Text == nil || *ev.Context.Text != "a" {
					t.Errorf("context text = %+v, want a", ev.Context)
				}
				if ev.Context != nil && (ev.Context.Code == nil || *ev.Context.Code != 7) {
					t.Errorf("context code = %+v, want 7", ev.Context.Code)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTreeViewHoverStyle(t *testing.T) {
	data := &testData{trees: map[string]*TreeViewItem[string]{"files": fileTree()}}
	cmds := []cmd{openTree, CloseTreeView[string]("files")}
	_, r := run(t, cmds, nil, data, Input{}, recording.HoverSequence(6))

	labels := textConfigs(r)
	if labels[1].Color != layout.White {
		t.Errorf("hovered label color = %v, want white", labels[1].Color)
	}
	if labels[0].Color != layout.Black {
		t.Errorf("label color = %v, want black", labels[0].Color)
	}
}

func TestTreeViewMissing(t *testing.T) {
	cmds := []cmd{openTree, CloseTreeView[string]("nothing"), openText, textOf("after")}
	_, r := run(t, cmds, nil, &testData{}, Input{}, nil)
	if diff := cmp.Diff([]string{"after"}, r.Texts()); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeViewKindNames(t *testing.T) {
	for k := TreeEmptyRoot; k <= TreeExpandedItem; k++ {
		got, ok := TreeViewKindByName(k.String())
		if !ok || got != k {
			t.Errorf("TreeViewKindByName(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := TreeViewKindByName("branch"); ok {
		t.Error("unknown kind resolved")
	}
}

func TestTextBox(t *testing.T) {
	data := &testData{texts: map[string]string{"name": "Ada"}}
	cmds := []cmd{
		openTxtBx,
		Declare("color", Static(ColorDecl[string](layout.Yellow))),
		CloseTextBox[string](Dynamic[string]("name")),
	}
	in := Input{Left: MouseButton{Clicked: true}}
	res, r := run(t, cmds, nil, data, in, recording.AlwaysHovered)

	if diff := cmp.Diff([]string{"Ada"}, r.Texts()); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
	if res.Pointer != CursorText {
		t.Errorf("Pointer = %v, want text", res.Pointer)
	}
	if res.Focus != 1 || !res.FocusChanged {
		t.Errorf("focus = %d changed=%v, want the text box focused", res.Focus, res.FocusChanged)
	}

	cfg := r.Configs()[0]
	if cfg.Color != layout.Yellow {
		t.Errorf("color = %v, want yellow", cfg.Color)
	}
	if cfg.Border.Top != 5 || cfg.Border.Color != layout.RGB(0.8, 0.8, 0.8) {
		t.Errorf("border = %+v", cfg.Border)
	}
}

func TestTextBoxUnresolved(t *testing.T) {
	cmds := []cmd{openTxtBx, CloseTextBox[string](Dynamic[string]("missing"))}
	res, r := run(t, cmds, nil, &testData{}, Input{}, nil)

	if diff := cmp.Diff([]string{""}, r.Texts()); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
	if res.Pointer != CursorDefault {
		t.Errorf("Pointer = %v, want default", res.Pointer)
	}
}
