package bind

import (
	"testing"

	"github.com/gogpu/bind/layout"
	"github.com/gogpu/bind/recording"
	"github.com/google/go-cmp/cmp"
)

func TestEventScopes(t *testing.T) {
	btn := layout.HashID("btn")
	hovered := recording.HoverIDs("btn")
	tests := []struct {
		name  string
		open  ElementKind
		in    Input
		hover recording.HoverFunc
		want  bool
	}{
		{"hover", HoverOpened, Input{}, hovered, true},
		{"hover miss", HoverOpened, Input{}, nil, false},
		{"hovered", HoveredOpened, Input{}, hovered, true},
		{"unhovered", UnHoveredOpened, Input{}, nil, true},
		{"unhovered miss", UnHoveredOpened, Input{}, hovered, false},
		{"focus", FocusOpened, Input{Focus: btn}, nil, true},
		{"focus other", FocusOpened, Input{Focus: 99}, nil, false},
		{"focused without click", FocusedOpened, Input{Focus: btn}, nil, false},
		{"focused by click", FocusedOpened, Input{Left: MouseButton{Clicked: true}}, hovered, true},
		{"unfocused", UnFocusedOpened, Input{}, nil, true},
		{"unfocused miss", UnFocusedOpened, Input{Focus: btn}, nil, false},
		{"left pressed", LeftPressedOpened, Input{Left: MouseButton{Pressed: true}}, hovered, true},
		{"left pressed elsewhere", LeftPressedOpened, Input{Left: MouseButton{Pressed: true}}, nil, false},
		{"left down", LeftDownOpened, Input{Left: MouseButton{Down: true}}, hovered, true},
		{"left released", LeftReleasedOpened, Input{Left: MouseButton{Released: true}}, hovered, true},
		{"left clicked", LeftClickedOpened, Input{Left: MouseButton{Clicked: true}}, hovered, true},
		{"left double", LeftDoubleClickedOpened, Input{Left: MouseButton{DoubleClicked: true}}, hovered, true},
		{"left triple", LeftTripleClickedOpened, Input{Left: MouseButton{TripleClicked: true}}, hovered, true},
		{"left clicked by right", LeftClickedOpened, Input{Right: MouseButton{Clicked: true}}, hovered, false},
		{"right pressed", RightPressedOpened, Input{Right: MouseButton{Pressed: true}}, hovered, true},
		{"right down", RightDownOpened, Input{Right: MouseButton{Down: true}}, hovered, true},
		{"right released", RightReleasedOpened, Input{Right: MouseButton{Released: true}}, hovered, true},
		{"right clicked", RightClickedOpened, Input{Right: MouseButton{Clicked: true}}, hovered, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closer, ok := tt.open.Closer()
			if !ok {
				t.Fatalf("%v has no closer", tt.open)
			}
			cmds := concat(named("btn"), []cmd{
				On(tt.open, src("fired")), openText, textOf("inside"), Mark[string](closer),
				closeEl,
			})
			res, r := run(t, cmds, nil, nil, tt.in, tt.hover)

			var want []EventRecord[string]
			var texts []string
			if tt.want {
				want = []EventRecord[string]{{Event: "fired"}}
				texts = []string{"inside"}
			}
			if diff := cmp.Diff(want, res.Events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(texts, r.Texts()); diff != "" {
				t.Errorf("texts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFocusBeforeConfigure(t *testing.T) {
	// Without a configured element there is nothing to hold focus.
	cmds := []cmd{On[string](FocusOpened, nil), openText, textOf("x"), Mark[string](FocusClosed)}
	_, r := run(t, cmds, nil, nil, Input{Focus: 5}, nil)
	if len(r.Texts()) != 0 {
		t.Errorf("focus scope taken without an element: %v", r.Texts())
	}
}

func TestClickFocuses(t *testing.T) {
	tests := []struct {
		name        string
		in          Input
		hover       recording.HoverFunc
		wantFocus   uint32
		wantChanged bool
	}{
		{"click", Input{Left: MouseButton{Clicked: true}}, recording.HoverIDs("btn"), layout.HashID("btn"), true},
		{"click keeps", Input{Left: MouseButton{Clicked: true}, Focus: layout.HashID("btn")}, recording.HoverIDs("btn"), layout.HashID("btn"), false},
		{"click elsewhere", Input{Left: MouseButton{Clicked: true}, Focus: 7}, nil, 7, false},
		{"no click", Input{Focus: 7}, recording.HoverIDs("btn"), 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := run(t, concat(named("btn"), []cmd{closeEl}), nil, nil, tt.in, tt.hover)
			if res.Focus != tt.wantFocus || res.FocusChanged != tt.wantChanged {
				t.Errorf("focus = %08x changed=%v, want %08x changed=%v",
					res.Focus, res.FocusChanged, tt.wantFocus, tt.wantChanged)
			}
		})
	}
}

func TestDynamicEvents(t *testing.T) {
	data := &testData{events: map[string]string{"save": "save-file"}}
	cmds := concat(
		[]cmd{Declare("action", Dynamic[Declaration[string]]("save"))},
		named("btn"),
		[]cmd{On(LeftClickedOpened, ref("action")), Mark[string](LeftClickedClosed), closeEl},
		named("other"),
		[]cmd{On(LeftClickedOpened, ref("save")), Mark[string](LeftClickedClosed), closeEl},
	)
	in := Input{Left: MouseButton{Clicked: true}}
	res, _ := run(t, cmds, nil, data, in, recording.AlwaysHovered)

	want := []EventRecord[string]{{Event: "save-file"}, {Event: "save-file"}}
	if diff := cmp.Diff(want, res.Events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEventDeclaration(t *testing.T) {
	cmds := concat(
		[]cmd{Declare("action", Static(EventDecl("quit")))},
		named("btn"),
		[]cmd{On(RightClickedOpened, ref("action")), Mark[string](RightClickedClosed), closeEl},
	)
	in := Input{Right: MouseButton{Clicked: true}}
	res, _ := run(t, cmds, nil, nil, in, recording.AlwaysHovered)
	if len(res.Events) != 1 || res.Events[0].Event != "quit" {
		t.Errorf("events = %+v, want quit", res.Events)
	}
}

func TestResultDispatch(t *testing.T) {
	res := Result[string]{Events: []EventRecord[string]{
		{Event: "a"},
		{Event: "b", Context: ContextText("ctx")},
	}}

	var got []string
	res.Dispatch(DispatcherFunc[string](func(ev string, ctx *EventContext) {
		if ctx != nil && ctx.Text != nil {
			ev += ":" + *ctx.Text
		}
		got = append(got, ev)
	}))
	if diff := cmp.Diff([]string{"a", "b:ctx"}, got); diff != "" {
		t.Errorf("dispatch mismatch (-want +got):\n%s", diff)
	}

	// A nil dispatcher is ignored.
	res.Dispatch(nil)
}

func TestEventContext(t *testing.T) {
	var nilCtx *EventContext
	c := nilCtx.WithText("label").WithCode(3).WithCode2(4)
	if *c.Text != "label" || *c.Code != 3 || *c.Code2 != 4 {
		t.Errorf("context = %+v", c)
	}

	base := ContextCode(1)
	derived := base.WithText("x")
	if base.Text != nil {
		t.Error("WithText modified the receiver")
	}
	if *derived.Code != 1 {
		t.Errorf("derived code = %d, want 1", *derived.Code)
	}
}
