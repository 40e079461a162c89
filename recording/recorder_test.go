package recording

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/bind/layout"
	"github.com/google/go-cmp/cmp"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(nil)

	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if rec.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", rec.Depth())
	}
	if rec.Hovered() {
		t.Error("Hovered() without hover test = true, want false")
	}
}

func TestRecorderFinishRecording(t *testing.T) {
	rec := NewRecorder(nil)
	rec.OpenElement()
	rec.ConfigureElement(layout.NewElementConfig().FixedX(10))
	rec.AddTextElement("hi", layout.NewTextConfig(), false)
	rec.CloseElement()

	r := rec.FinishRecording()
	if r == nil {
		t.Fatal("FinishRecording returned nil")
	}
	if r.Len() != 4 {
		t.Errorf("recording.Len() = %d, want 4", r.Len())
	}
	if rec.Len() != 0 {
		t.Errorf("recorder not reset: Len() = %d", rec.Len())
	}

	// A second pass starts its sequence ids from 1 again.
	rec.OpenElement()
	if id := rec.ConfigureElement(layout.NewElementConfig()); id != 1 {
		t.Errorf("id after reset = %d, want 1", id)
	}
}

func TestRecorderIDs(t *testing.T) {
	rec := NewRecorder(nil)

	rec.OpenElement()
	outer := rec.ConfigureElement(layout.NewElementConfig())
	rec.OpenElement()
	named := rec.ConfigureElement(layout.NewElementConfig().SetID("save"))
	rec.CloseElement()
	rec.OpenElement()
	third := rec.ConfigureElement(layout.NewElementConfig())
	rec.CloseElement()
	rec.CloseElement()

	if outer != 1 {
		t.Errorf("outer id = %d, want 1", outer)
	}
	if named != layout.HashID("save") {
		t.Errorf("named id = %08x, want HashID(save)", named)
	}
	if third != 3 {
		t.Errorf("third id = %d, want 3", third)
	}
	if got := rec.ElementID("save"); got != named {
		t.Errorf("ElementID(save) = %08x, want %08x", got, named)
	}
}

func TestRecorderHover(t *testing.T) {
	tests := []struct {
		name  string
		hover HoverFunc
		want  []bool // Hovered after configuring "a", then the unnamed second element
	}{
		{"none", nil, []bool{false, false}},
		{"always", AlwaysHovered, []bool{true, true}},
		{"by name", HoverIDs("a"), []bool{true, false}},
		{"by sequence", HoverSequence(2), []bool{false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder(nil)
			rec.SetHover(tt.hover)

			var got []bool
			rec.OpenElement()
			rec.ConfigureElement(layout.NewElementConfig().SetID("a"))
			got = append(got, rec.Hovered())
			rec.CloseElement()
			rec.OpenElement()
			rec.ConfigureElement(layout.NewElementConfig())
			got = append(got, rec.Hovered())
			rec.CloseElement()

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("hover mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecorderCopiesConfig(t *testing.T) {
	rec := NewRecorder(nil)
	cfg := layout.NewElementConfig().SetColor(layout.Red)
	tcfg := layout.NewTextConfig().SetFontSize(10)

	rec.OpenElement()
	rec.ConfigureElement(cfg)
	rec.AddTextElement("x", tcfg, true)
	rec.CloseElement()

	// Reusing the accumulators must not change what was recorded.
	cfg.Reset()
	tcfg.Reset()

	r := rec.FinishRecording()
	if got := r.Configs()[0].Color; got != layout.Red {
		t.Errorf("recorded color = %v, want red", got)
	}
	text := r.Commands()[2].(AddTextCommand)
	if text.Config.FontSize != 10 || !text.Wrap {
		t.Errorf("recorded text = %+v", text)
	}
}

func TestRecordingCountAndTexts(t *testing.T) {
	rec := NewRecorder(nil)
	for _, s := range []string{"a", "b", "c"} {
		rec.OpenElement()
		rec.AddTextElement(s, layout.NewTextConfig(), false)
		rec.CloseElement()
	}
	r := rec.FinishRecording()

	if got := r.Count(CmdOpenElement); got != 3 {
		t.Errorf("Count(OpenElement) = %d, want 3", got)
	}
	if got := r.Count(CmdConfigureElement); got != 0 {
		t.Errorf("Count(ConfigureElement) = %d, want 0", got)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, r.Texts()); diff != "" {
		t.Errorf("Texts() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordingValidate(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
		want *UnbalancedError
	}{
		{"empty", nil, nil},
		{"balanced", []Command{OpenElementCommand{}, OpenElementCommand{}, CloseElementCommand{}, CloseElementCommand{}}, nil},
		{"extra close", []Command{OpenElementCommand{}, CloseElementCommand{}, CloseElementCommand{}}, &UnbalancedError{Index: 2}},
		{"left open", []Command{OpenElementCommand{}, OpenElementCommand{}, CloseElementCommand{}}, &UnbalancedError{Index: 3, Open: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Recording{commands: tt.cmds}).Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrUnbalanced) {
				t.Fatalf("Validate() = %v, want ErrUnbalanced", err)
			}
			var ue *UnbalancedError
			if !errors.As(err, &ue) {
				t.Fatalf("Validate() = %T, want *UnbalancedError", err)
			}
			if diff := cmp.Diff(tt.want, ue); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordingPlayback(t *testing.T) {
	rec := NewRecorder(nil)
	rec.OpenElement()
	rec.ConfigureElement(layout.NewElementConfig().SetID("box").FixedX(40).FixedY(30))
	rec.AddTextElement("label", layout.NewTextConfig(), false)
	rec.CloseElement()
	r := rec.FinishRecording()

	tree := layout.NewTree(nil)
	tree.BeginLayout(100, 100)
	if err := r.Playback(tree); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	tree.EndLayout()

	box, ok := tree.Box(layout.HashID("box"))
	if !ok {
		t.Fatal("box not laid out")
	}
	if box.Width != 40 || box.Height != 30 {
		t.Errorf("box = %+v, want 40x30", box)
	}
	// Root, box and the text leaf.
	if got := tree.Len(); got != 3 {
		t.Errorf("tree.Len() = %d, want 3", got)
	}
}

func TestRecordingPlaybackUnbalanced(t *testing.T) {
	r := &Recording{commands: []Command{CloseElementCommand{}}}
	target := NewRecorder(nil)

	if err := r.Playback(target); !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("Playback() = %v, want ErrUnbalanced", err)
	}
	if target.Len() != 0 {
		t.Errorf("unbalanced recording replayed %d commands", target.Len())
	}
}

func TestRecorderForwardsToTarget(t *testing.T) {
	inner := NewRecorder(nil)
	inner.SetHover(AlwaysHovered)
	rec := NewRecorder(inner)

	rec.OpenElement()
	id := rec.ConfigureElement(layout.NewElementConfig())
	hovered := rec.Hovered()
	rec.CloseElement()

	if id != 1 {
		t.Errorf("forwarded id = %d, want 1", id)
	}
	if !hovered {
		t.Error("Hovered() did not forward to target")
	}
	if diff := cmp.Diff(rec.Len(), inner.Len()); diff != "" {
		t.Errorf("target saw a different number of calls:\n%s", diff)
	}
}

func TestRecorderNilTextConfig(t *testing.T) {
	tree := layout.NewTree(nil)
	tree.BeginLayout(100, 100)
	rec := NewRecorder(tree)

	rec.OpenElement()
	rec.AddTextElement("plain", nil, false)
	rec.CloseElement()
	var texts []string
	for _, c := range tree.EndLayout() {
		if c.Kind == layout.RenderText {
			texts = append(texts, c.Text)
		}
	}
	if diff := cmp.Diff([]string{"plain"}, texts); diff != "" {
		t.Errorf("target texts mismatch (-want +got):\n%s", diff)
	}

	cfgs := rec.FinishRecording().Commands()
	tc, ok := cfgs[1].(AddTextCommand)
	if !ok {
		t.Fatalf("command 1 = %v, want AddText", cfgs[1])
	}
	if tc.Config != (layout.TextConfig{}) {
		t.Errorf("recorded config = %+v, want zero", tc.Config)
	}
}

func TestRecordingWriteTo(t *testing.T) {
	rec := NewRecorder(nil)
	rec.OpenElement()
	rec.Hovered()
	rec.OpenElement()
	rec.AddTextElement("x", layout.NewTextConfig(), false)
	rec.CloseElement()
	rec.CloseElement()

	var sb strings.Builder
	if _, err := rec.FinishRecording().WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	want := "OpenElement\n  OpenElement\n    AddText \"x\" size=16 color=#00000000\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("WriteTo mismatch (-want +got):\n%s", diff)
	}
}
