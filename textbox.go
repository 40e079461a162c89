package bind

import "github.com/gogpu/bind/layout"

// textBox lays out a bordered box showing content. Hovering it asks for a
// text cursor. Scope Declarations color, border_color, text_color and
// font_size restyle it; content resolves in the caller's scope and an
// unresolved reference shows an empty box.
func (p *pass[E]) textBox(content DataSrc[string], scope Locals[E], r *resolver[E]) {
	sr := r.scoped(scope)
	cfg := layout.NewElementConfig().
		SetBorderAll(5).
		SetBorderColor(localColor(sr, "border_color", layout.RGB(0.8, 0.8, 0.8))).
		FitX(80, 0).
		FitY(20, 0).
		SetColor(localColor(sr, "color", layout.White)).
		SetPaddingAll(5)
	text := layout.NewTextConfig().
		SetColor(localColor(sr, "text_color", layout.Black)).
		SetFontSize(localU16(sr, "font_size", 12))

	p.engine.OpenElement()
	if p.engine.Hovered() {
		p.pointer = CursorText
	}
	p.configureElement(cfg)
	p.engine.AddTextElement(r.textOr(content, ""), text, false)
	p.engine.CloseElement()
}
