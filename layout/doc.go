// Package layout defines the retained-mode layout engine contract driven by
// the bind interpreter, together with the configuration accumulators it
// consumes and a small reference engine.
//
// # Engine Contract
//
// The interpreter talks to a layout engine exclusively through [Engine]:
//
//	OpenElement()
//	ConfigureElement(cfg *ElementConfig) uint32
//	AddTextElement(text string, cfg *TextConfig, wrap bool)
//	CloseElement()
//
// plus the queries Hovered, ElementID and ScrollOffset. Open and close calls
// must be balanced within a frame.
//
// # Accumulators
//
// [ElementConfig] and [TextConfig] are mutable builders. Setters return the
// receiver so calls can be chained:
//
//	cfg := layout.NewElementConfig().
//	    GrowX(0, 0).
//	    SetPaddingAll(8).
//	    SetColor(layout.Hex("#1e1e2e"))
//
// # Reference Engine
//
// [Tree] implements Engine with a simplified flex-like algorithm: fixed, fit,
// grow and percent sizing per axis, padding, child gaps, alignment, floating
// elements and clipping with scroll offsets. Hover queries are answered from
// the previous frame's geometry, the way immediate-mode layout libraries
// such as Clay do it. Text is measured through a [Measurer].
//
//	tree := layout.NewTree(nil) // FixedAdvance measurer
//	tree.SetPointer(120, 40)
//	tree.BeginLayout(800, 600)
//	// ... drive the tree ...
//	cmds := tree.EndLayout()
//
// Tree makes no rendering-fidelity promises; it exists to run pages end to
// end and to feed the preview rasterizer.
package layout
