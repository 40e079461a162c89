package layout

import (
	"math"
	"slices"
)

// fit computes content-driven sizes bottom-up.
func (t *Tree) fit(i int) {
	n := &t.nodes[i]
	if n.isText {
		d := t.measurer.Measure(n.text, &n.textCfg)
		n.w, n.h = d.Width, d.Height
		n.content = d
		return
	}
	n.floating = n.cfg.Floating.AttachTo != AttachNone && i != 0

	var sumW, sumH, maxW, maxH float64
	flow := 0
	for _, c := range n.children {
		t.fit(c)
		ch := &t.nodes[c]
		if ch.floating {
			continue
		}
		sumW += ch.w
		sumH += ch.h
		maxW = math.Max(maxW, ch.w)
		maxH = math.Max(maxH, ch.h)
		flow++
	}

	gaps := float64(n.cfg.ChildGap) * float64(max(flow-1, 0))
	pad := n.cfg.Padding
	var cw, ch float64
	if n.cfg.Direction == LeftToRight {
		cw, ch = sumW+gaps, maxH
	} else {
		cw, ch = maxW, sumH+gaps
	}
	if flow == 0 && n.cfg.Image != nil {
		img := n.cfg.Image.Size()
		cw, ch = img.Width, img.Height
	}
	cw += float64(pad.Left) + float64(pad.Right)
	ch += float64(pad.Top) + float64(pad.Bottom)
	n.content = Dimensions{Width: cw, Height: ch}

	n.w = fitAxis(n.cfg.Width, cw)
	n.h = fitAxis(n.cfg.Height, ch)
	if n.floating {
		n.w += n.cfg.Floating.Expand.Width
		n.h += n.cfg.Floating.Expand.Height
	}
}

func fitAxis(s Sizing, content float64) float64 {
	switch s.Kind {
	case SizingFixed:
		return s.Min
	case SizingPercent:
		return 0
	default:
		return s.clamp(content)
	}
}

// grow distributes the remaining space of each container top-down.
func (t *Tree) grow(i int) {
	n := &t.nodes[i]
	if n.isText || len(n.children) == 0 {
		return
	}
	pad := n.cfg.Padding
	innerW := n.w - float64(pad.Left) - float64(pad.Right)
	innerH := n.h - float64(pad.Top) - float64(pad.Bottom)
	horizontal := n.cfg.Direction == LeftToRight

	var growers []int
	used := 0.0
	flow := 0
	for _, c := range n.children {
		ch := &t.nodes[c]
		if ch.isText {
			if horizontal {
				used += ch.w
			} else {
				used += ch.h
			}
			flow++
			continue
		}
		if ch.cfg.Width.Kind == SizingPercent {
			ch.w = innerW * ch.cfg.Width.Percent
		}
		if ch.cfg.Height.Kind == SizingPercent {
			ch.h = innerH * ch.cfg.Height.Percent
		}
		if ch.floating {
			if ch.cfg.Width.Kind == SizingGrow {
				ch.w = ch.cfg.Width.clamp(innerW)
			}
			if ch.cfg.Height.Kind == SizingGrow {
				ch.h = ch.cfg.Height.clamp(innerH)
			}
			continue
		}
		flow++
		if horizontal {
			used += ch.w
			if ch.cfg.Width.Kind == SizingGrow {
				growers = append(growers, c)
			}
			if ch.cfg.Height.Kind == SizingGrow {
				ch.h = ch.cfg.Height.clamp(innerH)
			}
		} else {
			used += ch.h
			if ch.cfg.Height.Kind == SizingGrow {
				growers = append(growers, c)
			}
			if ch.cfg.Width.Kind == SizingGrow {
				ch.w = ch.cfg.Width.clamp(innerW)
			}
		}
	}
	used += float64(n.cfg.ChildGap) * float64(max(flow-1, 0))

	remaining := innerW - used
	if !horizontal {
		remaining = innerH - used
	}
	// Growers capped by their max drop out and the rest share what is left.
	for remaining > 0.5 && len(growers) > 0 {
		share := remaining / float64(len(growers))
		next := growers[:0]
		for _, c := range growers {
			ch := &t.nodes[c]
			size, s := &ch.w, ch.cfg.Width
			if !horizontal {
				size, s = &ch.h, ch.cfg.Height
			}
			grown := s.clamp(*size + share)
			remaining -= grown - *size
			capped := s.Max > 0 && grown >= s.Max
			*size = grown
			if !capped {
				next = append(next, c)
			}
		}
		if len(next) == len(growers) {
			break
		}
		growers = next
	}

	for _, c := range n.children {
		t.grow(c)
	}
}

// place assigns positions top-down. Floating children are queued and
// placed by placeFloating once the flow is settled.
func (t *Tree) place(i int, x, y float64) {
	n := &t.nodes[i]
	n.box = BoundingBox{X: x, Y: y, Width: n.w, Height: n.h}
	if n.isText {
		return
	}
	pad := n.cfg.Padding
	innerW := n.w - float64(pad.Left) - float64(pad.Right)
	innerH := n.h - float64(pad.Top) - float64(pad.Bottom)
	horizontal := n.cfg.Direction == LeftToRight
	gap := float64(n.cfg.ChildGap)

	total := 0.0
	flow := 0
	for _, c := range n.children {
		ch := &t.nodes[c]
		if ch.floating {
			t.floating = append(t.floating, c)
			continue
		}
		if horizontal {
			total += ch.w
		} else {
			total += ch.h
		}
		flow++
	}
	total += gap * float64(max(flow-1, 0))

	var cursor float64
	if horizontal {
		cursor = alignOffset(uint8(n.cfg.AlignX), innerW-total)
	} else {
		cursor = alignOffset(uint8(n.cfg.AlignY), innerH-total)
	}

	var scroll Vec2
	if n.cfg.Clip.Enabled() {
		scroll = n.cfg.Clip.Offset
	}
	originX := x + float64(pad.Left) - scroll.X
	originY := y + float64(pad.Top) - scroll.Y

	for _, c := range n.children {
		ch := &t.nodes[c]
		if ch.floating {
			continue
		}
		if horizontal {
			cy := alignOffset(uint8(n.cfg.AlignY), innerH-ch.h)
			t.place(c, originX+cursor, originY+cy)
			cursor += ch.w + gap
		} else {
			cx := alignOffset(uint8(n.cfg.AlignX), innerW-ch.w)
			t.place(c, originX+cx, originY+cursor)
			cursor += ch.h + gap
		}
	}
}

// alignOffset maps start/center/end alignment to an offset into extra.
func alignOffset(align uint8, extra float64) float64 {
	switch align {
	case 1:
		return extra / 2
	case 2:
		return extra
	default:
		return 0
	}
}

// placeFloating positions floating elements against their targets. Nested
// floating elements are appended to the queue while it is drained.
func (t *Tree) placeFloating() {
	for k := 0; k < len(t.floating); k++ {
		i := t.floating[k]
		n := &t.nodes[i]
		f := n.cfg.Floating

		target := t.nodes[n.parent].box
		switch f.AttachTo {
		case AttachElement:
			if j, ok := t.byID[f.ParentID]; ok {
				target = t.nodes[j].box
			}
		case AttachRoot:
			target = t.nodes[0].box
		}

		pfx, pfy := f.Parent.fractions()
		efx, efy := f.Element.fractions()
		x := target.X + target.Width*pfx - n.w*efx + f.Offset.X
		y := target.Y + target.Height*pfy - n.h*efy + f.Offset.Y
		t.place(i, x, y)
	}
}

// render emits the flow tree followed by floating subtrees ordered by
// z-index.
func (t *Tree) render() []RenderCommand {
	cmds := t.emit(0, nil, 0)

	order := slices.Clone(t.floating)
	slices.SortStableFunc(order, func(a, b int) int {
		return int(t.nodes[a].cfg.Floating.ZIndex) - int(t.nodes[b].cfg.Floating.ZIndex)
	})
	for _, i := range order {
		cmds = t.emit(i, cmds, t.nodes[i].cfg.Floating.ZIndex)
	}
	return cmds
}

func (t *Tree) emit(i int, cmds []RenderCommand, z int16) []RenderCommand {
	n := &t.nodes[i]
	if n.isText {
		return append(cmds, RenderCommand{
			Kind:       RenderText,
			ID:         n.id,
			Box:        n.box,
			Color:      n.textCfg.Color,
			Text:       n.text,
			TextConfig: n.textCfg,
			ZIndex:     z,
		})
	}

	cfg := &n.cfg
	switch {
	case cfg.Shape != ShapeNone:
		cmds = append(cmds, RenderCommand{
			Kind: RenderShape, ID: n.id, Box: n.box, Color: cfg.Color,
			Shape: cfg.Shape, LineWidth: cfg.LineWidth, ZIndex: z,
		})
	case cfg.Color.Visible():
		cmds = append(cmds, RenderCommand{
			Kind: RenderRectangle, ID: n.id, Box: n.box, Color: cfg.Color,
			Radius: cfg.Radius, ZIndex: z,
		})
	}
	if cfg.Image != nil {
		cmds = append(cmds, RenderCommand{
			Kind: RenderImage, ID: n.id, Box: n.box, Image: cfg.Image,
			Radius: cfg.Radius, ZIndex: z,
		})
	}

	clip := cfg.Clip.Enabled()
	if clip {
		cmds = append(cmds, RenderCommand{Kind: RenderScissorStart, ID: n.id, Box: n.box, ZIndex: z})
	}
	for _, c := range n.children {
		if t.nodes[c].floating {
			continue
		}
		cmds = t.emit(c, cmds, z)
	}
	if clip {
		cmds = append(cmds, RenderCommand{Kind: RenderScissorEnd, ID: n.id, Box: n.box, ZIndex: z})
	}

	if cfg.Border.Visible() {
		cmds = append(cmds, RenderCommand{
			Kind: RenderBorder, ID: n.id, Box: n.box, Color: cfg.Border.Color,
			Border: cfg.Border, Radius: cfg.Radius, ZIndex: z,
		})
	}
	return cmds
}
