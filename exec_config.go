package bind

import "github.com/gogpu/bind/layout"

// attachPoints maps the nine attach directives of each family, in
// declaration order, to anchor points.
var attachPoints = [...]layout.AttachPoint{
	layout.AttachLeftTop, layout.AttachLeftCenter, layout.AttachLeftBottom,
	layout.AttachCenterTop, layout.AttachCenterCenter, layout.AttachCenterBottom,
	layout.AttachRightTop, layout.AttachRightCenter, layout.AttachRightBottom,
}

// configure applies one directive to the accumulators. Config-level Use
// applies every Config command of the named fragment to the same
// accumulators; depth counts those nested invocations.
func (p *pass[E]) configure(
	c *Config,
	cfg *layout.ElementConfig,
	tcfg *layout.TextConfig,
	r *resolver[E],
	depth int,
) {
	switch k := c.Kind; k {
	case CfgID:
		if id := r.textOr(c.Text, ""); id != "" {
			cfg.SetID(id)
		}

	case CfgGrowAll:
		cfg.GrowAll()
	case CfgGrowX:
		cfg.GrowX(0, 0)
	case CfgGrowXMin:
		cfg.GrowX(r.number(c.Number), 0)
	case CfgGrowXMax:
		cfg.GrowX(0, r.number(c.Number))
	case CfgGrowXMinMax:
		cfg.GrowX(r.number(c.Number), r.number(c.Number2))
	case CfgGrowY:
		cfg.GrowY(0, 0)
	case CfgGrowYMin:
		cfg.GrowY(r.number(c.Number), 0)
	case CfgGrowYMax:
		cfg.GrowY(0, r.number(c.Number))
	case CfgGrowYMinMax:
		cfg.GrowY(r.number(c.Number), r.number(c.Number2))
	case CfgFitX:
		cfg.FitX(0, 0)
	case CfgFitXMin:
		cfg.FitX(r.number(c.Number), 0)
	case CfgFitXMax:
		cfg.FitX(0, r.number(c.Number))
	case CfgFitXMinMax:
		cfg.FitX(r.number(c.Number), r.number(c.Number2))
	case CfgFitY:
		cfg.FitY(0, 0)
	case CfgFitYMin:
		cfg.FitY(r.number(c.Number), 0)
	case CfgFitYMax:
		cfg.FitY(0, r.number(c.Number))
	case CfgFitYMinMax:
		cfg.FitY(r.number(c.Number), r.number(c.Number2))
	case CfgFixedX:
		cfg.FixedX(r.number(c.Number))
	case CfgFixedY:
		cfg.FixedY(r.number(c.Number))
	case CfgPercentX:
		cfg.PercentX(r.number(c.Number))
	case CfgPercentY:
		cfg.PercentY(r.number(c.Number))

	case CfgPaddingAll:
		cfg.SetPaddingAll(r.u16(c.Number))
	case CfgPaddingTop:
		cfg.SetPaddingTop(r.u16(c.Number))
	case CfgPaddingBottom:
		cfg.SetPaddingBottom(r.u16(c.Number))
	case CfgPaddingLeft:
		cfg.SetPaddingLeft(r.u16(c.Number))
	case CfgPaddingRight:
		cfg.SetPaddingRight(r.u16(c.Number))
	case CfgChildGap:
		cfg.SetChildGap(r.u16(c.Number))
	case CfgVertical:
		cfg.SetDirection(layout.TopToBottom)
	case CfgChildAlignmentXLeft:
		cfg.SetAlignX(layout.AlignXLeft)
	case CfgChildAlignmentXRight:
		cfg.SetAlignX(layout.AlignXRight)
	case CfgChildAlignmentXCenter:
		cfg.SetAlignX(layout.AlignXCenter)
	case CfgChildAlignmentYTop:
		cfg.SetAlignY(layout.AlignYTop)
	case CfgChildAlignmentYCenter:
		cfg.SetAlignY(layout.AlignYCenter)
	case CfgChildAlignmentYBottom:
		cfg.SetAlignY(layout.AlignYBottom)

	case CfgColor:
		cfg.SetColor(r.color(c.Color))
	case CfgRadiusAll:
		cfg.SetRadiusAll(r.number(c.Number))
	case CfgRadiusTopLeft:
		cfg.SetRadiusTopLeft(r.number(c.Number))
	case CfgRadiusTopRight:
		cfg.SetRadiusTopRight(r.number(c.Number))
	case CfgRadiusBottomRight:
		cfg.SetRadiusBottomRight(r.number(c.Number))
	case CfgRadiusBottomLeft:
		cfg.SetRadiusBottomLeft(r.number(c.Number))
	case CfgBorderColor:
		cfg.SetBorderColor(r.color(c.Color))
	case CfgBorderAll:
		cfg.SetBorderAll(r.u16(c.Number))
	case CfgBorderTop:
		cfg.SetBorderTop(r.u16(c.Number))
	case CfgBorderLeft:
		cfg.SetBorderLeft(r.u16(c.Number))
	case CfgBorderBottom:
		cfg.SetBorderBottom(r.u16(c.Number))
	case CfgBorderRight:
		cfg.SetBorderRight(r.u16(c.Number))
	case CfgBorderBetweenChildren:
		cfg.SetBorderBetweenChildren(r.u16(c.Number))
	case CfgClip:
		cfg.SetClip(r.bool(c.Vertical), r.bool(c.Horizontal), p.engine.ScrollOffset())
	case CfgImage:
		if img := r.image(c.Name); img != nil {
			cfg.SetImage(img)
		}

	case CfgFloating:
		cfg.SetFloating()
	case CfgFloatingOffset:
		cfg.SetFloatingOffset(r.number(c.Number), r.number(c.Number2))
	case CfgFloatingDimensions:
		cfg.SetFloatingDimensions(r.number(c.Number), r.number(c.Number2))
	case CfgFloatingZIndex:
		cfg.SetFloatingZIndex(r.i16(c.Number))
	case CfgAttachToParentAtTopLeft, CfgAttachToParentAtCenterLeft, CfgAttachToParentAtBottomLeft,
		CfgAttachToParentAtTopCenter, CfgAttachToParentAtCenter, CfgAttachToParentAtBottomCenter,
		CfgAttachToParentAtTopRight, CfgAttachToParentAtCenterRight, CfgAttachToParentAtBottomRight:
		cfg.AttachToParentAt(attachPoints[k-CfgAttachToParentAtTopLeft])
	case CfgAttachElementAtTopLeft, CfgAttachElementAtCenterLeft, CfgAttachElementAtBottomLeft,
		CfgAttachElementAtTopCenter, CfgAttachElementAtCenter, CfgAttachElementAtBottomCenter,
		CfgAttachElementAtTopRight, CfgAttachElementAtCenterRight, CfgAttachElementAtBottomRight:
		cfg.AttachElementAt(attachPoints[k-CfgAttachElementAtTopLeft])
	case CfgFloatingPointerPassThrough:
		cfg.SetFloatingPointerPassThrough()
	case CfgFloatingAttachToElement:
		cfg.AttachToElement(p.engine.ElementID(c.Name))
	case CfgFloatingAttachToRoot:
		cfg.AttachToRoot()

	case CfgUse:
		frag, ok := p.fragments[c.Name]
		if !ok {
			p.log.Debug("bind: config fragment not found", "name", c.Name)
			return
		}
		if depth >= MaxUseDepth {
			p.log.Warn("bind: config fragment nesting too deep", "name", c.Name, "limit", MaxUseDepth)
			return
		}
		for i := range frag {
			if frag[i].Kind == CommandConfig {
				p.configure(&frag[i].Config, cfg, tcfg, r, depth+1)
			}
		}

	case CfgFontID:
		tcfg.SetFontID(r.u16(c.Number))
	case CfgAlignRight:
		tcfg.SetAlignment(layout.TextAlignRight)
	case CfgAlignLeft:
		tcfg.SetAlignment(layout.TextAlignLeft)
	case CfgAlignCenter:
		tcfg.SetAlignment(layout.TextAlignCenter)
	case CfgLineHeight:
		tcfg.SetLineHeight(r.u16(c.Number))
	case CfgFontSize:
		tcfg.SetFontSize(r.u16(c.Number))
	case CfgFontColor:
		tcfg.SetColor(r.color(c.Color))
	case CfgEditable:
		// Recorded only; editing is up to the engine.
		tcfg.Editable = c.Flag
	case CfgWrap:
		tcfg.SetWrap(c.Flag)
	}
}
