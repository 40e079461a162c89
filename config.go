package bind

import (
	"fmt"

	"github.com/gogpu/bind/layout"
)

// ConfigKind identifies a configuration directive. Each kind maps to one
// mutation of the open ElementConfig or TextConfig.
type ConfigKind uint8

const (
	CfgID ConfigKind = iota

	// Sizing
	CfgGrowAll
	CfgGrowX
	CfgGrowXMin
	CfgGrowXMax
	CfgGrowXMinMax
	CfgGrowY
	CfgGrowYMin
	CfgGrowYMax
	CfgGrowYMinMax
	CfgFitX
	CfgFitXMin
	CfgFitXMax
	CfgFitXMinMax
	CfgFitY
	CfgFitYMin
	CfgFitYMax
	CfgFitYMinMax
	CfgFixedX
	CfgFixedY
	CfgPercentX
	CfgPercentY

	// Spacing and flow
	CfgPaddingAll
	CfgPaddingTop
	CfgPaddingBottom
	CfgPaddingLeft
	CfgPaddingRight
	CfgChildGap
	CfgVertical
	CfgChildAlignmentXLeft
	CfgChildAlignmentXRight
	CfgChildAlignmentXCenter
	CfgChildAlignmentYTop
	CfgChildAlignmentYCenter
	CfgChildAlignmentYBottom

	// Decoration
	CfgColor
	CfgRadiusAll
	CfgRadiusTopLeft
	CfgRadiusTopRight
	CfgRadiusBottomRight
	CfgRadiusBottomLeft
	CfgBorderColor
	CfgBorderAll
	CfgBorderTop
	CfgBorderLeft
	CfgBorderBottom
	CfgBorderRight
	CfgBorderBetweenChildren
	CfgClip
	CfgImage

	// Floating
	CfgFloating
	CfgFloatingOffset
	CfgFloatingDimensions
	CfgFloatingZIndex
	CfgAttachToParentAtTopLeft
	CfgAttachToParentAtCenterLeft
	CfgAttachToParentAtBottomLeft
	CfgAttachToParentAtTopCenter
	CfgAttachToParentAtCenter
	CfgAttachToParentAtBottomCenter
	CfgAttachToParentAtTopRight
	CfgAttachToParentAtCenterRight
	CfgAttachToParentAtBottomRight
	CfgAttachElementAtTopLeft
	CfgAttachElementAtCenterLeft
	CfgAttachElementAtBottomLeft
	CfgAttachElementAtTopCenter
	CfgAttachElementAtCenter
	CfgAttachElementAtBottomCenter
	CfgAttachElementAtTopRight
	CfgAttachElementAtCenterRight
	CfgAttachElementAtBottomRight
	CfgFloatingPointerPassThrough
	CfgFloatingAttachToElement
	CfgFloatingAttachToRoot

	// Composition
	CfgUse

	// Text
	CfgFontID
	CfgAlignRight
	CfgAlignLeft
	CfgAlignCenter
	CfgLineHeight
	CfgFontSize
	CfgFontColor
	CfgEditable
	CfgWrap

	configKindCount
)

var configKindNames = [...]string{
	CfgID:                           "Id",
	CfgGrowAll:                      "GrowAll",
	CfgGrowX:                        "GrowX",
	CfgGrowXMin:                     "GrowXMin",
	CfgGrowXMax:                     "GrowXMax",
	CfgGrowXMinMax:                  "GrowXMinMax",
	CfgGrowY:                        "GrowY",
	CfgGrowYMin:                     "GrowYMin",
	CfgGrowYMax:                     "GrowYMax",
	CfgGrowYMinMax:                  "GrowYMinMax",
	CfgFitX:                         "FitX",
	CfgFitXMin:                      "FitXMin",
	CfgFitXMax:                      "FitXMax",
	CfgFitXMinMax:                   "FitXMinMax",
	CfgFitY:                         "FitY",
	CfgFitYMin:                      "FitYMin",
	CfgFitYMax:                      "FitYMax",
	CfgFitYMinMax:                   "FitYMinMax",
	CfgFixedX:                       "FixedX",
	CfgFixedY:                       "FixedY",
	CfgPercentX:                     "PercentX",
	CfgPercentY:                     "PercentY",
	CfgPaddingAll:                   "PaddingAll",
	CfgPaddingTop:                   "PaddingTop",
	CfgPaddingBottom:                "PaddingBottom",
	CfgPaddingLeft:                  "PaddingLeft",
	CfgPaddingRight:                 "PaddingRight",
	CfgChildGap:                     "ChildGap",
	CfgVertical:                     "Vertical",
	CfgChildAlignmentXLeft:          "ChildAlignmentXLeft",
	CfgChildAlignmentXRight:         "ChildAlignmentXRight",
	CfgChildAlignmentXCenter:        "ChildAlignmentXCenter",
	CfgChildAlignmentYTop:           "ChildAlignmentYTop",
	CfgChildAlignmentYCenter:        "ChildAlignmentYCenter",
	CfgChildAlignmentYBottom:        "ChildAlignmentYBottom",
	CfgColor:                        "Color",
	CfgRadiusAll:                    "RadiusAll",
	CfgRadiusTopLeft:                "RadiusTopLeft",
	CfgRadiusTopRight:               "RadiusTopRight",
	CfgRadiusBottomRight:            "RadiusBottomRight",
	CfgRadiusBottomLeft:             "RadiusBottomLeft",
	CfgBorderColor:                  "BorderColor",
	CfgBorderAll:                    "BorderAll",
	CfgBorderTop:                    "BorderTop",
	CfgBorderLeft:                   "BorderLeft",
	CfgBorderBottom:                 "BorderBottom",
	CfgBorderRight:                  "BorderRight",
	CfgBorderBetweenChildren:        "BorderBetweenChildren",
	CfgClip:                         "Clip",
	CfgImage:                        "Image",
	CfgFloating:                     "Floating",
	CfgFloatingOffset:               "FloatingOffset",
	CfgFloatingDimensions:           "FloatingDimensions",
	CfgFloatingZIndex:               "FloatingZIndex",
	CfgAttachToParentAtTopLeft:      "AttachToParentAtTopLeft",
	CfgAttachToParentAtCenterLeft:   "AttachToParentAtCenterLeft",
	CfgAttachToParentAtBottomLeft:   "AttachToParentAtBottomLeft",
	CfgAttachToParentAtTopCenter:    "AttachToParentAtTopCenter",
	CfgAttachToParentAtCenter:       "AttachToParentAtCenter",
	CfgAttachToParentAtBottomCenter: "AttachToParentAtBottomCenter",
	CfgAttachToParentAtTopRight:     "AttachToParentAtTopRight",
	CfgAttachToParentAtCenterRight:  "AttachToParentAtCenterRight",
	CfgAttachToParentAtBottomRight:  "AttachToParentAtBottomRight",
	CfgAttachElementAtTopLeft:       "AttachElementAtTopLeft",
	CfgAttachElementAtCenterLeft:    "AttachElementAtCenterLeft",
	CfgAttachElementAtBottomLeft:    "AttachElementAtBottomLeft",
	CfgAttachElementAtTopCenter:     "AttachElementAtTopCenter",
	CfgAttachElementAtCenter:        "AttachElementAtCenter",
	CfgAttachElementAtBottomCenter:  "AttachElementAtBottomCenter",
	CfgAttachElementAtTopRight:      "AttachElementAtTopRight",
	CfgAttachElementAtCenterRight:   "AttachElementAtCenterRight",
	CfgAttachElementAtBottomRight:   "AttachElementAtBottomRight",
	CfgFloatingPointerPassThrough:   "FloatingPointerPassThrough",
	CfgFloatingAttachToElement:      "FloatingAttachToElement",
	CfgFloatingAttachToRoot:         "FloatingAttachToRoot",
	CfgUse:                          "Use",
	CfgFontID:                       "FontId",
	CfgAlignRight:                   "AlignRight",
	CfgAlignLeft:                    "AlignLeft",
	CfgAlignCenter:                  "AlignCenter",
	CfgLineHeight:                   "LineHeight",
	CfgFontSize:                     "FontSize",
	CfgFontColor:                    "FontColor",
	CfgEditable:                     "Editable",
	CfgWrap:                         "Wrap",
}

// String returns the string representation of a ConfigKind.
func (k ConfigKind) String() string {
	if int(k) < len(configKindNames) {
		return configKindNames[k]
	}
	return "Unknown"
}

// ConfigKindByName returns the ConfigKind whose String is name.
func ConfigKindByName(name string) (ConfigKind, bool) {
	for k, n := range configKindNames {
		if n == name {
			return ConfigKind(k), true
		}
	}
	return 0, false
}

// Operand describes which operands a ConfigKind takes.
type Operand uint8

const (
	OperandNone   Operand = iota
	OperandNumber         // Number
	OperandPair           // Number, Number2
	OperandColor          // Color
	OperandText           // Text
	OperandName           // Name
	OperandClip           // Vertical, Horizontal
	OperandFlag           // Flag
)

// Operand returns the operand shape of k.
func (k ConfigKind) Operand() Operand {
	switch k {
	case CfgID:
		return OperandText
	case CfgGrowXMin, CfgGrowXMax, CfgGrowYMin, CfgGrowYMax,
		CfgFitXMin, CfgFitXMax, CfgFitYMin, CfgFitYMax,
		CfgFixedX, CfgFixedY, CfgPercentX, CfgPercentY,
		CfgPaddingAll, CfgPaddingTop, CfgPaddingBottom, CfgPaddingLeft, CfgPaddingRight,
		CfgChildGap,
		CfgRadiusAll, CfgRadiusTopLeft, CfgRadiusTopRight, CfgRadiusBottomRight, CfgRadiusBottomLeft,
		CfgBorderAll, CfgBorderTop, CfgBorderLeft, CfgBorderBottom, CfgBorderRight, CfgBorderBetweenChildren,
		CfgFloatingZIndex, CfgFontID, CfgLineHeight, CfgFontSize:
		return OperandNumber
	case CfgGrowXMinMax, CfgGrowYMinMax, CfgFitXMinMax, CfgFitYMinMax,
		CfgFloatingOffset, CfgFloatingDimensions:
		return OperandPair
	case CfgColor, CfgBorderColor, CfgFontColor:
		return OperandColor
	case CfgImage, CfgFloatingAttachToElement, CfgUse:
		return OperandName
	case CfgClip:
		return OperandClip
	case CfgEditable, CfgWrap:
		return OperandFlag
	}
	return OperandNone
}

// Config is one configuration directive. Only the operands named by
// Kind.Operand are meaningful.
type Config struct {
	Kind ConfigKind

	Number  DataSrc[float64]
	Number2 DataSrc[float64]
	Color   DataSrc[layout.Color]
	Text    DataSrc[string]
	Name    string

	Vertical   DataSrc[bool]
	Horizontal DataSrc[bool]

	Flag bool
}

// Directive returns an operand-less directive.
func Directive(k ConfigKind) Config {
	return Config{Kind: k}
}

// NumberDirective returns a directive taking one number.
func NumberDirective(k ConfigKind, n DataSrc[float64]) Config {
	return Config{Kind: k, Number: n}
}

// PairDirective returns a directive taking two numbers (min and max, x and
// y, or width and height).
func PairDirective(k ConfigKind, a, b DataSrc[float64]) Config {
	return Config{Kind: k, Number: a, Number2: b}
}

// ColorDirective returns a directive taking a color.
func ColorDirective(k ConfigKind, c DataSrc[layout.Color]) Config {
	return Config{Kind: k, Color: c}
}

// IDDirective returns an Id directive.
func IDDirective(id DataSrc[string]) Config {
	return Config{Kind: CfgID, Text: id}
}

// NameDirective returns a directive naming an image, element or fragment.
func NameDirective(k ConfigKind, name string) Config {
	return Config{Kind: k, Name: name}
}

// ClipDirective returns a Clip directive.
func ClipDirective(vertical, horizontal DataSrc[bool]) Config {
	return Config{Kind: CfgClip, Vertical: vertical, Horizontal: horizontal}
}

// FlagDirective returns a directive taking a literal flag.
func FlagDirective(k ConfigKind, on bool) Config {
	return Config{Kind: k, Flag: on}
}

func (c Config) String() string {
	switch c.Kind.Operand() {
	case OperandNumber:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Number)
	case OperandPair:
		return fmt.Sprintf("%s(%s, %s)", c.Kind, c.Number, c.Number2)
	case OperandColor:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Color)
	case OperandText:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Text)
	case OperandName:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Name)
	case OperandClip:
		return fmt.Sprintf("%s(vertical=%s, horizontal=%s)", c.Kind, c.Vertical, c.Horizontal)
	case OperandFlag:
		return fmt.Sprintf("%s(%t)", c.Kind, c.Flag)
	}
	return c.Kind.String()
}
