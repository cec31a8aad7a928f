package forms

// DefaultBackColor returns the process-wide default background color, used
// when neither an explicit value, a site, nor an ancestor supplies one.
func DefaultBackColor() Color {
	return RGB(240, 240, 240)
}

// DefaultForeColor returns the process-wide default foreground color.
func DefaultForeColor() Color {
	return RGB(0, 0, 0)
}

// DefaultFont returns the process-wide default font.
func DefaultFont() Font {
	return Font{Family: "Microsoft Sans Serif", Size: 8.25}
}

// DefaultCursor returns the process-wide default cursor.
func DefaultCursor() Cursor {
	return Cursor{name: "Default"}
}

const (
	defaultRightToLeft = RightToLeftNo
	defaultImeMode     = ImeModeNoControl
)

// Variant is the static configuration record of a concrete kind of control.
// Zero-valued color, font and cursor fields fall back to the process-wide
// defaults.
//
// The default color, font and cursor only take effect while the control is
// the root of its tree. A parented control inherits those properties from
// its parent instead, so a TextBox inside a Form shows the Form's colors
// unless they are set explicitly.
type Variant struct {
	Name string

	DefaultSize        Size
	DefaultMargin      Padding
	DefaultPadding     Padding
	DefaultMinimumSize Size
	DefaultMaximumSize Size

	// BorderDelta is the difference between the outer size and the client size.
	BorderDelta Size

	Styles   ControlStyles
	TopLevel bool

	DefaultBackColor Color
	DefaultForeColor Color
	DefaultFont      Font
	DefaultCursor    Cursor
}

func (v *Variant) backColor() Color {
	if v.DefaultBackColor.IsEmpty() {
		return DefaultBackColor()
	}
	return v.DefaultBackColor
}

func (v *Variant) foreColor() Color {
	if v.DefaultForeColor.IsEmpty() {
		return DefaultForeColor()
	}
	return v.DefaultForeColor
}

func (v *Variant) font() Font {
	if v.DefaultFont.IsZero() {
		return DefaultFont()
	}
	return v.DefaultFont
}

func (v *Variant) cursor() Cursor {
	if v.DefaultCursor.IsZero() {
		return DefaultCursor()
	}
	return v.DefaultCursor
}

const baseStyles = StyleUserPaint | StyleStandardClick | StyleSelectable |
	StyleStandardDoubleClick | StyleAllPaintingInWmPaint | StyleUseTextForAccessibility

// Built-in variants.
var (
	ControlVariant = Variant{
		Name:          "Control",
		DefaultMargin: PaddingAll(3),
		Styles:        baseStyles,
	}

	PanelVariant = Variant{
		Name:          "Panel",
		DefaultSize:   NewSize(200, 100),
		DefaultMargin: PaddingAll(3),
		Styles:        baseStyles | StyleSupportsTransparentBackColor | StyleContainerControl,
	}

	ButtonVariant = Variant{
		Name:          "Button",
		DefaultSize:   NewSize(75, 23),
		DefaultMargin: PaddingAll(3),
		Styles:        baseStyles | StyleSupportsTransparentBackColor | StyleOptimizedDoubleBuffer | StyleResizeRedraw,
	}

	LabelVariant = Variant{
		Name:          "Label",
		DefaultSize:   NewSize(100, 23),
		DefaultMargin: PaddingLTRB(3, 0, 3, 0),
		Styles:        baseStyles | StyleSupportsTransparentBackColor | StyleOptimizedDoubleBuffer | StyleResizeRedraw,
	}

	TextBoxVariant = Variant{
		Name:             "TextBox",
		DefaultSize:      NewSize(100, 23),
		DefaultMargin:    PaddingAll(3),
		BorderDelta:      NewSize(4, 4),
		Styles:           baseStyles &^ StyleUserPaint,
		DefaultBackColor: WindowColor,
		DefaultForeColor: WindowTextColor,
		DefaultCursor:    CursorIBeam,
	}

	FormVariant = Variant{
		Name:        "Form",
		DefaultSize: NewSize(300, 300),
		BorderDelta: NewSize(16, 39),
		Styles:      baseStyles | StyleContainerControl,
		TopLevel:    true,
	}
)

// BuiltinVariants returns the built-in variants keyed by name.
func BuiltinVariants() map[string]Variant {
	return map[string]Variant{
		ControlVariant.Name: ControlVariant,
		PanelVariant.Name:   PanelVariant,
		ButtonVariant.Name:  ButtonVariant,
		LabelVariant.Name:   LabelVariant,
		TextBoxVariant.Name: TextBoxVariant,
		FormVariant.Name:    FormVariant,
	}
}
