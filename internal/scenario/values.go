package scenario

import (
	"fmt"
	"strconv"
	"strings"

	forms "github.com/grindlemire/go-forms"
)

// setProperty parses value for the named property and applies it to c.
// Parse failures wrap ErrInvalidScenario; rejections by the control are
// returned as they are.
func setProperty(c *forms.Control, property, value string) error {
	switch property {
	case "Bounds":
		n, err := ints(value, 4)
		if err != nil {
			return err
		}
		c.SetBounds(n[0], n[1], n[2], n[3])
	case "Location":
		n, err := ints(value, 2)
		if err != nil {
			return err
		}
		c.SetLocation(n[0], n[1])
	case "Size", "ClientSize", "MinimumSize", "MaximumSize":
		n, err := ints(value, 2)
		if err != nil {
			return err
		}
		setSize(c, property, forms.NewSize(n[0], n[1]))
	case "Left", "Top", "Width", "Height":
		n, err := ints(value, 1)
		if err != nil {
			return err
		}
		setAxis(c, property, n[0])
	case "Padding", "Margin":
		p, err := edges(value)
		if err != nil {
			return err
		}
		if property == "Padding" {
			c.SetPadding(p)
		} else {
			c.SetMargin(p)
		}
	case "Dock":
		d, err := parseDock(value)
		if err != nil {
			return err
		}
		return c.SetDock(d)
	case "Anchor":
		a, err := parseAnchor(value)
		if err != nil {
			return err
		}
		c.SetAnchor(a)
	case "Text":
		c.SetText(value)
	case "Visible", "DoubleBuffered":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid("%s: %v", property, err)
		}
		if property == "Visible" {
			c.SetVisible(b)
		} else {
			c.SetDoubleBuffered(b)
		}
	case "BackColor", "ForeColor":
		col, err := forms.ParseColor(value)
		if err != nil {
			return invalid("%s: %v", property, err)
		}
		if property == "BackColor" {
			c.SetBackColor(col)
		} else {
			c.SetForeColor(col)
		}
	case "Font":
		f, err := parseFont(value)
		if err != nil {
			return err
		}
		c.SetFont(f)
	case "Cursor":
		if value == "" {
			c.SetCursor(forms.Cursor{})
			return nil
		}
		cur, ok := forms.CursorByName(value)
		if !ok {
			return invalid("unknown cursor %q", value)
		}
		c.SetCursor(cur)
	case "RightToLeft":
		n, err := enumValue(value, map[string]int{
			"no": int(forms.RightToLeftNo), "yes": int(forms.RightToLeftYes), "inherit": int(forms.RightToLeftInherit),
		})
		if err != nil {
			return err
		}
		return c.SetRightToLeft(forms.RightToLeft(n))
	case "ImeMode":
		n, err := enumValue(value, map[string]int{
			"inherit": int(forms.ImeModeInherit), "nocontrol": int(forms.ImeModeNoControl),
			"on": int(forms.ImeModeOn), "off": int(forms.ImeModeOff), "disable": int(forms.ImeModeDisable),
		})
		if err != nil {
			return err
		}
		return c.SetImeMode(forms.ImeMode(n))
	case "BackgroundImageLayout":
		n, err := enumValue(value, map[string]int{
			"none": int(forms.BackgroundImageLayoutNone), "tile": int(forms.BackgroundImageLayoutTile),
			"center": int(forms.BackgroundImageLayoutCenter), "stretch": int(forms.BackgroundImageLayoutStretch),
			"zoom": int(forms.BackgroundImageLayoutZoom),
		})
		if err != nil {
			return err
		}
		return c.SetBackgroundImageLayout(forms.BackgroundImageLayout(n))
	case "AccessibleRole":
		n, err := enumValue(value, map[string]int{"default": int(forms.AccessibleRoleDefault)})
		if err != nil {
			return err
		}
		return c.SetAccessibleRole(forms.AccessibleRole(n))
	case "BindingContext":
		switch value {
		case "", "inherit":
			c.SetBindingContext(nil)
		case "new":
			c.SetBindingContext(forms.NewBindingContext())
		default:
			return invalid("BindingContext must be \"new\" or \"inherit\", got %q", value)
		}
	default:
		return invalid("unknown property %q", property)
	}
	return nil
}

func setSize(c *forms.Control, property string, s forms.Size) {
	switch property {
	case "Size":
		c.SetSize(s.Width, s.Height)
	case "ClientSize":
		c.SetClientSize(s.Width, s.Height)
	case "MinimumSize":
		c.SetMinimumSize(s)
	case "MaximumSize":
		c.SetMaximumSize(s)
	}
}

func setAxis(c *forms.Control, property string, n int) {
	switch property {
	case "Left":
		c.SetLeft(n)
	case "Top":
		c.SetTop(n)
	case "Width":
		c.SetWidth(n)
	case "Height":
		c.SetHeight(n)
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}

// ints parses exactly n comma separated integers.
func ints(value string, n int) ([]int, error) {
	parts := strings.Split(value, ",")
	if len(parts) != n {
		return nil, invalid("expected %d comma separated integers, got %q", n, value)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, invalid("%q: %v", value, err)
		}
		out[i] = v
	}
	return out, nil
}

// edges parses "n" for a uniform value or "l,t,r,b".
func edges(value string) (forms.Padding, error) {
	if !strings.Contains(value, ",") {
		n, err := ints(value, 1)
		if err != nil {
			return forms.Padding{}, err
		}
		return forms.PaddingAll(n[0]), nil
	}
	n, err := ints(value, 4)
	if err != nil {
		return forms.Padding{}, err
	}
	return forms.PaddingLTRB(n[0], n[1], n[2], n[3]), nil
}

// enumValue maps a case-insensitive name from names, or any integer, to an
// enum value. Integers are passed through unchecked so the control can
// reject them.
func enumValue(value string, names map[string]int) (int, error) {
	if n, ok := names[strings.ToLower(strings.TrimSpace(value))]; ok {
		return n, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalid("unknown value %q", value)
	}
	return n, nil
}

func parseDock(value string) (forms.DockStyle, error) {
	names := make(map[string]int)
	for d := forms.DockNone; d <= forms.DockFill; d++ {
		names[strings.ToLower(d.String())] = int(d)
	}
	n, err := enumValue(value, names)
	return forms.DockStyle(n), err
}

// parseAnchor parses edge names joined by "|", or an integer.
func parseAnchor(value string) (forms.AnchorStyles, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return forms.AnchorStyles(n), nil
	}
	var a forms.AnchorStyles
	for _, part := range strings.Split(value, "|") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "none":
		case "top":
			a |= forms.AnchorTop
		case "bottom":
			a |= forms.AnchorBottom
		case "left":
			a |= forms.AnchorLeft
		case "right":
			a |= forms.AnchorRight
		case "all":
			a |= forms.AnchorAll
		default:
			return 0, invalid("unknown anchor edge %q", part)
		}
	}
	return a, nil
}

// parseFont parses "Family, size" with optional trailing style words
// ("bold", "italic", "underline", "strikeout"). The empty string clears the
// font.
func parseFont(value string) (forms.Font, error) {
	if strings.TrimSpace(value) == "" {
		return forms.Font{}, nil
	}
	parts := strings.Split(value, ",")
	if len(parts) < 2 {
		return forms.Font{}, invalid("font %q: expected \"Family, size\"", value)
	}
	size, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return forms.Font{}, invalid("font %q: %v", value, err)
	}
	f := forms.NewFont(strings.TrimSpace(parts[0]), float32(size))
	for _, w := range parts[2:] {
		switch strings.ToLower(strings.TrimSpace(w)) {
		case "bold":
			f.Style |= forms.FontBold
		case "italic":
			f.Style |= forms.FontItalic
		case "underline":
			f.Style |= forms.FontUnderline
		case "strikeout":
			f.Style |= forms.FontStrikeout
		default:
			return forms.Font{}, invalid("font %q: unknown style %q", value, w)
		}
	}
	return f, nil
}
