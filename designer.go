package forms

// The functions below answer the designer and serialization collaborator.
// An ambient property is "set" exactly when the control holds an explicit
// override for it; resetting clears that override.

// ShouldSerializeValue reports whether c holds an explicit value for p.
func ShouldSerializeValue(c *Control, p Property) bool {
	return c.hasOverride(p)
}

// CanResetValue reports whether ResetValue would change anything.
func CanResetValue(c *Control, p Property) bool {
	return c.hasOverride(p)
}

// ResetValue clears the explicit value of p so it is inherited again. It is
// equivalent to setting the property's inherit sentinel.
func ResetValue(c *Control, p Property) {
	if !c.hasOverride(p) {
		return
	}
	c.setAmbient(p, inheritSentinel(p))
}

func inheritSentinel(p Property) any {
	switch p {
	case PropBackColor, PropForeColor:
		return Color{}
	case PropFont:
		return Font{}
	case PropCursor:
		return Cursor{}
	case PropRightToLeft:
		return RightToLeftInherit
	case PropImeMode:
		return ImeModeInherit
	default:
		return (*BindingContext)(nil)
	}
}
