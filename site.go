package forms

// AmbientProperties is the bag of ambient values a Site offers its control.
// Empty or zero entries are not supplied.
type AmbientProperties struct {
	BackColor Color
	ForeColor Color
	Font      Font
	Cursor    Cursor
}

// Site connects a control to its hosting container, typically a designer.
type Site interface {
	Name() string
	DesignMode() bool
	// AmbientProperties returns the ambient bag, or nil when the host offers none.
	AmbientProperties() *AmbientProperties
}

// BasicSite is a Site backed by fixed values.
type BasicSite struct {
	SiteName   string
	Design     bool
	Properties *AmbientProperties
}

var _ Site = (*BasicSite)(nil)

func (s *BasicSite) Name() string                          { return s.SiteName }
func (s *BasicSite) DesignMode() bool                      { return s.Design }
func (s *BasicSite) AmbientProperties() *AmbientProperties { return s.Properties }

// Site returns the control's site, or nil.
func (c *Control) Site() Site {
	return c.site
}

// SetSite assigns a new site and immediately re-resolves BackColor,
// ForeColor, Cursor and Font against its ambient bag. Explicit values on the
// control are kept.
func (c *Control) SetSite(s Site) {
	snaps := c.snapshotAll(siteProperties)
	c.site = s
	propagateAll(siteProperties, snaps)
}

// DesignMode reports whether the control's site is in design mode.
func (c *Control) DesignMode() bool {
	return c.site != nil && c.site.DesignMode()
}
