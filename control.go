package forms

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grindlemire/go-forms/internal/debug"
	"github.com/grindlemire/go-forms/internal/geometry"
)

// Control is a node of the control tree.
// It owns its children directly and holds a back-reference to its parent.
type Control struct {
	ControlEvents

	id      uuid.UUID
	name    string
	variant Variant
	text    string
	visible bool

	// Tree structure
	parent   *Control
	children []*Control
	topLevel bool
	site     Site

	// Geometry
	bounds      Rect
	clientSize  Size
	minimumSize Size
	maximumSize Size
	margin      Padding
	padding     Padding
	dock        DockStyle
	anchor      AnchorStyles
	anchorInfo  geometry.AnchorInfo
	anchored    bool // anchorInfo holds a snapshot

	styles                ControlStyles
	accessibleRole        AccessibleRole
	backgroundImageLayout BackgroundImageLayout

	// Explicit ambient overrides; a missing key means the value is inherited.
	overrides map[Property]any
	// Snapshots of in-flight propagations that include this control.
	pending map[Property][]*ambientSnapshot

	// Handle lifecycle
	handle      Handle
	handleState HandleState
	provider    HandleProvider

	// Layout state
	layoutSuspend int
	layoutPending bool
	layoutDepth   int

	disposing bool
	disposed  bool

	log *zap.Logger
}

// Option configures a Control.
type Option func(*Control)

// WithName sets the control name.
func WithName(name string) Option {
	return func(c *Control) {
		c.name = name
	}
}

// WithText sets the initial text.
func WithText(text string) Option {
	return func(c *Control) {
		c.text = text
	}
}

// WithBounds sets the initial bounds, constrained by the variant's limits.
func WithBounds(x, y, width, height int) Option {
	return func(c *Control) {
		c.bounds = geometry.Resolve(NewRect(x, y, width, height), c.constraints())
		c.clientSize = geometry.ClientSize(c.bounds.Size(), c.variant.BorderDelta)
	}
}

// WithHandleProvider sets the collaborator that creates native handles for
// the control. Controls without one use their parent's, then the default.
func WithHandleProvider(p HandleProvider) Option {
	return func(c *Control) {
		c.provider = p
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Control) {
		c.log = l
	}
}

// New creates a Control of the given variant.
func New(v Variant, opts ...Option) *Control {
	c := &Control{
		id:                    uuid.New(),
		variant:               v,
		visible:               true,
		topLevel:              v.TopLevel,
		minimumSize:           v.DefaultMinimumSize.NonNegative(),
		maximumSize:           v.DefaultMaximumSize.NonNegative(),
		margin:                v.DefaultMargin.Normalize(),
		padding:               v.DefaultPadding.Normalize(),
		anchor:                AnchorTop | AnchorLeft,
		styles:                v.Styles,
		accessibleRole:        AccessibleRoleDefault,
		backgroundImageLayout: BackgroundImageLayoutTile,
		overrides:             make(map[Property]any),
	}
	c.bounds = geometry.Resolve(Rect{Width: v.DefaultSize.Width, Height: v.DefaultSize.Height}, c.constraints())
	c.clientSize = geometry.ClientSize(c.bounds.Size(), v.BorderDelta)
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = debug.Logger()
	}
	c.log = c.log.With(zap.String("control", c.String()))
	return c
}

// NewControl creates a plain Control.
func NewControl(opts ...Option) *Control {
	return New(ControlVariant, opts...)
}

// ID returns the identity of the control.
func (c *Control) ID() uuid.UUID {
	return c.id
}

// Name returns the control name.
func (c *Control) Name() string {
	return c.name
}

// SetName sets the control name.
func (c *Control) SetName(name string) {
	c.name = name
}

// Variant returns the variant the control was created from.
func (c *Control) Variant() Variant {
	return c.variant
}

func (c *Control) String() string {
	if c.name != "" {
		return c.variant.Name + "/" + c.name
	}
	return c.variant.Name + "/" + c.id.String()[:8]
}

// Text returns the text content.
func (c *Control) Text() string {
	return c.text
}

// SetText updates the text content and raises TextChanged when it differs.
func (c *Control) SetText(text string) {
	if c.text == text {
		return
	}
	c.text = text
	raise(c, &c.TextChanged, EventArgs{})
}

// Visible reports whether the control takes part in layout and painting.
func (c *Control) Visible() bool {
	return c.visible
}

// SetVisible shows or hides the control. The container re-arranges its
// children when visibility changes.
func (c *Control) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	if visible {
		c.captureAnchor()
	}
	c.notifyLayoutChanged("Visible", &c.VisibleChanged)
}

// AccessibleRole returns the role reported to accessibility clients.
func (c *Control) AccessibleRole() AccessibleRole {
	return c.accessibleRole
}

// SetAccessibleRole sets the accessible role.
func (c *Control) SetAccessibleRole(role AccessibleRole) error {
	if !role.valid() {
		return invalidEnum(int(role), "AccessibleRole")
	}
	c.accessibleRole = role
	return nil
}

// BackgroundImageLayout returns how the background image is placed.
func (c *Control) BackgroundImageLayout() BackgroundImageLayout {
	return c.backgroundImageLayout
}

// SetBackgroundImageLayout sets the background image layout and raises
// BackgroundImageLayoutChanged when it differs.
func (c *Control) SetBackgroundImageLayout(layout BackgroundImageLayout) error {
	if !layout.valid() {
		return invalidEnum(int(layout), "BackgroundImageLayout")
	}
	if c.backgroundImageLayout == layout {
		return nil
	}
	c.backgroundImageLayout = layout
	raise(c, &c.BackgroundImageLayoutChanged, EventArgs{})
	return nil
}
