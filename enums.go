package forms

// RightToLeft selects right-to-left text layout. It is an ambient property.
type RightToLeft int

const (
	RightToLeftNo RightToLeft = iota
	RightToLeftYes
	RightToLeftInherit
)

func (r RightToLeft) valid() bool {
	return r >= RightToLeftNo && r <= RightToLeftInherit
}

func (r RightToLeft) String() string {
	switch r {
	case RightToLeftNo:
		return "No"
	case RightToLeftYes:
		return "Yes"
	case RightToLeftInherit:
		return "Inherit"
	default:
		return "RightToLeft(invalid)"
	}
}

// ImeMode selects the input method editor state. It is an ambient property.
type ImeMode int

const (
	ImeModeInherit ImeMode = iota - 1
	ImeModeNoControl
	ImeModeOn
	ImeModeOff
	ImeModeDisable
	ImeModeHiragana
	ImeModeKatakana
	ImeModeKatakanaHalf
	ImeModeAlphaFull
	ImeModeAlpha
	ImeModeHangulFull
	ImeModeHangul
	ImeModeClose
	ImeModeOnHalf
)

func (m ImeMode) valid() bool {
	return m >= ImeModeInherit && m <= ImeModeOnHalf
}

// BackgroundImageLayout selects how a background image is placed.
type BackgroundImageLayout int

const (
	BackgroundImageLayoutNone BackgroundImageLayout = iota
	BackgroundImageLayoutTile
	BackgroundImageLayoutCenter
	BackgroundImageLayoutStretch
	BackgroundImageLayoutZoom
)

func (l BackgroundImageLayout) valid() bool {
	return l >= BackgroundImageLayoutNone && l <= BackgroundImageLayoutZoom
}

// AccessibleRole describes the user-interface role reported to
// accessibility clients.
type AccessibleRole int

const (
	AccessibleRoleDefault AccessibleRole = iota - 1
	AccessibleRoleNone
	AccessibleRoleTitleBar
	AccessibleRoleMenuBar
	AccessibleRoleScrollBar
	AccessibleRoleGrip
	AccessibleRoleSound
	AccessibleRoleCursor
	AccessibleRoleCaret
	AccessibleRoleAlert
	AccessibleRoleWindow
	AccessibleRoleClient
	AccessibleRoleMenuPopup
	AccessibleRoleMenuItem
	AccessibleRoleToolTip
	AccessibleRoleApplication
	AccessibleRoleDocument
	AccessibleRolePane
	AccessibleRoleChart
	AccessibleRoleDialog
	AccessibleRoleBorder
	AccessibleRoleGrouping
	AccessibleRoleSeparator
	AccessibleRoleToolBar
	AccessibleRoleStatusBar
	AccessibleRoleTable
	AccessibleRoleColumnHeader
	AccessibleRoleRowHeader
	AccessibleRoleColumn
	AccessibleRoleRow
	AccessibleRoleCell
	AccessibleRoleLink
	AccessibleRoleHelpBalloon
	AccessibleRoleCharacter
	AccessibleRoleList
	AccessibleRoleListItem
	AccessibleRoleOutline
	AccessibleRoleOutlineItem
	AccessibleRolePageTab
	AccessibleRolePropertyPage
	AccessibleRoleIndicator
	AccessibleRoleGraphic
	AccessibleRoleStaticText
	AccessibleRoleText
	AccessibleRolePushButton
	AccessibleRoleCheckButton
	AccessibleRoleRadioButton
	AccessibleRoleComboBox
	AccessibleRoleDropList
	AccessibleRoleProgressBar
	AccessibleRoleDial
	AccessibleRoleHotkeyField
	AccessibleRoleSlider
	AccessibleRoleSpinButton
	AccessibleRoleDiagram
	AccessibleRoleAnimation
	AccessibleRoleEquation
	AccessibleRoleButtonDropDown
	AccessibleRoleButtonMenu
	AccessibleRoleButtonDropDownGrid
	AccessibleRoleWhiteSpace
	AccessibleRolePageTabList
	AccessibleRoleClock
	AccessibleRoleSplitButton
	AccessibleRoleIPAddress
	AccessibleRoleOutlineButton
)

func (r AccessibleRole) valid() bool {
	return r >= AccessibleRoleDefault && r <= AccessibleRoleOutlineButton
}

// HandleState tracks whether the native resource behind a control exists.
type HandleState int

const (
	HandleStateNotCreated HandleState = iota
	HandleStateCreated
)

func (s HandleState) String() string {
	if s == HandleStateCreated {
		return "Created"
	}
	return "NotCreated"
}
