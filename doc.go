// Package forms provides the control-hierarchy engine of a retained-mode
// widget toolkit.
//
// A [Control] owns an ordered list of children and resolves three concerns
// that interact on every mutation:
//
//   - geometry: bounds and client size under minimum/maximum, dock and
//     anchor constraints, with containers re-arranging docked and anchored
//     children during a layout pass;
//   - change notification: a fixed, ordered cascade of events per property,
//     never raised when the resolved value is unchanged;
//   - ambient properties: BackColor, ForeColor, Font, Cursor, RightToLeft,
//     ImeMode and BindingContext are either set explicitly or inherited from
//     the site, the parent chain, or a process-wide default.
//
// The engine is single-threaded and synchronous. Native handles and painting
// are delegated to a [HandleProvider].
package forms
