// Package clipboard copies identifiers to the system clipboard.
//
// When the clipboard is unavailable the text is printed instead, so the
// user can always copy it by hand.
package clipboard
