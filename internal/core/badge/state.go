// Package badge derives the pending-notification badge from a count and
// applies it to whatever element displays it.
package badge

import "strconv"

// SidebarID identifies the badge next to the notifications entry in the
// sidebar.
const SidebarID = "sidebar-notif-badge"

const (
	// MaxCount is the largest count shown verbatim.
	MaxCount = 99
	// OverflowText is shown for any count above MaxCount.
	OverflowText = "99+"
)

// State is the badge derived from one poll. It is recomputed every poll and
// never stored by the poller.
type State struct {
	Visible bool
	Text    string
}

// StateFor derives the badge state for n pending notifications.
func StateFor(n int) State {
	switch {
	case n <= 0:
		return State{}
	case n > MaxCount:
		return State{Visible: true, Text: OverflowText}
	default:
		return State{Visible: true, Text: strconv.Itoa(n)}
	}
}

// Apply renders s onto ref. Nothing happens when ref is empty.
func Apply(ref Ref, s State) {
	if s.Visible {
		ref.Show(s.Text)
		return
	}
	ref.Hide()
}
