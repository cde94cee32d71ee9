package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"
)

// BadgeMsg carries a badge update from a poll cycle into the program.
type BadgeMsg struct {
	Visible bool
	Text    string
}

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Badge is the sidebar badge element. Poll cycles call Show and Hide from
// their own goroutines; the update is applied on the program's event loop.
type Badge struct {
	mu     sync.RWMutex
	sender Sender
}

// NewBadge creates a badge that is not yet attached to a program.
func NewBadge() *Badge {
	return &Badge{}
}

// Attach connects the badge to a program. Updates before Attach are dropped.
func (b *Badge) Attach(s Sender) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sender = s
}

// Show implements badge.Element.
func (b *Badge) Show(text string) {
	b.send(BadgeMsg{Visible: true, Text: text})
}

// Hide implements badge.Element.
func (b *Badge) Hide() {
	b.send(BadgeMsg{Visible: false})
}

func (b *Badge) send(msg BadgeMsg) {
	b.mu.RLock()
	s := b.sender
	b.mu.RUnlock()

	if s == nil {
		return
	}
	s.Send(msg)
}
