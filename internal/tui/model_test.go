package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/notifbadge/pkg/tuitest"
)

type countingRefresher struct {
	mu    sync.Mutex
	calls int
}

func (r *countingRefresher) Poll(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
}

type captureSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *captureSender) Send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// notificationsLine returns the plain sidebar line holding the badge.
func notificationsLine(t *testing.T, m Model) string {
	t.Helper()
	for _, line := range tuitest.Lines(m.renderSidebar()) {
		if strings.Contains(line, "Notifications") {
			return line
		}
	}
	t.Fatal("no Notifications line in sidebar")
	return ""
}

func TestModel_BadgeHiddenInitially(t *testing.T) {
	m := New(Deps{})

	out := tuitest.StripANSI(m.render())
	assert.Contains(t, out, "Notifications")
	assert.Contains(t, out, "waiting for first response")

	visible, _ := m.BadgeState()
	assert.False(t, visible)
}

func TestModel_BadgeMsgRendersCount(t *testing.T) {
	m := New(Deps{})
	m.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local) }

	m, _ = update(t, m, BadgeMsg{Visible: true, Text: "99+"})

	visible, text := m.BadgeState()
	assert.True(t, visible)
	assert.Equal(t, "99+", text)

	assert.Contains(t, notificationsLine(t, m), "99+")
	assert.Contains(t, tuitest.StripANSI(m.render()), "updated 09:30:00")
}

func TestModel_BadgeMsgHides(t *testing.T) {
	m := New(Deps{})
	m, _ = update(t, m, BadgeMsg{Visible: true, Text: "4"})
	m, _ = update(t, m, BadgeMsg{Visible: false})

	visible, _ := m.BadgeState()
	assert.False(t, visible)
	assert.NotContains(t, notificationsLine(t, m), "4")
}

func TestModel_StatusLine(t *testing.T) {
	m := New(Deps{
		Endpoint:  "http://localhost:5000/api/notifications",
		Interval:  10 * time.Second,
		BuildInfo: BuildInfo{Version: "v1.2.0", Commit: "abc1234"},
	})

	out := tuitest.StripANSI(m.render())
	assert.Contains(t, out, "polling http://localhost:5000/api/notifications")
	assert.Contains(t, out, "every 10s")
	assert.Contains(t, out, "version v1.2.0 (abc1234)")
}

func TestModel_RefreshKeyPolls(t *testing.T) {
	r := &countingRefresher{}
	m := New(Deps{Refresher: r})

	m, cmd := update(t, m, tuitest.KeyPress('r'))
	require.NotNil(t, cmd)
	assert.Contains(t, tuitest.StripANSI(m.render()), "refreshing")

	// A second press while a refresh is running is ignored.
	m, again := update(t, m, tuitest.KeyPress('r'))
	assert.Nil(t, again)

	msg := cmd()
	assert.IsType(t, refreshDoneMsg{}, msg)
	assert.Equal(t, 1, r.calls)

	m, _ = update(t, m, msg)
	assert.NotContains(t, tuitest.StripANSI(m.render()), "refreshing")
}

func TestModel_RefreshWithoutRefresher(t *testing.T) {
	m := New(Deps{})
	_, cmd := update(t, m, tuitest.KeyPress('r'))
	assert.Nil(t, cmd)
}

func TestModel_Navigation(t *testing.T) {
	m := New(Deps{})

	m, _ = update(t, m, tuitest.KeyPress('j'))
	m, _ = update(t, m, tuitest.KeyPress('j'))
	m, _ = update(t, m, tuitest.KeyPress('j'))
	assert.Equal(t, 2, m.cursor)

	m, _ = update(t, m, tuitest.KeyPress('k'))
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, tuitest.StripANSI(m.render()), "> ")
}

func TestModel_Quit(t *testing.T) {
	m := New(Deps{})
	_, cmd := update(t, m, tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := New(Deps{})
	m, _ = update(t, m, tuitest.WindowSize(120, 40))
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestBadge_ForwardsAfterAttach(t *testing.T) {
	b := NewBadge()
	s := &captureSender{}

	b.Show("1")
	b.Attach(s)
	b.Show("2")
	b.Hide()

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.msgs, 2)
	assert.Equal(t, BadgeMsg{Visible: true, Text: "2"}, s.msgs[0])
	assert.Equal(t, BadgeMsg{Visible: false}, s.msgs[1])
}
