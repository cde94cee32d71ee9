// Package tui implements the Bubble Tea sidebar that hosts the notification
// badge.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/notifbadge/internal/core/styles"
)

const refreshTimeout = 10 * time.Second

// Refresher runs a single poll cycle on demand.
type Refresher interface {
	Poll(ctx context.Context)
}

// Deps holds the collaborators of the model.
type Deps struct {
	Refresher Refresher
	Endpoint  string
	Interval  time.Duration
	BuildInfo BuildInfo
}

type navItem struct {
	icon  string
	label string
	badge bool // item carries the notification badge
}

var defaultNav = []navItem{
	{icon: styles.IconDashboard, label: "Dashboard"},
	{icon: styles.IconInbox, label: "Requests"},
	{icon: styles.IconBell, label: "Notifications", badge: true},
}

type refreshDoneMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	deps   Deps
	keys   keyMap
	nav    []navItem
	cursor int

	badgeVisible bool
	badgeText    string
	lastUpdate   time.Time
	refreshing   bool

	width  int
	height int
	now    func() time.Time
}

// New creates the root model.
func New(deps Deps) Model {
	return Model{
		deps: deps,
		keys: defaultKeyMap(),
		nav:  defaultNav,
		now:  time.Now,
	}
}

// Init implements tea.Model. Polling is driven from outside the program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case BadgeMsg:
		m.badgeVisible = msg.Visible
		if msg.Visible {
			m.badgeText = msg.Text
		}
		m.lastUpdate = m.now()
		return m, nil
	case refreshDoneMsg:
		m.refreshing = false
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.nav)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		if m.refreshing || m.deps.Refresher == nil {
			return m, nil
		}
		m.refreshing = true
		return m, refresh(m.deps.Refresher)
	}
	return m, nil
}

func refresh(r Refresher) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		r.Poll(ctx)
		return refreshDoneMsg{}
	}
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	sidebar := styles.SidebarStyle.Render(m.renderSidebar())
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatus(),
		styles.HelpStyle.Render(m.keys.helpLine()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(styles.SidebarTitleStyle.Render("notifbadge"))
	b.WriteString("\n")

	for i, item := range m.nav {
		label := item.icon + " " + item.label
		style := styles.SidebarItemStyle
		prefix := "  "
		if i == m.cursor {
			style = styles.SidebarSelectedStyle
			prefix = "> "
		}

		line := prefix + style.Render(label)
		if item.badge && m.badgeVisible {
			line += " " + styles.BadgeStyle.Render(m.badgeText)
		}
		b.WriteString(line)
		if i < len(m.nav)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	var parts []string
	if m.deps.Endpoint != "" {
		parts = append(parts, "polling "+m.deps.Endpoint)
	}
	if m.deps.Interval > 0 {
		parts = append(parts, "every "+m.deps.Interval.String())
	}

	switch {
	case m.refreshing:
		parts = append(parts, "refreshing…")
	case m.lastUpdate.IsZero():
		parts = append(parts, "waiting for first response")
	default:
		parts = append(parts, "updated "+m.lastUpdate.Format(time.TimeOnly))
	}

	status := styles.StatusStyle.Render(strings.Join(parts, " · "))
	if v := m.deps.BuildInfo.Version; v != "" {
		status += "\n" + styles.StatusStyle.Render(fmt.Sprintf("version %s (%s)", v, m.deps.BuildInfo.Commit))
	}
	return status
}

// BadgeState returns what the sidebar badge currently shows.
func (m Model) BadgeState() (visible bool, text string) {
	return m.badgeVisible, m.badgeText
}
