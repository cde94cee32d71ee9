package badge

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/colonyops/notifbadge/internal/core/styles"
)

// WriterElement prints a line to w each time the displayed badge changes.
// Repeated identical states are printed once.
type WriterElement struct {
	mu         sync.Mutex
	w          io.Writer
	now        func() time.Time
	last       State
	rendered   bool
	timestamps bool
}

// NewWriterElement creates a console element writing to w. When timestamps
// is true each line is prefixed with the local time.
func NewWriterElement(w io.Writer, timestamps bool) *WriterElement {
	return &WriterElement{w: w, now: time.Now, timestamps: timestamps}
}

// Show implements Element.
func (e *WriterElement) Show(text string) {
	e.render(State{Visible: true, Text: text})
}

// Hide implements Element.
func (e *WriterElement) Hide() {
	e.mu.Lock()
	text := e.last.Text
	e.mu.Unlock()
	e.render(State{Visible: false, Text: text})
}

// Current returns the last rendered state.
func (e *WriterElement) Current() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

func (e *WriterElement) render(s State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.rendered && e.last.Visible == s.Visible && (!s.Visible || e.last.Text == s.Text) {
		e.last = s
		return
	}
	e.last = s
	e.rendered = true

	var line string
	if s.Visible {
		line = styles.BadgeStyle.Render(styles.IconDot + " " + s.Text)
	} else {
		line = styles.BadgeHiddenStyle.Render(styles.IconCircle + " no pending notifications")
	}
	if e.timestamps {
		line = e.now().Format(time.TimeOnly) + " " + line
	}

	_, _ = fmt.Fprintln(e.w, line)
}
