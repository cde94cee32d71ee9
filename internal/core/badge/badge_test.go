package badge

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/notifbadge/pkg/tuitest"
)

// recorder is an in-memory Element that keeps the last shown state.
type recorder struct {
	mu      sync.Mutex
	visible bool
	text    string
	calls   int
}

func (r *recorder) Show(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = true
	r.text = text
	r.calls++
}

func (r *recorder) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = false
	r.calls++
}

func TestStateFor(t *testing.T) {
	tests := []struct {
		n    int
		want State
	}{
		{n: -1, want: State{}},
		{n: 0, want: State{}},
		{n: 1, want: State{Visible: true, Text: "1"}},
		{n: 42, want: State{Visible: true, Text: "42"}},
		{n: 99, want: State{Visible: true, Text: "99"}},
		{n: 100, want: State{Visible: true, Text: "99+"}},
		{n: 150, want: State{Visible: true, Text: "99+"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StateFor(tt.n), "n=%d", tt.n)
	}
}

func TestApply(t *testing.T) {
	rec := &recorder{}
	ref := RefTo(rec)

	Apply(ref, StateFor(3))
	assert.True(t, rec.visible)
	assert.Equal(t, "3", rec.text)

	Apply(ref, StateFor(0))
	assert.False(t, rec.visible)
	assert.Equal(t, "3", rec.text, "hiding keeps the previous text")
}

func TestApply_EmptyRefIsNoop(t *testing.T) {
	var ref Ref
	assert.False(t, ref.Present())

	assert.NotPanics(t, func() {
		Apply(ref, StateFor(5))
		Apply(ref, StateFor(0))
	})
}

func TestDocument_Lookup(t *testing.T) {
	doc := NewDocument()
	rec := &recorder{}
	doc.Register(SidebarID, rec)

	ref := doc.Lookup(SidebarID)
	require.True(t, ref.Present())
	ref.Show("7")
	assert.Equal(t, "7", rec.text)

	assert.False(t, doc.Lookup("missing").Present())
	assert.Equal(t, []string{SidebarID}, doc.IDs())

	doc.Remove(SidebarID)
	assert.False(t, doc.Lookup(SidebarID).Present())
}

func TestDocument_RegisterNilIgnored(t *testing.T) {
	doc := NewDocument()
	doc.Register(SidebarID, nil)
	assert.False(t, doc.Lookup(SidebarID).Present())
}

func TestDocument_NilLookup(t *testing.T) {
	var doc *Document
	assert.False(t, doc.Lookup(SidebarID).Present())
}

func TestWriterElement_PrintsChanges(t *testing.T) {
	var buf bytes.Buffer
	el := NewWriterElement(&buf, false)

	el.Show("3")
	el.Show("3")
	el.Show("99+")
	el.Hide()
	el.Hide()

	lines := tuitest.Lines(buf.String())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "3")
	assert.Contains(t, lines[1], "99+")
	assert.Contains(t, lines[2], "no pending notifications")

	cur := el.Current()
	assert.False(t, cur.Visible)
	assert.Equal(t, "99+", cur.Text)
}

func TestWriterElement_FirstHidePrints(t *testing.T) {
	var buf bytes.Buffer
	el := NewWriterElement(&buf, false)

	el.Hide()

	assert.Len(t, tuitest.Lines(buf.String()), 1)
}

func TestWriterElement_Timestamps(t *testing.T) {
	var buf bytes.Buffer
	el := NewWriterElement(&buf, true)
	el.now = func() time.Time { return time.Date(2025, 1, 2, 15, 4, 5, 0, time.Local) }

	el.Show("1")

	lines := tuitest.Lines(buf.String())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "15:04:05")
}
