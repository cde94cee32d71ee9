package badge

import (
	"github.com/rs/zerolog/log"

	"github.com/colonyops/notifbadge/pkg/kv"
)

// Element is something that can display the badge. Overlapping poll cycles
// may call an element concurrently, so implementations must be safe for
// concurrent use.
type Element interface {
	// Show makes the element visible with the given text.
	Show(text string)
	// Hide makes the element invisible. Its text is left as is.
	Hide()
}

// Ref is an optional reference to an Element. The zero value refers to
// nothing and every operation on it is a no-op.
type Ref struct {
	el Element
}

// RefTo wraps el. A nil el yields an empty Ref.
func RefTo(el Element) Ref {
	return Ref{el: el}
}

// Present reports whether the reference points at an element.
func (r Ref) Present() bool {
	return r.el != nil
}

// Show forwards to the element if present.
func (r Ref) Show(text string) {
	if r.el == nil {
		return
	}
	r.el.Show(text)
}

// Hide forwards to the element if present.
func (r Ref) Hide() {
	if r.el == nil {
		return
	}
	r.el.Hide()
}

// Document holds the elements a view exposes, keyed by id.
type Document struct {
	elements *kv.Store[string, Element]
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{elements: kv.New[string, Element]()}
}

// Register adds el under id, replacing any element already registered there.
func (d *Document) Register(id string, el Element) {
	if el == nil {
		return
	}
	if _, replaced := d.elements.Swap(id, el); replaced {
		log.Debug().Str("id", id).Msg("badge: replaced registered element")
	}
}

// Remove unregisters the element under id.
func (d *Document) Remove(id string) {
	d.elements.Delete(id)
}

// Lookup returns a reference to the element under id. A missing element
// yields an empty Ref rather than an error.
func (d *Document) Lookup(id string) Ref {
	if d == nil {
		return Ref{}
	}
	el, ok := d.elements.Get(id)
	if !ok {
		return Ref{}
	}
	return RefTo(el)
}

// IDs returns the registered ids in sorted order.
func (d *Document) IDs() []string {
	return d.elements.Keys()
}
