// Package pins keeps the per-document ordered sets of pinned path
// addresses. Entries are canonical path strings; uniqueness is exact
// string equality and insertion order defines iteration order.
//
// A pinned path need not currently resolve to a value; stale pins stay
// inert until the user explicitly unpins them. All state is ephemeral and
// dropped with the document.
package pins

// Registry holds pin sets keyed by document identity. Callers serialize
// access per document; the registry itself does no locking.
type Registry struct {
	docs map[string][]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[string][]string)}
}

// Pin appends path to the document's set. No-op (returning false) when the
// exact path is already present.
func (r *Registry) Pin(doc, path string) bool {
	if r.IsPinned(doc, path) {
		return false
	}
	r.docs[doc] = append(r.docs[doc], path)
	return true
}

// Unpin removes the first exact match of path. No-op (returning false)
// when the path is absent.
func (r *Registry) Unpin(doc, path string) bool {
	entries := r.docs[doc]
	for i, p := range entries {
		if p == path {
			r.docs[doc] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// IsPinned reports whether the exact path is present for the document.
func (r *Registry) IsPinned(doc, path string) bool {
	for _, p := range r.docs[doc] {
		if p == path {
			return true
		}
	}
	return false
}

// Clear empties the document's pin set.
func (r *Registry) Clear(doc string) {
	delete(r.docs, doc)
}

// List returns the document's pins in insertion order. The slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) List(doc string) []string {
	entries := r.docs[doc]
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}
