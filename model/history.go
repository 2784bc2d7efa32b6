package model

// History remembers the generation signatures seen during one run
type History struct {
	order []string
	seen  map[string]struct{}
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{seen: make(map[string]struct{})}
}

// Seen reports whether sig was recorded since the last Reset
func (h *History) Seen(sig string) bool {
	_, ok := h.seen[sig]
	return ok
}

// Add appends sig
func (h *History) Add(sig string) {
	h.order = append(h.order, sig)
	h.seen[sig] = struct{}{}
}

// Len returns the number of recorded signatures
func (h *History) Len() int {
	return len(h.order)
}

// Signatures returns the recorded signatures, oldest first
func (h *History) Signatures() []string {
	return append([]string(nil), h.order...)
}

// Reset forgets every signature
func (h *History) Reset() {
	h.order = nil
	clear(h.seen)
}
