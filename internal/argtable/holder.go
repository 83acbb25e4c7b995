package argtable

import "sync/atomic"

var emptyTable = &Table{}

// Holder owns the current Table for a process. Reset swaps in a freshly
// parsed table in one step; readers holding the previous table keep a
// consistent view of it.
type Holder struct {
	current atomic.Pointer[Table]
}

// NewHolder returns a Holder initialised with t.
func NewHolder(t *Table) *Holder {
	h := &Holder{}
	if t != nil {
		h.current.Store(t)
	}
	return h
}

// Load returns the current table. It never returns nil.
func (h *Holder) Load() *Table {
	if t := h.current.Load(); t != nil {
		return t
	}
	return emptyTable
}

// Reset parses tokens into a new table, installs it and returns it.
func (h *Holder) Reset(tokens []string) *Table {
	t := Parse(tokens)
	h.current.Store(t)
	return t
}
