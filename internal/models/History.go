package models

// HistoryCapacity is the maximum number of entries kept in History.
const HistoryCapacity = 10

// History is an ordered list of past scans, newest first.
type History struct {
	entries []HistoryEntry
}

// NewHistory builds a History from entries already ordered newest first.
// Entries past HistoryCapacity are dropped.
func NewHistory(entries []HistoryEntry) *History {
	if len(entries) > HistoryCapacity {
		entries = entries[:HistoryCapacity]
	}
	h := &History{entries: make([]HistoryEntry, len(entries))}
	copy(h.entries, entries)
	return h
}

// Prepend inserts entry at the head and evicts the oldest entries beyond capacity.
func (h *History) Prepend(entry HistoryEntry) {
	keep := min(len(h.entries), HistoryCapacity-1)
	next := make([]HistoryEntry, 0, keep+1)
	next = append(next, entry)
	next = append(next, h.entries[:keep]...)
	h.entries = next
}

func (h *History) Clear() {
	h.entries = nil
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Find(id string) (HistoryEntry, bool) {
	for _, e := range h.entries {
		if e.ID == id {
			return e, true
		}
	}
	return HistoryEntry{}, false
}

// Entries returns a copy; never nil.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Clone() *History {
	return NewHistory(h.entries)
}
