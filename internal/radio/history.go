package radio

import "encoding/json"

// HistoryMax caps the back-navigation history depth; the oldest entry is
// evicted on overflow.
const HistoryMax = 20

// SessionHistoryKey is the session-store key the encoded history lives under.
const SessionHistoryKey = "history"

// HistoryEntry snapshots the position just before a forward stream
// transition. Time is nil when no resume position was captured.
type HistoryEntry struct {
	VIdx int      `json:"v"`
	RIdx int      `json:"r"`
	Time *float64 `json:"time,omitempty"`
}

// History is the session-scoped LIFO of prior stream positions. It makes
// "previous stream" deterministic under shuffle. The zero value is ready
// to use.
type History struct {
	entries []HistoryEntry
}

// Push appends an entry, evicting the oldest when over capacity.
func (h *History) Push(e HistoryEntry) {
	h.entries = append(h.entries, e)
	if len(h.entries) > HistoryMax {
		h.entries = h.entries[len(h.entries)-HistoryMax:]
	}
}

// Pop removes and returns the most recent entry.
func (h *History) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	e := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return e, true
}

// Len returns the current depth.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Encode serializes the history for the session store.
func (h *History) Encode() string {
	if len(h.entries) == 0 {
		return "[]"
	}
	b, err := json.Marshal(h.entries)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ParseHistory decodes a persisted session history. Invalid JSON or wrong
// shapes yield an empty history rather than an error; missing fields
// default to zero. Oversized histories are pruned to the newest entries.
func ParseHistory(raw string) *History {
	h := &History{}
	if raw == "" {
		return h
	}
	var entries []HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return h
	}
	if len(entries) > HistoryMax {
		entries = entries[len(entries)-HistoryMax:]
	}
	h.entries = entries
	return h
}
