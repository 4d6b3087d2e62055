package radio

import "testing"

func TestHistory_PushPop(t *testing.T) {
	h := &History{}

	resume := 42.5
	h.Push(HistoryEntry{VIdx: 1, RIdx: 2, Time: &resume})
	h.Push(HistoryEntry{VIdx: 3})

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	e, ok := h.Pop()
	if !ok || e.VIdx != 3 {
		t.Errorf("Pop() = %+v %v, want most recent entry", e, ok)
	}
	e, ok = h.Pop()
	if !ok || e.VIdx != 1 || e.RIdx != 2 || e.Time == nil || *e.Time != 42.5 {
		t.Errorf("Pop() = %+v %v, want first entry with time", e, ok)
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop() on empty history should report false")
	}
}

func TestHistory_Cap(t *testing.T) {
	h := &History{}
	for i := range 50 {
		h.Push(HistoryEntry{VIdx: i})
	}

	if h.Len() != HistoryMax {
		t.Fatalf("Len() = %d, want %d", h.Len(), HistoryMax)
	}

	// Oldest entries are evicted first: the newest must be on top.
	e, _ := h.Pop()
	if e.VIdx != 49 {
		t.Errorf("top entry VIdx = %d, want 49", e.VIdx)
	}
}

func TestHistory_EncodeRoundTrip(t *testing.T) {
	h := &History{}
	resume := 7.25
	h.Push(HistoryEntry{VIdx: 2, RIdx: 1, Time: &resume})
	h.Push(HistoryEntry{VIdx: 0})

	restored := ParseHistory(h.Encode())
	if restored.Len() != 2 {
		t.Fatalf("restored Len() = %d, want 2", restored.Len())
	}

	e, _ := restored.Pop()
	if e.VIdx != 0 || e.Time != nil {
		t.Errorf("restored top = %+v, want VIdx 0 without time", e)
	}
	e, _ = restored.Pop()
	if e.VIdx != 2 || e.RIdx != 1 || e.Time == nil || *e.Time != 7.25 {
		t.Errorf("restored bottom = %+v, want saved time intact", e)
	}
}

func TestParseHistory_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"garbage", "not json at all"},
		{"wrong shape", `{"v":1}`},
		{"wrong element types", `[{"v":"nope"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ParseHistory(tt.raw)
			if h.Len() != 0 {
				t.Errorf("ParseHistory(%q).Len() = %d, want 0", tt.raw, h.Len())
			}
		})
	}
}

func TestParseHistory_MissingFieldsDefault(t *testing.T) {
	h := ParseHistory(`[{"v":3}]`)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	e, _ := h.Pop()
	if e.RIdx != 0 || e.Time != nil {
		t.Errorf("entry = %+v, want RIdx 0 and no time", e)
	}
}

func TestParseHistory_PrunesOversized(t *testing.T) {
	h := &History{}
	big := History{}
	for i := range 30 {
		big.entries = append(big.entries, HistoryEntry{VIdx: i})
	}
	h = ParseHistory(big.Encode())
	// ParseHistory only keeps the newest HistoryMax entries.
	if h.Len() != HistoryMax {
		t.Fatalf("Len() = %d, want %d", h.Len(), HistoryMax)
	}
	e, _ := h.Pop()
	if e.VIdx != 29 {
		t.Errorf("newest entry VIdx = %d, want 29", e.VIdx)
	}
}
