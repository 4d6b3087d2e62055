package radio

import "fmt"

const yapSuffix = " with Yapping"

// StatusText renders the human-readable "now/next" line for the current
// position at the given playback timestamp.
func (e *Engine) StatusText(now float64) string {
	s := e.CurrentStream()
	if s == nil {
		return "Loading..."
	}

	if !s.Segmented() {
		return e.withYap(fmt.Sprintf("%s (1/1)", s.Title))
	}

	songs := s.Songs
	n := len(songs)

	switch p := Classify(now, s); p.Context {
	case ContextBefore:
		// A stale zero timestamp can arrive while the engine already
		// tracks a later song; only announce the first song when the
		// tracked index agrees.
		if e.rIdx == 0 {
			return e.withYap(fmt.Sprintf("Next: %s (1/%d)", songs[0].Name, n))
		}
		idx := clamp(e.rIdx, 0, n-1)
		return e.withYap(fmt.Sprintf("%s (%d/%d)", songs[idx].Name, idx+1, n))
	case ContextGap:
		next := p.Index + 1
		return e.withYap(fmt.Sprintf("Next: %s (%d/%d)", songs[next].Name, next+1, n))
	case ContextAfter:
		return e.withYap("Stream Ending...")
	default: // inside
		return e.withYap(fmt.Sprintf("%s (%d/%d)", songs[p.Index].Name, p.Index+1, n))
	}
}

// ActiveSongName returns the song name when the timestamp falls strictly
// inside a defined song range. The false return signals the caller to
// fall back to the full status text; unsegmented streams never match.
func (e *Engine) ActiveSongName(now float64) (string, bool) {
	s := e.CurrentStream()
	if s == nil || !s.Segmented() {
		return "", false
	}
	p := Classify(now, s)
	if p.Context != ContextInside {
		return "", false
	}
	return s.Songs[p.Index].Name, true
}

func (e *Engine) withYap(text string) string {
	if e.yap {
		return text + yapSuffix
	}
	return text
}
