package radio

import "github.com/louvel/streamradio/internal/playlist"

// Context classifies a playback timestamp relative to a stream's songs.
type Context int

const (
	// ContextNone means the stream has no songs to classify against.
	ContextNone Context = iota
	// ContextInside means the timestamp falls within a song's range.
	ContextInside
	// ContextBefore means the timestamp precedes the first song.
	ContextBefore
	// ContextGap means the timestamp lies between two songs.
	ContextGap
	// ContextAfter means the timestamp is at or past the last song's end.
	ContextAfter
)

// String returns the context name.
func (c Context) String() string {
	switch c {
	case ContextInside:
		return "inside"
	case ContextBefore:
		return "before"
	case ContextGap:
		return "gap"
	case ContextAfter:
		return "after"
	default:
		return "none"
	}
}

// Placement is the result of classifying a timestamp: where it sits and
// which song index it implies. For ContextGap the index names the song
// preceding the gap.
type Placement struct {
	Context Context
	Index   int
}

// Classify maps a playback timestamp to a placement within the stream's
// songs. It is pure and idempotent; callers re-run it before every
// navigation decision because the engine's tracked song index may be stale
// after an out-of-band manual seek.
func Classify(t float64, s *playlist.Stream) Placement {
	if s == nil || !s.Segmented() {
		return Placement{Context: ContextNone}
	}

	songs := s.Songs
	last := len(songs) - 1

	if t < songs[0].Start {
		return Placement{Context: ContextBefore, Index: 0}
	}
	if t >= songs[last].End {
		return Placement{Context: ContextAfter, Index: last}
	}
	for i := range songs {
		if songs[i].Contains(t) {
			return Placement{Context: ContextInside, Index: i}
		}
		if i < last && t >= songs[i].End && t < songs[i+1].Start {
			return Placement{Context: ContextGap, Index: i}
		}
	}
	// Unreachable for validated song ranges.
	return Placement{Context: ContextAfter, Index: last}
}
