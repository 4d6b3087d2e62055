// Package playlist holds the immutable stream collection the radio plays from.
package playlist

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a playlist document defines no streams.
var ErrEmpty = errors.New("playlist has no streams")

// Song is a named sub-interval [Start, End) of a stream, in seconds.
type Song struct {
	Name  string
	Start float64
	End   float64
}

// Contains reports whether t falls within the song's [Start, End) range.
func (s Song) Contains(t float64) bool {
	return t >= s.Start && t < s.End
}

// Stream is one long-form video source. A stream with no songs is played
// as a single implicit song spanning the whole video.
type Stream struct {
	VideoID string
	Name    string
	Title   string
	Songs   []Song
}

// Segmented reports whether the stream defines explicit songs.
func (s *Stream) Segmented() bool {
	return len(s.Songs) > 0
}

// Song returns the song at index i, clamped into the valid range.
// Must not be called on an unsegmented stream.
func (s *Stream) Song(i int) Song {
	if i < 0 {
		i = 0
	}
	if i >= len(s.Songs) {
		i = len(s.Songs) - 1
	}
	return s.Songs[i]
}

// DefaultStart returns where playback of this stream begins: the first
// song's start, or 0 when the stream has no songs.
func (s *Stream) DefaultStart() float64 {
	if len(s.Songs) == 0 {
		return 0
	}
	return s.Songs[0].Start
}

// Playlist is the ordered collection of streams, fixed for the session.
// Indices are stable once loaded; persisted positions are restored by
// video id first and index second.
type Playlist struct {
	streams []Stream
}

// New builds a playlist from streams after validating them.
func New(streams []Stream) (*Playlist, error) {
	if len(streams) == 0 {
		return nil, ErrEmpty
	}
	if err := validate(streams); err != nil {
		return nil, err
	}
	return &Playlist{streams: streams}, nil
}

// Len returns the number of streams.
func (p *Playlist) Len() int {
	return len(p.streams)
}

// Stream returns the stream at index i, or nil if out of bounds.
func (p *Playlist) Stream(i int) *Stream {
	if i < 0 || i >= len(p.streams) {
		return nil
	}
	return &p.streams[i]
}

// IndexOfVideoID returns the index of the stream with the given video id,
// or -1 if unknown.
func (p *Playlist) IndexOfVideoID(id string) int {
	for i := range p.streams {
		if p.streams[i].VideoID == id {
			return i
		}
	}
	return -1
}

// Streams returns a copy of all streams.
func (p *Playlist) Streams() []Stream {
	out := make([]Stream, len(p.streams))
	copy(out, p.streams)
	return out
}

func validate(streams []Stream) error {
	seen := make(map[string]struct{}, len(streams))
	for i := range streams {
		st := &streams[i]
		if st.VideoID == "" {
			return fmt.Errorf("stream %d: missing video id", i)
		}
		if _, dup := seen[st.VideoID]; dup {
			return fmt.Errorf("stream %d: duplicate video id %q", i, st.VideoID)
		}
		seen[st.VideoID] = struct{}{}

		for j, song := range st.Songs {
			if song.Start < 0 {
				return fmt.Errorf("stream %q song %d: negative start %v", st.VideoID, j, song.Start)
			}
			if song.End <= song.Start {
				return fmt.Errorf("stream %q song %d: end %v not after start %v", st.VideoID, j, song.End, song.Start)
			}
			if j > 0 && song.Start < st.Songs[j-1].End {
				return fmt.Errorf("stream %q song %d: overlaps previous song ending at %v", st.VideoID, j, st.Songs[j-1].End)
			}
		}
	}
	return nil
}
