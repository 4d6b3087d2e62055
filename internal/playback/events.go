package playback

import "github.com/louvel/streamradio/internal/radio"

// StreamChange is emitted when playback moves to a different stream or a
// different song within one.
type StreamChange struct {
	StreamIndex int
	SongIndex   int
	VideoID     string
	Name        string
	Title       string
}

// ModeChange is emitted when yap, loop or shuffle changes.
type ModeChange struct {
	Yap     bool
	Loop    radio.LoopMode
	Shuffle bool
}

// StatusChange is emitted whenever the rendered status line changes.
type StatusChange struct {
	Text string
}
