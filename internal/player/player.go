// Package player defines the boundary to the external video player. The
// radio core never touches media itself; it only issues load and seek
// requests against this interface.
package player

// State represents the external player's playback state.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Ended
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	default:
		return "Idle"
	}
}

// Interface is the remote media element the host drives. Load replaces
// the current media with a bounded playback request: the player is
// expected to stop (state Ended) once position reaches bound; bound <= 0
// means play to the natural end.
type Interface interface {
	Load(videoID string, start, bound float64)
	Seek(seconds float64)
	Play()
	Pause()
	Position() float64
	Duration() float64
	State() State
	VideoID() string
}
