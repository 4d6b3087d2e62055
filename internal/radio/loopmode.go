package radio

// LoopMode defines the repeat behavior.
type LoopMode int

const (
	// LoopNone plays through without repeating.
	LoopNone LoopMode = iota
	// LoopTrack repeats the current song indefinitely.
	LoopTrack
	// LoopStream repeats all songs in the current stream.
	LoopStream
)

// String returns the loop mode name.
func (m LoopMode) String() string {
	switch m {
	case LoopTrack:
		return "track"
	case LoopStream:
		return "stream"
	default:
		return "none"
	}
}

// Cycle returns the next mode in the none -> track -> stream -> none order.
func (m LoopMode) Cycle() LoopMode {
	switch m {
	case LoopNone:
		return LoopTrack
	case LoopTrack:
		return LoopStream
	default:
		return LoopNone
	}
}

// ParseLoopMode converts a persisted string to a LoopMode, defaulting to
// LoopNone for anything unrecognized.
func ParseLoopMode(s string) LoopMode {
	switch s {
	case "track":
		return LoopTrack
	case "stream":
		return LoopStream
	default:
		return LoopNone
	}
}
