package radio

// Action describes the playback request an engine operation decided on.
// The engine has already invoked the matching host callback when an
// operation returns; the value lets the host react exhaustively (update
// its UI, re-arm bounds) with a type switch instead of inspecting
// optional fields. A nil Action means nothing needs to happen.
type Action interface {
	actionTime() float64
}

// Load requests a fresh bounded playback of the current stream/song
// through the external player.
type Load struct {
	Time float64
}

// Seek moves within the already loaded media without a reload.
type Seek struct {
	Time float64
}

// SeekReload seeks to a position that requires the current song's end
// bound to be applied again, so it goes through a reload.
type SeekReload struct {
	Time float64
}

func (a Load) actionTime() float64       { return a.Time }
func (a Seek) actionTime() float64       { return a.Time }
func (a SeekReload) actionTime() float64 { return a.Time }
