package radio

import (
	"math"
	"strconv"
)

// Durable settings keys. Values are stored as strings and re-parsed on
// load; malformed values fall back to defaults, never to an error.
const (
	keyYap     = "yapMode"
	keyLoop    = "loopMode"
	keyShuffle = "shuffleMode"
	keyVideoID = "videoId"
	keyIndex   = "streamIndex"
	keyTime    = "time"
)

// Settings is the typed form of the durable key/value settings. It lives
// at the persistence boundary: the engine works with typed state and only
// converts at save/load time.
type Settings struct {
	Yap     bool
	Loop    LoopMode
	Shuffle bool
	VideoID string
	Index   int
	Time    float64
}

// ParseSettings decodes a string-keyed settings map, substituting the
// zero defaults for missing or malformed values.
func ParseSettings(values map[string]string) Settings {
	var s Settings
	if values == nil {
		return s
	}

	s.Yap = values[keyYap] == "true"
	s.Shuffle = values[keyShuffle] == "true"
	s.Loop = ParseLoopMode(values[keyLoop])
	s.VideoID = values[keyVideoID]

	if n, err := strconv.Atoi(values[keyIndex]); err == nil && n >= 0 {
		s.Index = n
	}
	if t, err := strconv.ParseFloat(values[keyTime], 64); err == nil && !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0 {
		s.Time = t
	}

	return s
}

// Encode converts the settings to the string-keyed map the durable store
// expects.
func (s Settings) Encode() map[string]string {
	return map[string]string{
		keyYap:     strconv.FormatBool(s.Yap),
		keyLoop:    s.Loop.String(),
		keyShuffle: strconv.FormatBool(s.Shuffle),
		keyVideoID: s.VideoID,
		keyIndex:   strconv.Itoa(s.Index),
		keyTime:    strconv.FormatFloat(s.Time, 'f', -1, 64),
	}
}
