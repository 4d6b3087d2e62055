package radio

import "time"

// Host is the injected collaborator set the engine drives. The engine
// performs no I/O of its own: playback commands, durable settings,
// session data and the clock all go through this boundary, so every
// engine method stays synchronous and deterministic.
type Host interface {
	// PlayVideo asks the external player to load or resume the engine's
	// currently computed stream/song (see Engine.PlayRequest).
	PlayVideo()
	// SeekTo asks the external player for an in-place seek, no reload.
	SeekTo(seconds float64)

	// SaveSettings / LoadSettings round-trip durable, string-keyed
	// settings. Values come back as strings and are re-parsed by the
	// settings codec; anything malformed degrades to defaults.
	SaveSettings(values map[string]string)
	LoadSettings() map[string]string

	// SaveSession / LoadSession round-trip session-only data, used
	// exclusively for back-navigation history. Session data must not
	// survive a full application restart.
	SaveSession(values map[string]string)
	LoadSession() map[string]string

	// Now is the mockable clock source.
	Now() time.Time
}
