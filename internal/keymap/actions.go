// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionNextSong   Action = "next_song"
	ActionPrevSong   Action = "prev_song"
	ActionNextStream Action = "next_stream"
	ActionPrevStream Action = "prev_stream"
	// Back one stream ignoring shuffle history
	ActionPrevStreamLiteral Action = "prev_stream_literal"

	// Mode toggles
	ActionToggleYap     Action = "toggle_yap"
	ActionCycleLoop     Action = "cycle_loop"
	ActionToggleShuffle Action = "toggle_shuffle"
)
