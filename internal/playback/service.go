// Package playback bridges the navigation engine and the external
// player: it implements the engine's host boundary, drives the tick
// cadence, and fans events out to subscribers.
package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/louvel/streamradio/internal/player"
	"github.com/louvel/streamradio/internal/playlist"
	"github.com/louvel/streamradio/internal/radio"
)

// SettingsStore is the durable string-keyed settings persistence.
type SettingsStore interface {
	SaveSettings(values map[string]string)
	LoadSettings() map[string]string
}

// SessionStore is the session-only persistence used for history.
type SessionStore interface {
	SaveSession(values map[string]string)
	LoadSession() map[string]string
}

// Service owns the engine, the player handle and the tick state. All
// methods must be called from the host's single event loop.
type Service struct {
	engine  *radio.Engine
	player  player.Interface
	store   SettingsStore
	session SessionStore

	subs   []*Subscription
	subsMu sync.RWMutex

	lastStatus string
	closed     bool
}

// Verify Service implements the engine's host boundary at compile time.
var _ radio.Host = (*Service)(nil)

// New wires a service over the playlist, player and stores, restoring
// the engine from persisted state.
func New(pl *playlist.Playlist, p player.Interface, store SettingsStore, session SessionStore) (*Service, error) {
	s := &Service{
		player:  p,
		store:   store,
		session: session,
	}
	engine, err := radio.New(s, pl)
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

// Start begins playback at the restored position.
func (s *Service) Start() {
	start := radio.SanitizeStartTime(s.engine.SavedTime(), s.engine.CurrentStream())
	start = s.engine.NormalizeResumeTime(start)
	slog.Info("resuming playback",
		"video", s.engine.CurrentStream().VideoID,
		"song", s.engine.SongIndex(),
		"time", start)
	s.PlayVideo()
	s.emitStream()
}

// Tick runs one boundary-enforcement pass against the live player. The
// host calls it on a fixed cadence.
func (s *Service) Tick() {
	switch s.player.State() {
	case player.Ended:
		slog.Debug("media ended", "video", s.player.VideoID())
		s.engine.VideoEnded()
		s.emitStream()
	case player.Playing:
		pos := s.player.Position()
		if d := s.player.Duration(); d > 0 {
			s.engine.SetDuration(s.player.VideoID(), d)
		}
		before := s.position()
		if act := s.engine.CheckTick(pos); act != nil || before != s.position() {
			s.emitStream()
		}
	}
	s.refreshStatus()
}

func (s *Service) position() [2]int {
	return [2]int{s.engine.StreamIndex(), s.engine.SongIndex()}
}

// PlayPause toggles the player without any navigation.
func (s *Service) PlayPause() {
	switch s.player.State() {
	case player.Playing:
		s.player.Pause()
	default:
		s.player.Play()
	}
}

// NextSong advances one song against the live timestamp.
func (s *Service) NextSong() radio.Action {
	act := s.engine.NextSong(s.player.Position())
	s.emitStream()
	return act
}

// PrevSong steps back one song against the live timestamp.
func (s *Service) PrevSong() radio.Action {
	act := s.engine.PrevSong(s.player.Position())
	s.emitStream()
	return act
}

// NextStream moves forward one stream.
func (s *Service) NextStream() radio.Action {
	act := s.engine.NextStream()
	s.emitStream()
	return act
}

// PrevStream moves back one stream; skipHistory forces the literal
// previous index under shuffle.
func (s *Service) PrevStream(skipHistory bool) radio.Action {
	act := s.engine.PrevStream(skipHistory)
	s.emitStream()
	return act
}

// ToggleYap flips continuous playback.
func (s *Service) ToggleYap() bool {
	v := s.engine.ToggleYap()
	s.emitMode()
	return v
}

// CycleLoop advances the loop mode.
func (s *Service) CycleLoop() radio.LoopMode {
	v := s.engine.CycleLoop()
	s.emitMode()
	return v
}

// ToggleShuffle flips shuffle.
func (s *Service) ToggleShuffle() bool {
	v := s.engine.ToggleShuffle()
	s.emitMode()
	return v
}

// StatusText renders the status line for the live position.
func (s *Service) StatusText() string {
	return s.engine.StatusText(s.player.Position())
}

// CurrentStream returns the stream at the engine's position.
func (s *Service) CurrentStream() *playlist.Stream {
	return s.engine.CurrentStream()
}

// CurrentSong returns the song at the engine's position.
func (s *Service) CurrentSong() playlist.Song {
	return s.engine.CurrentSong()
}

// Position returns the live playback position in seconds.
func (s *Service) Position() float64 {
	return s.player.Position()
}

// PlayerState returns the external player's state.
func (s *Service) PlayerState() player.State {
	return s.player.State()
}

// Yap reports whether continuous playback is on.
func (s *Service) Yap() bool { return s.engine.Yap() }

// Loop returns the loop mode.
func (s *Service) Loop() radio.LoopMode { return s.engine.Loop() }

// Shuffle reports whether shuffle is on.
func (s *Service) Shuffle() bool { return s.engine.Shuffle() }

// Subscribe creates a new event subscription.
func (s *Service) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down all subscriptions.
func (s *Service) Close() error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

// PlayVideo implements radio.Host: issue the engine's computed bounded
// playback request to the player.
func (s *Service) PlayVideo() {
	req := s.engine.PlayRequest()
	slog.Debug("load video", "video", req.VideoID, "start", req.Start, "bound", req.Bound)
	s.player.Load(req.VideoID, req.Start, req.Bound)
}

// SeekTo implements radio.Host: in-place seek, resuming if needed.
func (s *Service) SeekTo(seconds float64) {
	s.player.Seek(seconds)
	s.player.Play()
}

// SaveSettings implements radio.Host.
func (s *Service) SaveSettings(values map[string]string) {
	s.store.SaveSettings(values)
}

// LoadSettings implements radio.Host.
func (s *Service) LoadSettings() map[string]string {
	return s.store.LoadSettings()
}

// SaveSession implements radio.Host.
func (s *Service) SaveSession(values map[string]string) {
	s.session.SaveSession(values)
}

// LoadSession implements radio.Host.
func (s *Service) LoadSession() map[string]string {
	return s.session.LoadSession()
}

// Now implements radio.Host.
func (s *Service) Now() time.Time {
	return time.Now()
}

func (s *Service) emitStream() {
	stream := s.engine.CurrentStream()
	e := StreamChange{
		StreamIndex: s.engine.StreamIndex(),
		SongIndex:   s.engine.SongIndex(),
		VideoID:     stream.VideoID,
		Name:        stream.Name,
		Title:       stream.Title,
	}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendStream(e)
	}
}

func (s *Service) emitMode() {
	e := ModeChange{
		Yap:     s.engine.Yap(),
		Loop:    s.engine.Loop(),
		Shuffle: s.engine.Shuffle(),
	}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendMode(e)
	}
}

func (s *Service) refreshStatus() {
	text := s.StatusText()
	if text == s.lastStatus {
		return
	}
	s.lastStatus = text
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendStatus(StatusChange{Text: text})
	}
}
