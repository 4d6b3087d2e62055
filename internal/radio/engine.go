// Package radio implements the playback-navigation state machine: the
// current stream/song position, loop/shuffle/yap modes, time-to-segment
// synchronization, back-navigation history and status text.
package radio

import (
	"math"
	"math/rand"

	"github.com/louvel/streamradio/internal/playlist"
)

// Playback thresholds, in seconds.
const (
	// restartThreshold: once playback is this far into the current song,
	// "previous" restarts it instead of stepping back.
	restartThreshold = 5.0
	// endLead pre-empts media-end latency when a boundary is enforced
	// near a song's end.
	endLead = 0.2
	// driftTolerance separates natural playback drift from a manual seek
	// outside the tracked song's range.
	driftTolerance = 1.0
	// seamlessGap: neighbor songs closer than this are played through
	// without a reload.
	seamlessGap = 0.05
)

// Engine owns the playback-navigation state for one session. It performs
// no I/O; everything external goes through the injected Host. All methods
// are synchronous and must be called from a single goroutine.
type Engine struct {
	host Host
	pl   *playlist.Playlist

	vIdx int // current stream index
	rIdx int // current song index; 0 and meaningless for unsegmented streams

	yap     bool
	loop    LoopMode
	shuffle bool

	// durations caches the externally reported duration per video id,
	// used only to bound the synthetic song of unsegmented streams.
	durations map[string]float64

	history *History

	// lastTime is the last playback timestamp the engine saw; persisted
	// as the resume position.
	lastTime float64

	rng *rand.Rand
}

// New builds an engine over the playlist, restoring durable settings and
// session history through the host. An empty playlist is the one
// unrecoverable construction error.
func New(host Host, pl *playlist.Playlist) (*Engine, error) {
	if pl == nil || pl.Len() == 0 {
		return nil, playlist.ErrEmpty
	}

	e := &Engine{
		host:      host,
		pl:        pl,
		durations: make(map[string]float64),
		history:   &History{},
		rng:       rand.New(rand.NewSource(host.Now().UnixNano())),
	}
	e.restore()
	return e, nil
}

// restore loads durable settings (position by video id first, index
// second) and session history. Anything malformed degrades to defaults.
func (e *Engine) restore() {
	s := ParseSettings(e.host.LoadSettings())
	e.yap = s.Yap
	e.loop = s.Loop
	e.shuffle = s.Shuffle
	e.lastTime = s.Time

	idx := -1
	if s.VideoID != "" {
		idx = e.pl.IndexOfVideoID(s.VideoID)
	}
	if idx < 0 {
		idx = s.Index
	}
	if idx < 0 || idx >= e.pl.Len() {
		idx = 0
		e.lastTime = 0
	}
	e.vIdx = idx
	e.rIdx = 0

	if raw, ok := e.host.LoadSession()[SessionHistoryKey]; ok {
		e.history = ParseHistory(raw)
	}
}

// StreamIndex returns the current stream index.
func (e *Engine) StreamIndex() int { return e.vIdx }

// SongIndex returns the current song index.
func (e *Engine) SongIndex() int { return e.rIdx }

// Yap reports whether continuous (yap) playback is on.
func (e *Engine) Yap() bool { return e.yap }

// Loop returns the current loop mode.
func (e *Engine) Loop() LoopMode { return e.loop }

// Shuffle reports whether shuffle is on.
func (e *Engine) Shuffle() bool { return e.shuffle }

// HistoryLen returns the back-navigation history depth.
func (e *Engine) HistoryLen() int { return e.history.Len() }

// SavedTime returns the resume timestamp restored from durable settings.
func (e *Engine) SavedTime() float64 { return e.lastTime }

// CurrentStream returns the stream at the current position.
func (e *Engine) CurrentStream() *playlist.Stream {
	return e.pl.Stream(e.vIdx)
}

// CurrentSong returns the song at the current position. For unsegmented
// streams it synthesizes a whole-stream song whose end is the cached
// duration, or 0 while the duration is still unknown.
func (e *Engine) CurrentSong() playlist.Song {
	s := e.CurrentStream()
	if !s.Segmented() {
		return playlist.Song{Name: s.Title, Start: 0, End: e.durations[s.VideoID]}
	}
	return s.Song(e.rIdx)
}

// SetDuration records the externally reported duration for a video.
func (e *Engine) SetDuration(videoID string, seconds float64) {
	if videoID == "" || seconds <= 0 || !isFinite(seconds) {
		return
	}
	e.durations[videoID] = seconds
}

// Duration returns the cached duration for a video, if known.
func (e *Engine) Duration(videoID string) (float64, bool) {
	d, ok := e.durations[videoID]
	return d, ok
}

// PlayRequest describes the load the host should issue when the engine
// calls PlayVideo: the current video, the start position, and the end
// bound to enforce (0 means unbounded).
type PlayRequest struct {
	VideoID string
	Start   float64
	Bound   float64
}

// PlayRequest computes the bounded playback request for the current
// position. In yap mode and for unsegmented streams no bound is applied.
func (e *Engine) PlayRequest() PlayRequest {
	s := e.CurrentStream()
	req := PlayRequest{VideoID: s.VideoID, Start: e.lastTime}
	if !e.yap && s.Segmented() {
		song := s.Song(e.rIdx)
		// A resume position before the song is fine (playback runs into
		// it); one at or past the end bound is not.
		if req.Start >= song.End {
			req.Start = song.Start
		}
		req.Bound = song.End
	}
	return req
}

// ToggleYap flips continuous playback and persists immediately.
func (e *Engine) ToggleYap() bool {
	e.yap = !e.yap
	e.persist()
	return e.yap
}

// CycleLoop advances none -> track -> stream -> none and persists.
func (e *Engine) CycleLoop() LoopMode {
	e.loop = e.loop.Cycle()
	e.persist()
	return e.loop
}

// ToggleShuffle flips shuffle and persists. Turning shuffle off clears
// the back-navigation history.
func (e *Engine) ToggleShuffle() bool {
	e.shuffle = !e.shuffle
	if !e.shuffle {
		e.history.Clear()
		e.saveSession()
	}
	e.persist()
	return e.shuffle
}

// NextStream moves forward one stream: random under shuffle, sequential
// otherwise. The position left behind is pushed onto the history so a
// following PrevStream can undo the jump.
func (e *Engine) NextStream() Action {
	resume := e.CurrentSong().Start
	e.history.Push(HistoryEntry{VIdx: e.vIdx, RIdx: e.rIdx, Time: &resume})
	e.saveSession()

	if e.shuffle {
		e.vIdx = e.randomIndex()
	} else {
		e.vIdx = (e.vIdx + 1) % e.pl.Len()
	}
	e.rIdx = 0

	return e.load(e.CurrentStream().DefaultStart())
}

// PrevStream moves backward one stream. With history available it pops
// the most recent snapshot and resumes there; once history runs out even
// backwards navigation randomizes under shuffle. skipHistory forces the
// literal previous index regardless of history when shuffle is on.
func (e *Engine) PrevStream(skipHistory bool) Action {
	n := e.pl.Len()

	if skipHistory && e.shuffle {
		e.vIdx = (e.vIdx - 1 + n) % n
		e.rIdx = 0
		return e.load(e.CurrentStream().DefaultStart())
	}

	if entry, ok := e.history.Pop(); ok {
		e.saveSession()
		e.vIdx = clamp(entry.VIdx, 0, n-1)
		s := e.CurrentStream()
		if s.Segmented() {
			e.rIdx = clamp(entry.RIdx, 0, len(s.Songs)-1)
		} else {
			e.rIdx = 0
		}
		start := s.DefaultStart()
		if entry.Time != nil && isFinite(*entry.Time) && *entry.Time >= 0 {
			start = *entry.Time
		}
		return e.load(start)
	}

	if e.shuffle {
		e.vIdx = e.randomIndex()
	} else {
		e.vIdx = (e.vIdx - 1 + n) % n
	}
	e.rIdx = 0
	return e.load(e.CurrentStream().DefaultStart())
}

// NextSong advances one song, re-anchoring against the live timestamp
// first since the tracked index may be stale after a manual seek.
func (e *Engine) NextSong(now float64) Action {
	s := e.CurrentStream()
	if !s.Segmented() {
		// One implicit song: wrap to the start under stream loop,
		// otherwise there is nothing to step through.
		if e.loop == LoopStream {
			return e.seek(0)
		}
		return e.NextStream()
	}

	songs := s.Songs
	last := len(songs) - 1

	switch p := Classify(now, s); p.Context {
	case ContextBefore:
		// Never skip past the first song.
		e.rIdx = 0
		return e.songTransition(songs[0].Start)
	case ContextGap:
		e.rIdx = p.Index + 1
		return e.songTransition(songs[e.rIdx].Start)
	case ContextAfter:
		return e.streamEnd()
	default: // inside
		if p.Index < last {
			e.rIdx = p.Index + 1
			return e.songTransition(songs[e.rIdx].Start)
		}
		return e.streamEnd()
	}
}

// PrevSong steps back one song: restart the current song when far enough
// in, otherwise the previous song, wrapping or leaving the stream at the
// front edge.
func (e *Engine) PrevSong(now float64) Action {
	s := e.CurrentStream()
	if !s.Segmented() {
		if now < restartThreshold {
			return e.seek(0)
		}
		return e.PrevStream(false)
	}

	songs := s.Songs
	last := len(songs) - 1

	switch p := Classify(now, s); p.Context {
	case ContextBefore:
		return e.PrevStream(false)
	case ContextAfter:
		e.rIdx = last
		return e.songTransition(songs[last].Start)
	case ContextGap:
		e.rIdx = p.Index
		return e.songTransition(songs[p.Index].Start)
	default: // inside
		song := songs[p.Index]
		if now-song.Start > restartThreshold {
			e.rIdx = p.Index
			return e.songTransition(song.Start)
		}
		if p.Index > 0 {
			e.rIdx = p.Index - 1
			return e.songTransition(songs[e.rIdx].Start)
		}
		if e.loop == LoopStream {
			e.rIdx = last
			return e.wrapTransition(songs[last].Start)
		}
		return e.prevStreamLastSong()
	}
}

// prevStreamLastSong leaves the stream backwards, landing on the previous
// stream's last song. A history snapshot, when available, wins: it
// restores the exact position the listener left.
func (e *Engine) prevStreamLastSong() Action {
	if e.history.Len() > 0 {
		return e.PrevStream(false)
	}

	n := e.pl.Len()
	if e.shuffle {
		e.vIdx = e.randomIndex()
	} else {
		e.vIdx = (e.vIdx - 1 + n) % n
	}
	s := e.CurrentStream()
	if s.Segmented() {
		e.rIdx = len(s.Songs) - 1
		return e.load(s.Songs[e.rIdx].Start)
	}
	e.rIdx = 0
	return e.load(0)
}

// CheckTick enforces segment boundaries against the live timestamp. The
// host calls it on a fixed cadence while media is playing. A manual seek
// into an undefined gap is left alone; only re-synchronization and
// boundary advances come out of here.
func (e *Engine) CheckTick(now float64) Action {
	e.lastTime = now
	e.persist()

	s := e.CurrentStream()
	if !s.Segmented() {
		// Nothing to enforce; the natural end arrives via VideoEnded.
		return nil
	}

	songs := s.Songs
	last := len(songs) - 1
	e.rIdx = clamp(e.rIdx, 0, last)

	if e.yap {
		if p := Classify(now, s); p.Context != ContextNone {
			e.rIdx = p.Index
		}
		if now >= songs[last].End-endLead {
			return e.advanceAuto()
		}
		return nil
	}

	cur := songs[e.rIdx]

	// Hitting the tracked song's end bound.
	if now >= cur.End && now <= cur.End+endLead {
		if e.rIdx < last && songs[e.rIdx+1].Start-cur.End <= seamlessGap {
			// Seamless neighbors: playback flows on, no reload.
			e.rIdx++
			return nil
		}
		return e.advanceAuto()
	}

	// Drifted well outside the tracked song: re-sync if the timestamp
	// lands inside some song, otherwise leave playback alone.
	if now < cur.Start-driftTolerance || now > cur.End+driftTolerance {
		if p := Classify(now, s); p.Context == ContextInside {
			e.rIdx = p.Index
		}
		return nil
	}

	return nil
}

// VideoEnded handles the host's notification that the media reached its
// natural end.
func (e *Engine) VideoEnded() Action {
	return e.advanceAuto()
}

// advanceAuto decides what follows a finished song or stream.
func (e *Engine) advanceAuto() Action {
	s := e.CurrentStream()

	if e.loop == LoopTrack {
		start := e.CurrentSong().Start
		if e.yap || !s.Segmented() {
			return e.seek(start)
		}
		return e.seekReload(start)
	}

	if !s.Segmented() {
		if e.loop == LoopStream {
			return e.seek(0)
		}
		return e.NextStream()
	}

	last := len(s.Songs) - 1
	if e.rIdx < last {
		e.rIdx++
		return e.songTransition(s.Songs[e.rIdx].Start)
	}
	return e.streamEnd()
}

// streamEnd wraps within the stream under stream loop, otherwise moves on.
func (e *Engine) streamEnd() Action {
	s := e.CurrentStream()
	if e.loop == LoopStream {
		e.rIdx = 0
		return e.wrapTransition(s.Songs[0].Start)
	}
	return e.NextStream()
}

// NormalizeResumeTime clamps a raw resume timestamp to the nearest
// defensible playable position and re-anchors the tracked song index.
// Resuming inside a silent gap is never allowed: the time advances to the
// next song's start instead.
func (e *Engine) NormalizeResumeTime(t float64) float64 {
	if !isFinite(t) || t < 0 {
		t = 0
	}

	s := e.CurrentStream()
	if !s.Segmented() || e.yap {
		e.lastTime = t
		return t
	}

	switch p := Classify(t, s); p.Context {
	case ContextBefore:
		e.rIdx = 0
	case ContextInside:
		e.rIdx = p.Index
	case ContextGap:
		e.rIdx = p.Index + 1
		t = s.Songs[e.rIdx].Start
	case ContextAfter:
		e.rIdx = len(s.Songs) - 1
	}
	e.lastTime = t
	return t
}

// SanitizeStartTime validates a desired start time against a stream,
// falling back to the stream's default start when invalid.
func SanitizeStartTime(t float64, s *playlist.Stream) float64 {
	if s == nil {
		return 0
	}
	if !isFinite(t) || t < 0 {
		return s.DefaultStart()
	}
	return t
}

// randomIndex picks a uniformly random stream index different from the
// current one by rejection sampling. With a single stream the loop never
// runs and the current index comes back unchanged.
func (e *Engine) randomIndex() int {
	idx := e.vIdx
	for e.pl.Len() > 1 && idx == e.vIdx {
		idx = e.rng.Intn(e.pl.Len())
	}
	return idx
}

// load records the start position, persists, and issues a fresh bounded
// playback request through the host.
func (e *Engine) load(start float64) Action {
	e.lastTime = start
	e.persist()
	e.host.PlayVideo()
	return Load{Time: start}
}

// seek records the position, persists, and issues an in-place seek.
func (e *Engine) seek(start float64) Action {
	e.lastTime = start
	e.persist()
	e.host.SeekTo(start)
	return Seek{Time: start}
}

// seekReload is a seek that must re-apply the current song's end bound,
// which only a fresh playback request can do.
func (e *Engine) seekReload(start float64) Action {
	e.lastTime = start
	e.persist()
	e.host.PlayVideo()
	return SeekReload{Time: start}
}

// songTransition expresses a song-level move: an in-place seek in yap
// mode (the media stays loaded), a bounded reload otherwise.
func (e *Engine) songTransition(start float64) Action {
	if e.yap {
		return e.seek(start)
	}
	return e.load(start)
}

// wrapTransition expresses a stream-loop wrap, which in segmented mode
// carries the explicit reload flag because a new end bound applies.
func (e *Engine) wrapTransition(start float64) Action {
	if e.yap {
		return e.seek(start)
	}
	return e.seekReload(start)
}

func (e *Engine) persist() {
	e.host.SaveSettings(Settings{
		Yap:     e.yap,
		Loop:    e.loop,
		Shuffle: e.shuffle,
		VideoID: e.CurrentStream().VideoID,
		Index:   e.vIdx,
		Time:    e.lastTime,
	}.Encode())
}

func (e *Engine) saveSession() {
	e.host.SaveSession(map[string]string{SessionHistoryKey: e.history.Encode()})
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
