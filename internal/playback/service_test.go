package playback

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/louvel/streamradio/internal/player"
	"github.com/louvel/streamradio/internal/playlist"
	"github.com/louvel/streamradio/internal/radio"
)

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (m *memStore) SaveSettings(values map[string]string) {
	for k, v := range values {
		m.values[k] = v
	}
}

func (m *memStore) LoadSettings() map[string]string { return m.values }

func (m *memStore) SaveSession(values map[string]string) {
	for k, v := range values {
		m.values[k] = v
	}
}

func (m *memStore) LoadSession() map[string]string { return m.values }

func testPlaylist(t *testing.T) *playlist.Playlist {
	t.Helper()
	pl, err := playlist.New([]playlist.Stream{
		{
			VideoID: "vid-a",
			Name:    "a",
			Title:   "Stream A",
			Songs: []playlist.Song{
				{Name: "a-one", Start: 0, End: 10},
				{Name: "a-two", Start: 20, End: 30},
			},
		},
		{
			VideoID: "vid-b",
			Name:    "b",
			Title:   "Stream B",
		},
	})
	require.NoError(t, err)
	return pl
}

func newTestService(t *testing.T, store *memStore) (*Service, *player.Mock) {
	t.Helper()
	mock := player.NewMock()
	svc, err := New(testPlaylist(t), mock, store, newMemStore())
	require.NoError(t, err)
	return svc, mock
}

func TestStart_FreshLoadsFirstSong(t *testing.T) {
	svc, mock := newTestService(t, newMemStore())
	svc.Start()

	require.Len(t, mock.LoadCalls, 1)
	require.Equal(t, "vid-a", mock.LoadCalls[0].VideoID)
	require.Equal(t, 0.0, mock.LoadCalls[0].Start)
	require.Equal(t, 10.0, mock.LoadCalls[0].Bound)
}

func TestStart_ResumesPersistedPosition(t *testing.T) {
	store := newMemStore()
	store.values["videoId"] = "vid-a"
	store.values["time"] = "25"

	svc, mock := newTestService(t, store)
	svc.Start()

	require.Len(t, mock.LoadCalls, 1)
	require.Equal(t, 25.0, mock.LoadCalls[0].Start)
	require.Equal(t, 30.0, mock.LoadCalls[0].Bound)
}

func TestStart_GapResumeSnapsForward(t *testing.T) {
	store := newMemStore()
	store.values["videoId"] = "vid-a"
	store.values["time"] = "15"

	svc, mock := newTestService(t, store)
	svc.Start()

	require.Len(t, mock.LoadCalls, 1)
	require.Equal(t, 20.0, mock.LoadCalls[0].Start)
	require.Equal(t, 30.0, mock.LoadCalls[0].Bound)
}

func TestTick_BoundaryAdvance(t *testing.T) {
	svc, mock := newTestService(t, newMemStore())
	svc.Start()

	mock.Pos = 10.1
	svc.Tick()

	require.Len(t, mock.LoadCalls, 2)
	require.Equal(t, 20.0, mock.LoadCalls[1].Start)
	require.Equal(t, 30.0, mock.LoadCalls[1].Bound)
	require.Equal(t, 1, svc.engine.SongIndex())
}

func TestTick_IgnoresMidSong(t *testing.T) {
	svc, mock := newTestService(t, newMemStore())
	svc.Start()

	mock.Pos = 5
	svc.Tick()
	mock.Pos = 9.9
	svc.Tick()

	require.Len(t, mock.LoadCalls, 1)
}

func TestTick_EndedAdvances(t *testing.T) {
	svc, mock := newTestService(t, newMemStore())
	svc.Start()

	mock.PlayerSt = player.Ended
	svc.Tick()

	require.Len(t, mock.LoadCalls, 2)
	require.Equal(t, 1, svc.engine.SongIndex())
}

func TestTick_RecordsDuration(t *testing.T) {
	svc, mock := newTestService(t, newMemStore())
	svc.Start()
	svc.NextStream() // vid-b has no segments

	mock.Dur = 321
	mock.Pos = 42
	svc.Tick()

	require.Equal(t, 321.0, svc.CurrentSong().End)
}

func TestTick_PersistsPosition(t *testing.T) {
	store := newMemStore()
	svc, mock := newTestService(t, store)
	svc.Start()

	mock.Pos = 7.5
	svc.Tick()

	require.Equal(t, "7.5", store.values["time"])
}

func TestNavigation_EmitsStreamChange(t *testing.T) {
	svc, _ := newTestService(t, newMemStore())
	sub := svc.Subscribe()
	svc.Start()

	<-sub.StreamChanged // start event

	svc.NextStream()
	e := <-sub.StreamChanged
	require.Equal(t, "vid-b", e.VideoID)
	require.Equal(t, 1, e.StreamIndex)
}

func TestToggles_EmitModeChange(t *testing.T) {
	svc, _ := newTestService(t, newMemStore())
	sub := svc.Subscribe()

	svc.ToggleYap()
	e := <-sub.ModeChanged
	require.True(t, e.Yap)

	svc.CycleLoop()
	e = <-sub.ModeChanged
	require.Equal(t, radio.LoopTrack, e.Loop)

	svc.ToggleShuffle()
	e = <-sub.ModeChanged
	require.True(t, e.Shuffle)
}

func TestTick_EmitsStatusOnChange(t *testing.T) {
	svc, mock := newTestService(t, newMemStore())
	sub := svc.Subscribe()
	svc.Start()

	mock.Pos = 5
	svc.Tick()
	first := <-sub.StatusChanged
	require.Equal(t, "a-one (1/2)", first.Text)

	// Same text again: no second event.
	svc.Tick()
	select {
	case e := <-sub.StatusChanged:
		t.Fatalf("unexpected status event %q", e.Text)
	default:
	}
}

func TestPlayPause(t *testing.T) {
	svc, mock := newTestService(t, newMemStore())
	svc.Start()

	require.Equal(t, player.Playing, mock.PlayerSt)
	svc.PlayPause()
	require.Equal(t, player.Paused, mock.PlayerSt)
	svc.PlayPause()
	require.Equal(t, player.Playing, mock.PlayerSt)
}

func TestClose_SignalsSubscribers(t *testing.T) {
	svc, _ := newTestService(t, newMemStore())
	sub := svc.Subscribe()

	require.NoError(t, svc.Close())
	select {
	case <-sub.Done:
	default:
		t.Fatal("Done should be closed")
	}

	require.NoError(t, svc.Close())
}
