package player

// Mock is a test double for Interface with scriptable position and state.
type Mock struct {
	LoadCalls []LoadCall
	SeekCalls []float64

	Pos      float64
	Dur      float64
	PlayerSt State
	CurID    string
}

// LoadCall records one Load invocation.
type LoadCall struct {
	VideoID string
	Start   float64
	Bound   float64
}

// NewMock creates a mock player for tests.
func NewMock() *Mock {
	return &Mock{PlayerSt: Idle}
}

func (m *Mock) Load(videoID string, start, bound float64) {
	m.LoadCalls = append(m.LoadCalls, LoadCall{VideoID: videoID, Start: start, Bound: bound})
	m.CurID = videoID
	m.Pos = start
	m.PlayerSt = Playing
}

func (m *Mock) Seek(seconds float64) {
	m.SeekCalls = append(m.SeekCalls, seconds)
	m.Pos = seconds
}

func (m *Mock) Play()  { m.PlayerSt = Playing }
func (m *Mock) Pause() { m.PlayerSt = Paused }

func (m *Mock) Position() float64 { return m.Pos }
func (m *Mock) Duration() float64 { return m.Dur }
func (m *Mock) State() State      { return m.PlayerSt }
func (m *Mock) VideoID() string   { return m.CurID }
