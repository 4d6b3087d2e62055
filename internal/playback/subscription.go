package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber. Sends never
// block: events are dropped when a subscriber falls behind.
type Subscription struct {
	StreamChanged <-chan StreamChange
	ModeChanged   <-chan ModeChange
	StatusChanged <-chan StatusChange
	Done          <-chan struct{}

	streamCh chan StreamChange
	modeCh   chan ModeChange
	statusCh chan StatusChange
	doneCh   chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		streamCh: make(chan StreamChange, eventBufferSize),
		modeCh:   make(chan ModeChange, eventBufferSize),
		statusCh: make(chan StatusChange, eventBufferSize),
		doneCh:   make(chan struct{}),
	}
	s.StreamChanged = s.streamCh
	s.ModeChanged = s.modeCh
	s.StatusChanged = s.statusCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendStream(e StreamChange) {
	select {
	case s.streamCh <- e:
	default:
	}
}

func (s *Subscription) sendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
	}
}

func (s *Subscription) sendStatus(e StatusChange) {
	select {
	case s.statusCh <- e:
	default:
	}
}
