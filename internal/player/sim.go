package player

import "time"

// Sim is a wall-clock simulated player used by the TUI host: position
// advances in real time while playing and playback ends at the requested
// bound, just like a remote media element honoring a stop time.
type Sim struct {
	durations map[string]float64

	videoID string
	state   State
	bound   float64

	anchorPos  float64
	anchorWall time.Time
}

// NewSim builds a simulated player. durations maps video ids to their
// full media length in seconds; unknown videos report duration 0.
func NewSim(durations map[string]float64) *Sim {
	if durations == nil {
		durations = map[string]float64{}
	}
	return &Sim{durations: durations, state: Idle}
}

func (p *Sim) Load(videoID string, start, bound float64) {
	p.videoID = videoID
	p.bound = bound
	p.anchorPos = start
	p.anchorWall = time.Now()
	p.state = Playing
}

func (p *Sim) Seek(seconds float64) {
	if p.videoID == "" {
		return
	}
	p.anchorPos = seconds
	p.anchorWall = time.Now()
	if p.state == Ended {
		p.state = Playing
	}
}

func (p *Sim) Play() {
	if p.state == Paused || p.state == Ended {
		p.anchorWall = time.Now()
		p.state = Playing
	}
}

func (p *Sim) Pause() {
	if p.state == Playing {
		p.anchorPos = p.Position()
		p.state = Paused
	}
}

// Position returns the current playback position, transitioning to Ended
// when the bound or the media end is reached.
func (p *Sim) Position() float64 {
	pos := p.anchorPos
	if p.state == Playing {
		pos += time.Since(p.anchorWall).Seconds()
	}

	limit := p.limit()
	if limit > 0 && pos >= limit {
		pos = limit
		if p.state == Playing {
			p.anchorPos = limit
			p.anchorWall = time.Now()
			p.state = Ended
		}
	}
	return pos
}

func (p *Sim) limit() float64 {
	dur := p.durations[p.videoID]
	if p.bound > 0 && (dur <= 0 || p.bound < dur) {
		return p.bound
	}
	return dur
}

func (p *Sim) Duration() float64 {
	return p.durations[p.videoID]
}

func (p *Sim) State() State {
	p.Position() // settle a reached bound
	return p.state
}

func (p *Sim) VideoID() string {
	return p.videoID
}
