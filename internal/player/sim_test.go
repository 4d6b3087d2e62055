package player

import (
	"testing"
	"time"
)

func TestSim_LoadAndPosition(t *testing.T) {
	p := NewSim(map[string]float64{"vid": 100})

	p.Load("vid", 10, 0)
	if p.State() != Playing {
		t.Fatalf("State() = %v, want Playing", p.State())
	}
	if pos := p.Position(); pos < 10 || pos > 11 {
		t.Errorf("Position() = %v, want ~10", pos)
	}
	if p.Duration() != 100 {
		t.Errorf("Duration() = %v, want 100", p.Duration())
	}
}

func TestSim_BoundEndsPlayback(t *testing.T) {
	p := NewSim(map[string]float64{"vid": 100})

	p.Load("vid", 5, 5.001)
	time.Sleep(10 * time.Millisecond)

	if p.State() != Ended {
		t.Fatalf("State() = %v, want Ended at bound", p.State())
	}
	if pos := p.Position(); pos != 5.001 {
		t.Errorf("Position() = %v, want pinned at bound", pos)
	}
}

func TestSim_PauseHoldsPosition(t *testing.T) {
	p := NewSim(map[string]float64{"vid": 100})
	p.Load("vid", 0, 0)
	p.Pause()

	pos := p.Position()
	time.Sleep(5 * time.Millisecond)
	if got := p.Position(); got != pos {
		t.Errorf("Position() moved while paused: %v then %v", pos, got)
	}

	p.Play()
	if p.State() != Playing {
		t.Errorf("State() = %v after Play, want Playing", p.State())
	}
}

func TestSim_SeekRestartsEnded(t *testing.T) {
	p := NewSim(map[string]float64{"vid": 100})
	p.Load("vid", 0, 0.001)
	time.Sleep(5 * time.Millisecond)
	if p.State() != Ended {
		t.Fatalf("State() = %v, want Ended", p.State())
	}

	p.Seek(50)
	if p.State() != Playing {
		t.Errorf("State() = %v after seek, want Playing", p.State())
	}
}

func TestSim_UnknownVideo(t *testing.T) {
	p := NewSim(nil)
	p.Load("mystery", 0, 0)

	// No duration and no bound: plays on without ending.
	time.Sleep(5 * time.Millisecond)
	if p.State() != Playing {
		t.Errorf("State() = %v, want Playing", p.State())
	}
	if p.Duration() != 0 {
		t.Errorf("Duration() = %v, want 0 for unknown video", p.Duration())
	}
}
