package sound

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestPlayLoopAndStop(t *testing.T) {
	p := NewSoundPlayer(zaptest.NewLogger(t))
	if p.Current() != "" {
		t.Fatalf("new player should be silent")
	}

	p.PlayLoop(TrackSpin)
	p.PlayLoop(TrackWin)
	if p.Current() != TrackWin {
		t.Fatalf("current track %q, want %q", p.Current(), TrackWin)
	}

	p.StopAll()
	p.StopAll()
	if p.Current() != "" {
		t.Fatalf("track %q still playing after StopAll", p.Current())
	}
}
