package sound

import (
	"sync"

	"go.uber.org/zap"

	"slot_machine/internal/service"
)

// Звуковые дорожки автомата
const (
	TrackSpin = "spin"
	TrackWin  = "win"
)

type serv struct {
	mtx     sync.Mutex
	logger  *zap.Logger
	current string
}

// NewSoundPlayer создает проигрыватель, который отдает текущую дорожку клиенту
func NewSoundPlayer(logger *zap.Logger) service.SoundPlayer {
	return &serv{logger: logger}
}

// PlayLoop включает дорожку по кругу, предыдущая останавливается
func (s *serv) PlayLoop(track string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.current == track {
		return
	}
	s.current = track
	s.logger.Debug("sound loop", zap.String("track", track))
}

func (s *serv) StopAll() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.current == "" {
		return
	}
	s.logger.Debug("sound stopped", zap.String("track", s.current))
	s.current = ""
}

func (s *serv) Current() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.current
}
