package game

import "time"

// Settings - тайминги и квоты координатора
type Settings struct {
	Cooldown         time.Duration // Минимальный интервал между принятыми спинами
	MinRoundDuration time.Duration // Минимальная длительность проигрышного раунда
	ReleaseFloor     time.Duration // Минимальная задержка снятия блокировки после проигрыша
	PopupDelay       time.Duration // Задержка окна выигрыша после остановки барабанов
	PersistTimeout   time.Duration // Таймаут сохранения выигрыша
	DefaultAttempts  int           // Суточная квота авторизованного игрока
	FrameRate        int           // Кадров в секунду
	IdleTTL          time.Duration // Через сколько простоя координатор выгружается
}

func DefaultSettings() Settings {
	return Settings{
		Cooldown:         5 * time.Second,
		MinRoundDuration: 6 * time.Second,
		ReleaseFloor:     500 * time.Millisecond,
		PopupDelay:       800 * time.Millisecond,
		PersistTimeout:   5 * time.Second,
		DefaultAttempts:  3,
		FrameRate:        60,
		IdleTTL:          10 * time.Minute,
	}
}

// FrameInterval - длительность одного кадра
func (s Settings) FrameInterval() time.Duration {
	if s.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.FrameRate)
}
