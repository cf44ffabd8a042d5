package reel

import "time"

// Params - параметры анимации барабана. Скорости в пикселях за кадр
type Params struct {
	StripLength        int     // Длина ленты символов
	SymbolHeight       float64 // Высота символа в пикселях
	VisibleSymbols     int     // Сколько символов видно в окне
	MaxSpeed           float64
	Acceleration       float64
	DecayFactor        float64 // Множитель скорости при подходе к цели
	MinSpeedNearTarget float64 // Нижняя граница скорости при торможении, она же стартовая скорость
	VeryMinSpeed       float64 // Скорость последних пикселей перед остановкой
	MinFullSpins       int     // Минимум полных оборотов ленты до остановки

	StartStagger    time.Duration // Задержка старта на каждый следующий барабан
	MinFreeSpin     time.Duration // Минимальное время свободного вращения
	FreeSpinStagger time.Duration // Добавка к свободному вращению на каждый следующий барабан
	MinAnimation    time.Duration // Минимальный интервал между принятыми стартами
}

// DefaultParams - параметры по умолчанию
func DefaultParams() Params {
	return Params{
		StripLength:        30,
		SymbolHeight:       120,
		VisibleSymbols:     3,
		MaxSpeed:           50,
		Acceleration:       1.5,
		DecayFactor:        0.92,
		MinSpeedNearTarget: 1.0,
		VeryMinSpeed:       0.5,
		MinFullSpins:       2,

		StartStagger:    100 * time.Millisecond,
		MinFreeSpin:     time.Second,
		FreeSpinStagger: 300 * time.Millisecond,
		MinAnimation:    3 * time.Second,
	}
}

// centerSlot - индекс центральной видимой позиции
func (p Params) centerSlot() int {
	return p.VisibleSymbols / 2
}

// stopDistance - расстояние до цели, на котором начинается торможение
func (p Params) stopDistance() float64 {
	return p.SymbolHeight
}
