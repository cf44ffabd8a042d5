package model

import "time"

// Количество барабанов в автомате
const ReelCount = 3

// SpinResult - результат розыгрыша одного спина
type SpinResult struct {
	Symbols      [ReelCount]Symbol
	WinAmount    int
	WinningLabel string // Пустая строка, если выигрыша нет
}

// SymbolIDs возвращает ID выпавших символов по порядку барабанов
func (r SpinResult) SymbolIDs() []string {
	ids := make([]string, 0, ReelCount)
	for _, s := range r.Symbols {
		ids = append(ids, s.ID)
	}
	return ids
}

// SpinSession - текущий раунд координатора
type SpinSession struct {
	SpinID    int64
	Result    SpinResult
	Completed map[int]struct{} // Индексы барабанов, сообщивших об остановке
	StartedAt time.Time
}

// Settled - все барабаны остановились
func (s *SpinSession) Settled() bool {
	return len(s.Completed) >= ReelCount
}

// ReelCompletion - сигнал барабана об остановке на цели
type ReelCompletion struct {
	ReelID int
	SpinID int64
}
