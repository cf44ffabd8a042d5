package model

// Состояние статистики автомата
type RoundState struct {
	TotalSpins  int // Сколько всего раундов завершено
	TotalWins   int // Сколько из них выигрышных
	TotalPayout int // Сумма всех выигрышей

	SymbolCounts map[string]int // Сколько раз символ выпал на барабанах

	SpinWindow []SpinResult // Окно последних раундов
	WindowSize int          // Размер окна
}

// Результат раунда для окна
type SpinResult struct {
	Payout int
	Win    bool
}
