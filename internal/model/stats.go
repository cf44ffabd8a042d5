package model

import "github.com/shopspring/decimal"

// SymbolStat - наблюдаемая и ожидаемая частота символа на барабанах
type SymbolStat struct {
	SymbolID string
	Observed int
	Expected float64
}

// StatsReport - сводка по сыгранным раундам
type StatsReport struct {
	TotalSpins    int
	TotalWins     int
	TotalPayout   int
	HitRate       decimal.Decimal // Доля выигрышных спинов
	ReturnPerSpin decimal.Decimal // Средняя выплата за спин
	WindowReturn  decimal.Decimal // Средняя выплата в окне последних спинов
	WindowSize    int
	Symbols       []SymbolStat
	ChiSquare     float64
	PValue        float64 // Согласие наблюдаемых частот с весами
}
