package stats_repo

import (
	"sync"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	repoModel "slot_machine/internal/repository/stats_repo/model"
)

const (
	// windowSize Количество последних раундов для оконной статистики
	windowSize = 500
	// ratePrecision Знаков после запятой в долях и средних
	ratePrecision = 4
)

// StateRepo Хранилище статистики раундов в памяти
type StateRepo struct {
	mtx     sync.RWMutex
	state   repoModel.RoundState
	catalog []model.Symbol
}

// NewStatsRepository Конструктор с пустой статистикой по каталогу символов
func NewStatsRepository(catalog []model.Symbol) repository.StatsRepository {
	counts := make(map[string]int, len(catalog))
	for _, s := range catalog {
		counts[s.ID] = 0
	}

	symbols := make([]model.Symbol, len(catalog))
	copy(symbols, catalog)

	return &StateRepo{
		state: repoModel.RoundState{
			SymbolCounts: counts,
			SpinWindow:   make([]repoModel.SpinResult, 0, windowSize),
			WindowSize:   windowSize,
		},
		catalog: symbols,
	}
}

// RecordRound Обновление статистики после завершения раунда
func (r *StateRepo) RecordRound(result model.SpinResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	win := result.WinAmount > 0
	r.state.TotalSpins++
	r.state.TotalPayout += result.WinAmount
	if win {
		r.state.TotalWins++
	}

	for _, s := range result.Symbols {
		r.state.SymbolCounts[s.ID]++
	}

	// Добавляем раунд в окно и поддерживаем его размер
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Payout: result.WinAmount,
		Win:    win,
	})
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}
}

// Report Сводка: доля выигрышей, средняя выплата и согласие частот символов с весами
func (r *StateRepo) Report() model.StatsReport {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	report := model.StatsReport{
		TotalSpins:    r.state.TotalSpins,
		TotalWins:     r.state.TotalWins,
		TotalPayout:   r.state.TotalPayout,
		HitRate:       ratio(r.state.TotalWins, r.state.TotalSpins),
		ReturnPerSpin: ratio(r.state.TotalPayout, r.state.TotalSpins),
		WindowSize:    len(r.state.SpinWindow),
		PValue:        1,
	}

	var windowPayout int
	for _, spin := range r.state.SpinWindow {
		windowPayout += spin.Payout
	}
	report.WindowReturn = ratio(windowPayout, len(r.state.SpinWindow))

	var totalWeight float64
	var draws int
	for _, s := range r.catalog {
		totalWeight += s.Weight
		draws += r.state.SymbolCounts[s.ID]
	}

	observed := make([]float64, len(r.catalog))
	expected := make([]float64, len(r.catalog))
	for i, s := range r.catalog {
		observed[i] = float64(r.state.SymbolCounts[s.ID])
		expected[i] = float64(draws) * s.Weight / totalWeight
		report.Symbols = append(report.Symbols, model.SymbolStat{
			SymbolID: s.ID,
			Observed: r.state.SymbolCounts[s.ID],
			Expected: expected[i],
		})
	}

	// Хи-квадрат имеет смысл только при наличии розыгрышей и хотя бы двух символах
	if draws > 0 && len(r.catalog) > 1 {
		report.ChiSquare = stat.ChiSquare(observed, expected)
		dist := distuv.ChiSquared{K: float64(len(r.catalog) - 1)}
		report.PValue = 1 - dist.CDF(report.ChiSquare)
	}

	return report
}

func ratio(num, den int) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(num)).
		DivRound(decimal.NewFromInt(int64(den)), ratePrecision)
}
