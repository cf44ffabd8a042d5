package slot

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"slot_machine/internal/model"
)

var (
	ErrEmptyCatalog  = errors.New("symbol catalog is empty")
	ErrInvalidWeight = errors.New("symbol weight must be positive")
	ErrNegativeValue = errors.New("symbol value must not be negative")
	ErrDuplicateID   = errors.New("duplicate symbol id")
)

// Table - таблица символов с весами и генератор результата спина
type Table struct {
	mtx     sync.Mutex
	rng     *rand.Rand
	symbols []model.Symbol
	total   float64
}

// NewTable проверяет каталог и создает таблицу.
// src - источник случайности, для воспроизводимых тестов передается с фиксированным seed
func NewTable(symbols []model.Symbol, src rand.Source) (*Table, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(symbols))
	var total float64
	for _, s := range symbols {
		if s.Weight <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidWeight, s.ID)
		}
		if s.Value < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeValue, s.ID)
		}
		if _, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = struct{}{}
		total += s.Weight
	}

	catalog := make([]model.Symbol, len(symbols))
	copy(catalog, symbols)

	return &Table{
		rng:     rand.New(src),
		symbols: catalog,
		total:   total,
	}, nil
}

// Symbols возвращает копию каталога в исходном порядке
func (t *Table) Symbols() []model.Symbol {
	out := make([]model.Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// TotalWeight - сумма весов каталога
func (t *Table) TotalWeight() float64 {
	return t.total
}

// Lookup ищет символ по ID
func (t *Table) Lookup(id string) (model.Symbol, bool) {
	for _, s := range t.symbols {
		if s.ID == id {
			return s, true
		}
	}
	return model.Symbol{}, false
}

// DrawWeightedSymbol выбирает символ пропорционально весу
func (t *Table) DrawWeightedSymbol() model.Symbol {
	t.mtx.Lock()
	draw := t.rng.Float64() * t.total
	t.mtx.Unlock()

	return pick(t.symbols, draw)
}

func pick(symbols []model.Symbol, draw float64) model.Symbol {
	var cumulative float64
	for _, s := range symbols {
		cumulative += s.Weight
		if draw < cumulative {
			return s
		}
	}
	// Попадание ровно на границу последнего веса
	return symbols[len(symbols)-1]
}

// Spin разыгрывает три независимых символа и оценивает выигрыш
func (t *Table) Spin() model.SpinResult {
	var res model.SpinResult
	for i := range res.Symbols {
		res.Symbols[i] = t.DrawWeightedSymbol()
	}
	res.WinAmount, res.WinningLabel = EvaluateWin(res.Symbols)
	return res
}

// EvaluateWin - выигрыш только при трех одинаковых ID.
// Две совпавших из трех всегда проигрыш
func EvaluateWin(symbols [model.ReelCount]model.Symbol) (int, string) {
	first := symbols[0]
	for _, s := range symbols[1:] {
		if s.ID != first.ID {
			return 0, ""
		}
	}

	label := first.WinningLabel
	if label == "" {
		label = "3x " + first.Name
	}
	return first.Value, label
}
