package slot

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"slot_machine/internal/model"
)

func testSymbols() []model.Symbol {
	return []model.Symbol{
		{ID: "a", Name: "Apple", Weight: 1, Value: 100, WinningLabel: "JACKPOT!"},
		{ID: "b", Name: "Banana", Weight: 2.5, Value: 20},
		{ID: "c", Name: "Cherry", Weight: 6.5, Value: 5},
	}
}

func TestNewTableValidation(t *testing.T) {
	cases := []struct {
		name    string
		symbols []model.Symbol
		want    error
	}{
		{"empty", nil, ErrEmptyCatalog},
		{"zero weight", []model.Symbol{{ID: "a", Weight: 0}}, ErrInvalidWeight},
		{"negative weight", []model.Symbol{{ID: "a", Weight: -1}}, ErrInvalidWeight},
		{"negative value", []model.Symbol{{ID: "a", Weight: 1, Value: -5}}, ErrNegativeValue},
		{"duplicate", []model.Symbol{{ID: "a", Weight: 1}, {ID: "a", Weight: 2}}, ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.symbols, rand.NewPCG(1, 1))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDrawWeightedSymbolConverges(t *testing.T) {
	for _, catalog := range [][]model.Symbol{testSymbols(), DefaultCatalog()} {
		table, err := NewTable(catalog, rand.NewPCG(42, 7))
		if err != nil {
			t.Fatalf("new table: %v", err)
		}

		const draws = 200000
		counts := make(map[string]int)
		for i := 0; i < draws; i++ {
			counts[table.DrawWeightedSymbol().ID]++
		}

		for _, s := range catalog {
			want := s.Weight / table.TotalWeight()
			got := float64(counts[s.ID]) / draws
			if math.Abs(got-want) > 0.01 {
				t.Fatalf("symbol %s: frequency %.4f, want %.4f", s.ID, got, want)
			}
		}
	}
}

func TestDrawIsDeterministicForSeed(t *testing.T) {
	a, _ := NewTable(DefaultCatalog(), rand.NewPCG(3, 9))
	b, _ := NewTable(DefaultCatalog(), rand.NewPCG(3, 9))
	for i := 0; i < 100; i++ {
		if x, y := a.DrawWeightedSymbol().ID, b.DrawWeightedSymbol().ID; x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
	}
}

func TestPickBoundaries(t *testing.T) {
	symbols := testSymbols()
	if got := pick(symbols, 0); got.ID != "a" {
		t.Fatalf("draw 0: got %s", got.ID)
	}
	if got := pick(symbols, 1); got.ID != "b" {
		t.Fatalf("draw on first boundary: got %s", got.ID)
	}
	// Ровно на сумме весов и за ней - последний символ
	if got := pick(symbols, 10); got.ID != "c" {
		t.Fatalf("draw on total: got %s", got.ID)
	}
	if got := pick(symbols, math.Nextafter(10, 11)); got.ID != "c" {
		t.Fatalf("draw past total: got %s", got.ID)
	}
}

func TestEvaluateWin(t *testing.T) {
	symbols := testSymbols()
	a, b := symbols[0], symbols[1]

	amount, label := EvaluateWin([3]model.Symbol{a, a, a})
	if amount != 100 || label != "JACKPOT!" {
		t.Fatalf("three of a kind: got (%d, %q)", amount, label)
	}

	amount, label = EvaluateWin([3]model.Symbol{b, b, b})
	if amount != 20 || label != "3x Banana" {
		t.Fatalf("fallback label: got (%d, %q)", amount, label)
	}

	for _, combo := range [][3]model.Symbol{{a, a, b}, {a, b, a}, {b, a, a}, {b, b, a}, {b, a, b}, {a, b, b}} {
		amount, label := EvaluateWin(combo)
		if amount != 0 || label != "" {
			t.Fatalf("two of three %s%s%s: got (%d, %q)", combo[0].ID, combo[1].ID, combo[2].ID, amount, label)
		}
	}
}

func TestEvaluateWinMatchesByID(t *testing.T) {
	a := model.Symbol{ID: "x", Name: "Same", Value: 10}
	b := model.Symbol{ID: "y", Name: "Same", Value: 10}
	if amount, _ := EvaluateWin([3]model.Symbol{a, a, b}); amount != 0 {
		t.Fatalf("symbols with equal names but different ids must not win, got %d", amount)
	}
}

func TestSpinConsistency(t *testing.T) {
	table, _ := NewTable(DefaultCatalog(), rand.NewPCG(5, 5))
	for i := 0; i < 5000; i++ {
		res := table.Spin()
		amount, label := EvaluateWin(res.Symbols)
		if res.WinAmount != amount || res.WinningLabel != label {
			t.Fatalf("spin %d: result %+v disagrees with evaluation (%d, %q)", i, res, amount, label)
		}
	}
}
