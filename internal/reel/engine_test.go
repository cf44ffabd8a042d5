package reel

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"slot_machine/internal/model"
	"slot_machine/internal/slot"
)

const (
	frame     = 16 * time.Millisecond
	maxFrames = 2000
)

// runUntilComplete крутит кадры до сигнала остановки и возвращает число кадров
func runUntilComplete(t *testing.T, r *Reel, sink <-chan model.ReelCompletion, now time.Time) (model.ReelCompletion, time.Time, int) {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		now = now.Add(frame)
		r.Step(now)
		select {
		case c := <-sink:
			return c, now, i
		default:
		}
	}
	t.Fatalf("reel %d did not land within %d frames (pos %.2f, speed %.2f)", r.id, maxFrames, r.position, r.speed)
	return model.ReelCompletion{}, now, 0
}

func TestBuildStripContainsEverySymbol(t *testing.T) {
	catalog := slot.DefaultCatalog()
	rng := rand.New(rand.NewPCG(1, 2))
	for _, length := range []int{3, 7, 30, 31} {
		strip := buildStrip(catalog, length, rng)
		want := length
		if want < len(catalog) {
			want = len(catalog)
		}
		if len(strip) != want {
			t.Fatalf("length %d: strip has %d symbols", length, len(strip))
		}
		for _, s := range catalog {
			if indexOf(strip, s.ID) < 0 {
				t.Fatalf("length %d: symbol %s missing from strip", length, s.ID)
			}
		}
	}
}

func TestLandsOnTargetForRandomTriples(t *testing.T) {
	catalog := slot.DefaultCatalog()
	params := DefaultParams()
	seeds := rand.New(rand.NewPCG(2024, 10))

	for i := 0; i < 1000; i++ {
		sink := make(chan model.ReelCompletion, 1)
		id := seeds.IntN(model.ReelCount)
		r := New(id, catalog, params, rand.NewPCG(seeds.Uint64(), seeds.Uint64()), sink, zap.NewNop())

		r.position = seeds.Float64() * r.stripHeight
		target := r.strip[seeds.IntN(len(r.strip))]
		spinID := int64(i + 1)

		start := time.Unix(1700000000, 0)
		if err := r.StartSpinning(target, spinID, start); err != nil {
			t.Fatalf("triple %d: start: %v", i, err)
		}

		c, now, _ := runUntilComplete(t, r, sink, start)
		if c.ReelID != id || c.SpinID != spinID {
			t.Fatalf("triple %d: unexpected completion %+v", i, c)
		}
		if got := r.CenterSymbol().ID; got != target.ID {
			t.Fatalf("triple %d: landed on %s, want %s", i, got, target.ID)
		}
		if rem := math.Mod(r.position, params.SymbolHeight); rem != 0 {
			t.Fatalf("triple %d: landed off grid, remainder %.4f", i, rem)
		}
		if r.assetsLoaded {
			t.Fatalf("triple %d: assets must not be required for landing", i)
		}

		// Повторного сигнала быть не должно
		for j := 0; j < 100; j++ {
			now = now.Add(frame)
			r.Step(now)
		}
		select {
		case extra := <-sink:
			t.Fatalf("triple %d: second completion %+v", i, extra)
		default:
		}
	}
}

func TestStartRejectedWhileBusy(t *testing.T) {
	catalog := slot.DefaultCatalog()
	params := DefaultParams()
	sink := make(chan model.ReelCompletion, 2)
	r := New(0, catalog, params, rand.NewPCG(7, 7), sink, zaptest.NewLogger(t))

	start := time.Unix(1700000000, 0)
	if err := r.StartSpinning(catalog[0], 1, start); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := r.StartSpinning(catalog[1], 2, start.Add(frame)); !errors.Is(err, ErrBusy) {
		t.Fatalf("start while animating: expected ErrBusy, got %v", err)
	}

	c, now, _ := runUntilComplete(t, r, sink, start)
	if c.SpinID != 1 {
		t.Fatalf("completion carries spin %d, want 1", c.SpinID)
	}

	if now.Sub(start) < params.MinAnimation {
		if err := r.StartSpinning(catalog[1], 2, now); !errors.Is(err, ErrBusy) {
			t.Fatalf("start before minimum animation time: expected ErrBusy, got %v", err)
		}
	}

	if err := r.StartSpinning(catalog[1], 2, start.Add(params.MinAnimation)); err != nil {
		t.Fatalf("start after minimum animation time: %v", err)
	}
	c, _, _ = runUntilComplete(t, r, sink, start.Add(params.MinAnimation))
	if c.SpinID != 2 || r.CenterSymbol().ID != catalog[1].ID {
		t.Fatalf("second spin: completion %+v, center %s", c, r.CenterSymbol().ID)
	}
}

func TestMissingSymbolStillLands(t *testing.T) {
	sink := make(chan model.ReelCompletion, 1)
	r := New(1, slot.DefaultCatalog(), DefaultParams(), rand.NewPCG(3, 4), sink, zaptest.NewLogger(t))

	start := time.Unix(1700000000, 0)
	if err := r.StartSpinning(model.Symbol{ID: "unknown"}, 9, start); err != nil {
		t.Fatalf("start: %v", err)
	}
	c, _, _ := runUntilComplete(t, r, sink, start)
	if c.SpinID != 9 || r.Animating() {
		t.Fatalf("unexpected state after landing: %+v animating=%v", c, r.Animating())
	}
}

func TestStartStaggerDelaysMotion(t *testing.T) {
	params := DefaultParams()
	sink := make(chan model.ReelCompletion, 1)
	r := New(2, slot.DefaultCatalog(), params, rand.NewPCG(5, 6), sink, zap.NewNop())

	start := time.Unix(1700000000, 0)
	_ = r.StartSpinning(slot.DefaultCatalog()[0], 1, start)
	before := r.position

	r.Step(start.Add(2*params.StartStagger - time.Millisecond))
	if r.position != before {
		t.Fatalf("reel 2 moved before its start delay")
	}
	r.Step(start.Add(2 * params.StartStagger))
	if r.position == before {
		t.Fatalf("reel 2 did not move after its start delay")
	}
}

func TestVisibleWindow(t *testing.T) {
	params := DefaultParams()
	sink := make(chan model.ReelCompletion, 1)
	r := New(0, slot.DefaultCatalog(), params, rand.NewPCG(8, 8), sink, zap.NewNop())

	r.position = 4*params.SymbolHeight + 30
	visible, offset := r.Visible()
	if len(visible) != params.VisibleSymbols+1 {
		t.Fatalf("visible has %d symbols", len(visible))
	}
	if offset != 30 {
		t.Fatalf("offset %.2f, want 30", offset)
	}
	if visible[0].ID != r.strip[4].ID || r.CenterSymbol().ID != r.strip[5].ID {
		t.Fatalf("window does not start at strip index 4")
	}

	view := r.View()
	if view.Center != r.strip[5].ID || len(view.Symbols) != len(visible) {
		t.Fatalf("unexpected view %+v", view)
	}
}
