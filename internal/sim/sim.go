package sim

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/reel"
	"slot_machine/internal/repository"
	"slot_machine/internal/slot"
)

// Options - параметры прогона без UI
type Options struct {
	Spins     int
	Seed      uint64
	Params    reel.Params
	FrameRate int
	MaxFrames int // Предел кадров на один спин
}

// Result - итог прогона
type Result struct {
	Spins       int
	Mislandings int // Барабан остановился не на выпавшем символе
	Stuck       int // Спин не завершился за MaxFrames
	MaxFrames   int // Самый долгий спин в кадрах
	AvgFrames   float64
	Report      model.StatsReport
}

// Run крутит барабаны по синтетическим часам и сверяет остановку с розыгрышем.
// progress вызывается после каждого спина
func Run(catalog []model.Symbol, stats repository.StatsRepository, opts Options, progress func()) (Result, error) {
	if opts.Spins <= 0 {
		return Result{}, fmt.Errorf("spins must be positive, got %d", opts.Spins)
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = 2000
	}

	table, err := slot.NewTable(catalog, rand.NewPCG(opts.Seed, opts.Seed^0x5eed))
	if err != nil {
		return Result{}, err
	}

	completions := make(chan model.ReelCompletion, 2*model.ReelCount)
	reels := make([]*reel.Reel, model.ReelCount)
	for i := range reels {
		src := rand.NewPCG(opts.Seed+uint64(i)+1, opts.Seed)
		reels[i] = reel.New(i, catalog, opts.Params, src, completions, zap.NewNop())
	}

	frame := time.Second / time.Duration(opts.FrameRate)
	now := time.Unix(0, 0)
	var res Result
	totalFrames := 0

	for spin := 1; spin <= opts.Spins; spin++ {
		result := table.Spin()
		spinID := int64(spin)
		for i, r := range reels {
			if err := r.StartSpinning(result.Symbols[i], spinID, now); err != nil {
				return res, fmt.Errorf("spin %d reel %d: %w", spin, i, err)
			}
		}

		done := 0
		frames := 0
		for done < model.ReelCount && frames < opts.MaxFrames {
			now = now.Add(frame)
			frames++
			for _, r := range reels {
				r.Step(now)
			}
			for drained := false; !drained; {
				select {
				case c := <-completions:
					if c.SpinID == spinID {
						done++
					}
				default:
					drained = true
				}
			}
		}

		if done < model.ReelCount {
			res.Stuck++
		}
		for i, r := range reels {
			if r.CenterSymbol().ID != result.Symbols[i].ID {
				res.Mislandings++
			}
		}
		totalFrames += frames
		res.MaxFrames = max(res.MaxFrames, frames)
		stats.RecordRound(result)
		res.Spins++

		// Следующий старт не раньше минимального интервала анимации
		now = now.Add(opts.Params.MinAnimation)
		if progress != nil {
			progress()
		}
	}

	res.AvgFrames = float64(totalFrames) / float64(res.Spins)
	res.Report = stats.Report()
	return res, nil
}
