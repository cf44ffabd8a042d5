package reel

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/model"
)

// ErrBusy - барабан еще крутится или с прошлого старта прошло слишком мало времени
var ErrBusy = errors.New("reel is busy")

// Reel - движок одного барабана.
// Не потокобезопасен: владелец вызывает методы из одной горутины или под своим мьютексом
type Reel struct {
	id     int
	params Params
	rng    *rand.Rand
	logger *zap.Logger
	sink   chan<- model.ReelCompletion

	strip       []model.Symbol
	stripHeight float64

	position float64
	speed    float64
	target   *float64

	pending   model.Symbol
	animating bool
	spinID    int64
	lastStart time.Time
	motionAt  time.Time // Начало движения с учетом задержки барабана
	commitAt  time.Time // Когда заканчивается свободное вращение

	assetsLoaded bool
}

// New создает барабан с перемешанной лентой из каталога.
// Сигнал об остановке отправляется в sink, ровно один на каждый принятый старт
func New(id int, catalog []model.Symbol, params Params, src rand.Source, sink chan<- model.ReelCompletion, logger *zap.Logger) *Reel {
	rng := rand.New(src)
	strip := buildStrip(catalog, params.StripLength, rng)

	return &Reel{
		id:          id,
		params:      params,
		rng:         rng,
		logger:      logger.With(zap.Int("reel", id)),
		sink:        sink,
		strip:       strip,
		stripHeight: float64(len(strip)) * params.SymbolHeight,
	}
}

func (r *Reel) ID() int {
	return r.id
}

// Strip возвращает копию ленты
func (r *Reel) Strip() []model.Symbol {
	out := make([]model.Symbol, len(r.strip))
	copy(out, r.strip)
	return out
}

// MarkAssetsLoaded отмечает готовность картинок. На движение не влияет
func (r *Reel) MarkAssetsLoaded() {
	r.assetsLoaded = true
}

func (r *Reel) Animating() bool {
	return r.animating
}

// StartSpinning запускает свободное вращение с последующей остановкой на target
func (r *Reel) StartSpinning(target model.Symbol, spinID int64, now time.Time) error {
	if r.animating {
		r.logger.Warn("start rejected, reel is animating",
			zap.Int64("spin_id", spinID), zap.Int64("active_spin_id", r.spinID))
		return ErrBusy
	}
	if !r.lastStart.IsZero() && now.Sub(r.lastStart) < r.params.MinAnimation {
		r.logger.Warn("start rejected, minimum animation time not elapsed",
			zap.Int64("spin_id", spinID), zap.Duration("since_last_start", now.Sub(r.lastStart)))
		return ErrBusy
	}

	offset := time.Duration(r.id)
	r.spinID = spinID
	r.pending = target
	r.target = nil
	r.speed = r.params.MinSpeedNearTarget
	r.animating = true
	r.lastStart = now
	r.motionAt = now.Add(offset * r.params.StartStagger)
	r.commitAt = r.motionAt.Add(r.params.MinFreeSpin + offset*r.params.FreeSpinStagger)

	r.logger.Debug("reel started", zap.Int64("spin_id", spinID), zap.String("target", target.ID))
	return nil
}

// Step - один кадр симуляции
func (r *Reel) Step(now time.Time) {
	if !r.animating || now.Before(r.motionAt) {
		return
	}

	if r.target == nil {
		if now.Before(r.commitAt) {
			r.freeSpin()
			return
		}
		t := r.targetFor(r.pending)
		r.target = &t
	}

	r.approach()
}

// freeSpin разгоняет барабан до максимальной скорости
func (r *Reel) freeSpin() {
	r.speed = math.Min(r.params.MaxSpeed, r.speed+r.params.Acceleration)
	r.position = wrap(r.position+r.speed, r.stripHeight)
}

// approach ведет барабан к цели с торможением и фиксацией.
// Вдали от цели барабан продолжает разгон, в пределах символа тормозит
func (r *Reel) approach() {
	sh := r.params.SymbolHeight
	remaining := *r.target - r.position
	distance := math.Abs(remaining)
	willPass := r.speed >= distance

	if distance < 1 ||
		(r.speed <= r.params.VeryMinSpeed && distance < 0.45*sh) ||
		(willPass && distance < sh) {
		r.snap()
		return
	}

	if distance <= r.params.stopDistance() {
		r.speed = math.Max(r.params.MinSpeedNearTarget, r.speed*r.params.DecayFactor)
	} else {
		r.speed = math.Min(r.params.MaxSpeed, r.speed+r.params.Acceleration)
	}
	if distance <= sh/2 && r.speed > r.params.VeryMinSpeed {
		r.speed = r.params.VeryMinSpeed
	}

	// Шаг не может перескочить цель
	step := math.Min(r.speed, distance)
	if remaining > 0 {
		r.position += step
	} else {
		r.position -= step
	}
}

// snap ставит барабан точно на цель и отправляет сигнал остановки
func (r *Reel) snap() {
	r.position = wrap(*r.target, r.stripHeight)
	r.speed = 0
	r.target = nil
	r.animating = false

	completion := model.ReelCompletion{ReelID: r.id, SpinID: r.spinID}
	select {
	case r.sink <- completion:
	default:
		r.logger.Error("completion dropped, sink is full", zap.Int64("spin_id", r.spinID))
	}
}

// targetFor считает позицию, при которой символ окажется в центре окна
func (r *Reel) targetFor(symbol model.Symbol) float64 {
	n := len(r.strip)
	idx := indexOf(r.strip, symbol.ID)
	if idx < 0 {
		idx = r.rng.IntN(n)
		r.logger.Warn("target symbol not on strip, landing randomly",
			zap.String("symbol", symbol.ID), zap.Int("index", idx))
	}

	top := (idx - r.params.centerSlot() + n) % n
	target := float64(top)*r.params.SymbolHeight + float64(r.params.MinFullSpins)*r.stripHeight
	for target <= r.position+r.params.SymbolHeight {
		target += r.stripHeight
	}
	return target
}

// topIndex - индекс верхнего видимого символа и смещение внутри него
func (r *Reel) topIndex() (int, float64) {
	norm := wrap(r.position, r.stripHeight)
	start := int(math.Floor(norm / r.params.SymbolHeight))
	if start >= len(r.strip) {
		start = 0
	}
	return start, norm - float64(start)*r.params.SymbolHeight
}

// Visible возвращает видимые символы сверху вниз и один частично видимый
func (r *Reel) Visible() ([]model.Symbol, float64) {
	start, offset := r.topIndex()
	out := make([]model.Symbol, 0, r.params.VisibleSymbols+1)
	for i := 0; i <= r.params.VisibleSymbols; i++ {
		out = append(out, r.strip[(start+i)%len(r.strip)])
	}
	return out, offset
}

// CenterSymbol - символ в центральной позиции окна
func (r *Reel) CenterSymbol() model.Symbol {
	start, _ := r.topIndex()
	return r.strip[(start+r.params.centerSlot())%len(r.strip)]
}

// View - снимок состояния для отрисовки
func (r *Reel) View() model.ReelView {
	visible, offset := r.Visible()
	ids := make([]string, len(visible))
	for i, s := range visible {
		ids[i] = s.ID
	}

	return model.ReelView{
		ID:           r.id,
		SpinID:       r.spinID,
		Position:     wrap(r.position, r.stripHeight),
		Speed:        r.speed,
		Animating:    r.animating,
		Symbols:      ids,
		Offset:       offset,
		Center:       r.CenterSymbol().ID,
		AssetsLoaded: r.assetsLoaded,
	}
}

func wrap(pos, height float64) float64 {
	m := math.Mod(pos, height)
	if m < 0 {
		m += height
	}
	return m
}
