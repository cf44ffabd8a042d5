package game

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
	"slot_machine/internal/service/sound"
)

// SymbolTable - источник результата спина
type SymbolTable interface {
	Spin() model.SpinResult
}

// ReelDriver - управление одним барабаном
type ReelDriver interface {
	StartSpinning(target model.Symbol, spinID int64, now time.Time) error
	Step(now time.Time)
	View() model.ReelView
}

// CoordinatorDeps - зависимости координатора
type CoordinatorDeps struct {
	Player      model.Player
	Settings    Settings
	Table       SymbolTable
	Reels       []ReelDriver
	Completions chan model.ReelCompletion // Сюда барабаны пишут сигналы остановки
	Lock        *LockState
	Gate        *Gate
	Wins        service.WinService
	Sound       service.SoundPlayer
	Stats       repository.StatsRepository
	Logger      *zap.Logger
	Now         func() time.Time
}

// Coordinator ведет раунд одного игрока: проверки, запуск барабанов,
// сбор сигналов остановки и завершение раунда
type Coordinator struct {
	mtx sync.Mutex
	wg  sync.WaitGroup

	player      model.Player
	settings    Settings
	table       SymbolTable
	reels       []ReelDriver
	completions chan model.ReelCompletion
	lock        *LockState
	gate        *Gate
	wins        service.WinService
	sound       service.SoundPlayer
	stats       repository.StatsRepository
	logger      *zap.Logger
	now         func() time.Time

	spinID     int64
	spinning   bool
	session    *model.SpinSession
	popup      *model.Popup
	popupAt    time.Time
	prompt     model.Prompt
	allowance  Allowance
	lastActive time.Time
}

func NewCoordinator(deps CoordinatorDeps) *Coordinator {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	lock := deps.Lock
	if lock == nil {
		lock = &LockState{}
	}

	return &Coordinator{
		player:      deps.Player,
		settings:    deps.Settings,
		table:       deps.Table,
		reels:       deps.Reels,
		completions: deps.Completions,
		lock:        lock,
		gate:        deps.Gate,
		wins:        deps.Wins,
		sound:       deps.Sound,
		stats:       deps.Stats,
		logger:      deps.Logger.With(zap.String("player", deps.Player.Key())),
		now:         now,
		lastActive:  now(),
	}
}

// Prime загружает доступные попытки для отображения до первого спина
func (c *Coordinator) Prime(ctx context.Context) {
	allowance := c.gate.Peek(ctx, c.player, c.now())

	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.allowance = allowance
}

// AttemptSpin проверяет кулдаун, повторный вход и квоту, затем запускает барабаны
func (c *Coordinator) AttemptSpin(ctx context.Context) (int64, error) {
	now := c.now()

	c.mtx.Lock()
	c.lastActive = now
	if left := c.lock.CooldownRemaining(now, c.settings.Cooldown); left > 0 {
		c.mtx.Unlock()
		c.logger.Debug("spin rejected, cooldown", zap.Duration("remaining", left))
		return 0, ErrCooldown
	}
	if c.spinning || c.lock.Locked(now) {
		c.mtx.Unlock()
		c.logger.Debug("spin rejected, already in progress")
		return 0, ErrSpinInProgress
	}
	// Флаг ставится до обращения к хранилищам
	c.spinning = true
	c.mtx.Unlock()

	allowance, err := c.gate.Consume(ctx, c.player, now)

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if err != nil {
		c.spinning = false
		c.allowance = allowance
		c.prompt = promptFor(err)
		c.logger.Info("spin not allowed", zap.Error(err))
		return 0, err
	}

	now = c.now()
	c.allowance = allowance
	c.prompt = model.PromptNone
	c.popup = nil
	c.spinID++

	result := c.table.Spin()
	c.session = &model.SpinSession{
		SpinID:    c.spinID,
		Result:    result,
		Completed: make(map[int]struct{}, len(c.reels)),
		StartedAt: now,
	}
	c.lock.Begin(now)
	c.sound.PlayLoop(sound.TrackSpin)

	c.logger.Info("spin started",
		zap.Int64("spin_id", c.spinID),
		zap.Strings("symbols", result.SymbolIDs()),
		zap.Int("win_amount", result.WinAmount))

	for i, r := range c.reels {
		if err := r.StartSpinning(result.Symbols[i], c.spinID, now); err != nil {
			// Барабан не принял старт, считаем его остановившимся
			c.logger.Warn("reel rejected start", zap.Int("reel", i), zap.Error(err))
			c.markComplete(i, now)
		}
	}

	return c.spinID, nil
}

// Frame - один кадр: шаг всех барабанов и разбор сигналов остановки
func (c *Coordinator) Frame(now time.Time) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for _, r := range c.reels {
		r.Step(now)
	}
	c.drain(now)
}

// OnReelComplete принимает сигнал остановки извне
func (c *Coordinator) OnReelComplete(reelID int, spinID int64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.handleCompletion(model.ReelCompletion{ReelID: reelID, SpinID: spinID}, c.now())
}

func (c *Coordinator) drain(now time.Time) {
	for {
		select {
		case comp := <-c.completions:
			c.handleCompletion(comp, now)
		default:
			return
		}
	}
}

func (c *Coordinator) handleCompletion(comp model.ReelCompletion, now time.Time) {
	if c.session == nil || comp.SpinID != c.spinID {
		c.logger.Debug("stale reel completion ignored",
			zap.Int("reel", comp.ReelID), zap.Int64("spin_id", comp.SpinID), zap.Int64("current_spin_id", c.spinID))
		return
	}
	if comp.ReelID < 0 || comp.ReelID >= len(c.reels) {
		c.logger.Warn("completion from unknown reel", zap.Int("reel", comp.ReelID))
		return
	}
	c.markComplete(comp.ReelID, now)
}

func (c *Coordinator) markComplete(reelID int, now time.Time) {
	c.session.Completed[reelID] = struct{}{}
	if len(c.session.Completed) < len(c.reels) {
		return
	}

	session := c.session
	c.session = nil
	c.finalize(session, now)
}

// Idle - координатор без активности дольше ttl и без открытого раунда
func (c *Coordinator) Idle(now time.Time, ttl time.Duration) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return !c.spinning && c.popup == nil && now.Sub(c.lastActive) > ttl
}

// Wait ждет завершения фонового сохранения выигрышей
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
