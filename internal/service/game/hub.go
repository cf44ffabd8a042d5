package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/reel"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
	"slot_machine/internal/service/sound"
)

const cleanupInterval = time.Minute

// HubDeps - зависимости хаба
type HubDeps struct {
	Settings   Settings
	ReelParams reel.Params
	Table      SymbolTable
	Catalog    []model.Symbol
	Gate       *Gate
	Wins       service.WinService
	Stats      repository.StatsRepository
	Locks      *LockRegistry
	Logger     *zap.Logger
	Now        func() time.Time
}

// Hub держит по координатору на игрока и крутит их кадры одним тикером.
// Реализует service.GameService
type Hub struct {
	mtx          sync.Mutex
	deps         HubDeps
	coordinators map[string]*Coordinator
}

func NewHub(deps HubDeps) *Hub {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Locks == nil {
		deps.Locks = NewLockRegistry()
	}
	return &Hub{
		deps:         deps,
		coordinators: make(map[string]*Coordinator),
	}
}

// Run крутит кадры до отмены контекста, затем ждет фоновые сохранения
func (h *Hub) Run(ctx context.Context) {
	frames := time.NewTicker(h.deps.Settings.FrameInterval())
	defer frames.Stop()
	cleanup := time.NewTicker(cleanupInterval)
	defer cleanup.Stop()

	h.deps.Logger.Info("game hub started", zap.Int("frame_rate", h.deps.Settings.FrameRate))

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case <-frames.C:
			h.Tick(h.deps.Now())
		case <-cleanup.C:
			h.cleanup(h.deps.Now())
		}
	}
}

// Tick - один кадр для всех активных координаторов
func (h *Hub) Tick(now time.Time) {
	h.mtx.Lock()
	active := make([]*Coordinator, 0, len(h.coordinators))
	for _, c := range h.coordinators {
		active = append(active, c)
	}
	h.mtx.Unlock()

	for _, c := range active {
		c.Frame(now)
	}
}

// cleanup выгружает простаивающие координаторы
func (h *Hub) cleanup(now time.Time) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	removed := 0
	for key, c := range h.coordinators {
		if c.Idle(now, h.deps.Settings.IdleTTL) {
			delete(h.coordinators, key)
			removed++
		}
	}
	pruned := h.deps.Locks.Prune(now, h.deps.Settings.IdleTTL)

	if removed > 0 || pruned > 0 {
		h.deps.Logger.Debug("hub cleanup",
			zap.Int("coordinators", removed), zap.Int("locks", pruned), zap.Int("active", len(h.coordinators)))
	}
}

func (h *Hub) shutdown() {
	h.mtx.Lock()
	active := make([]*Coordinator, 0, len(h.coordinators))
	for _, c := range h.coordinators {
		active = append(active, c)
	}
	h.mtx.Unlock()

	for _, c := range active {
		c.Wait()
	}
	h.deps.Logger.Info("game hub stopped")
}

// coordinator возвращает координатор игрока, создавая его при необходимости
func (h *Hub) coordinator(ctx context.Context, player model.Player) *Coordinator {
	key := player.Key()

	h.mtx.Lock()
	c, ok := h.coordinators[key]
	if !ok {
		c = h.newCoordinator(player)
		h.coordinators[key] = c
	}
	h.mtx.Unlock()

	if !ok {
		c.Prime(ctx)
	}
	return c
}

func (h *Hub) newCoordinator(player model.Player) *Coordinator {
	logger := h.deps.Logger.With(zap.String("player", player.Key()))
	completions := make(chan model.ReelCompletion, 2*model.ReelCount)

	reels := make([]ReelDriver, model.ReelCount)
	for i := range reels {
		src := rand.NewPCG(rand.Uint64(), rand.Uint64())
		reels[i] = reel.New(i, h.deps.Catalog, h.deps.ReelParams, src, completions, logger)
	}

	return NewCoordinator(CoordinatorDeps{
		Player:      player,
		Settings:    h.deps.Settings,
		Table:       h.deps.Table,
		Reels:       reels,
		Completions: completions,
		Lock:        h.deps.Locks.Get(player.Key()),
		Gate:        h.deps.Gate,
		Wins:        h.deps.Wins,
		Sound:       sound.NewSoundPlayer(logger),
		Stats:       h.deps.Stats,
		Logger:      h.deps.Logger,
		Now:         h.deps.Now,
	})
}

func (h *Hub) AttemptSpin(ctx context.Context, player model.Player) (int64, error) {
	return h.coordinator(ctx, player).AttemptSpin(ctx)
}

func (h *Hub) State(ctx context.Context, player model.Player) (*model.GameState, error) {
	return h.coordinator(ctx, player).State(), nil
}

func (h *Hub) ClosePopup(ctx context.Context, player model.Player) error {
	return h.coordinator(ctx, player).ClosePopup()
}

func (h *Hub) DismissPrompt(ctx context.Context, player model.Player) error {
	h.coordinator(ctx, player).DismissPrompt()
	return nil
}
