package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service/sound"
	"slot_machine/internal/slot"
)

type fakeClock struct {
	mtx sync.Mutex
	t   time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.t = c.t.Add(d)
}

// scriptedTable отдает заранее заданные результаты по кругу
type scriptedTable struct {
	mtx     sync.Mutex
	results []model.SpinResult
	calls   int
}

func (t *scriptedTable) Spin() model.SpinResult {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	res := t.results[t.calls%len(t.results)]
	t.calls++
	return res
}

func (t *scriptedTable) Calls() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.calls
}

type fakeReel struct {
	id      int
	starts  []int64
	targets []model.Symbol
	reject  error
}

func (r *fakeReel) StartSpinning(target model.Symbol, spinID int64, _ time.Time) error {
	if r.reject != nil {
		return r.reject
	}
	r.starts = append(r.starts, spinID)
	r.targets = append(r.targets, target)
	return nil
}

func (r *fakeReel) Step(time.Time) {}

func (r *fakeReel) View() model.ReelView {
	return model.ReelView{ID: r.id}
}

type memProfiles struct {
	mtx      sync.Mutex
	profiles map[string]model.Profile
	readErr  error
}

func newMemProfiles() *memProfiles {
	return &memProfiles{profiles: make(map[string]model.Profile)}
}

func (m *memProfiles) GetProfile(_ context.Context, userID string) (*model.Profile, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *memProfiles) ResetDailyAttempts(_ context.Context, userID string, attempts int, date string) (*model.Profile, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	p := model.Profile{UserID: userID, AttemptsRemaining: attempts, LastResetDate: date}
	m.profiles[userID] = p
	return &p, nil
}

func (m *memProfiles) SetAttemptsRemaining(_ context.Context, userID string, n int) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	p := m.profiles[userID]
	p.UserID = userID
	p.AttemptsRemaining = n
	m.profiles[userID] = p
	return nil
}

func (m *memProfiles) get(userID string) model.Profile {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.profiles[userID]
}

type memGuests struct {
	mtx  sync.Mutex
	days map[string]string
}

func newMemGuests() *memGuests {
	return &memGuests{days: make(map[string]string)}
}

func (m *memGuests) HasAttemptToday(_ context.Context, guestID, today string) (bool, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.days[guestID] == today, nil
}

func (m *memGuests) MarkAttemptUsed(_ context.Context, guestID, today string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.days[guestID] = today
	return nil
}

func (m *memGuests) ClearAttempt(_ context.Context, guestID string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	delete(m.days, guestID)
	return nil
}

type fakeWins struct {
	mtx   sync.Mutex
	calls int
	code  string
	err   error
	users []string
}

func (f *fakeWins) RecordWin(_ context.Context, userID string, _ int, _ string, _ []string) (string, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.calls++
	f.users = append(f.users, userID)
	if f.err != nil {
		return "", f.err
	}
	return f.code, nil
}

func (f *fakeWins) Calls() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.calls
}

type fakeStats struct {
	mtx    sync.Mutex
	rounds []model.SpinResult
}

func (f *fakeStats) RecordRound(result model.SpinResult) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.rounds = append(f.rounds, result)
}

func (f *fakeStats) Report() model.StatsReport {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return model.StatsReport{TotalSpins: len(f.rounds)}
}

var errStorage = errors.New("storage unavailable")

func symbolByID(t *testing.T, id string) model.Symbol {
	t.Helper()
	for _, s := range slot.DefaultCatalog() {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("symbol %s not in catalog", id)
	return model.Symbol{}
}

func resultOf(t *testing.T, ids ...string) model.SpinResult {
	t.Helper()
	var res model.SpinResult
	for i, id := range ids {
		res.Symbols[i] = symbolByID(t, id)
	}
	res.WinAmount, res.WinningLabel = slot.EvaluateWin(res.Symbols)
	return res
}

type harness struct {
	clock    *fakeClock
	table    *scriptedTable
	reels    []*fakeReel
	profiles *memProfiles
	guests   *memGuests
	wins     *fakeWins
	stats    *fakeStats
	lock     *LockState
	coord    *Coordinator
	settings Settings
}

func newHarness(t *testing.T, player model.Player, results ...model.SpinResult) *harness {
	t.Helper()
	logger := zaptest.NewLogger(t)

	h := &harness{
		clock:    newFakeClock(),
		table:    &scriptedTable{results: results},
		profiles: newMemProfiles(),
		guests:   newMemGuests(),
		wins:     &fakeWins{code: "K7PX2M"},
		stats:    &fakeStats{},
		lock:     &LockState{},
		settings: DefaultSettings(),
	}

	drivers := make([]ReelDriver, model.ReelCount)
	for i := range drivers {
		r := &fakeReel{id: i}
		h.reels = append(h.reels, r)
		drivers[i] = r
	}

	h.coord = NewCoordinator(CoordinatorDeps{
		Player:      player,
		Settings:    h.settings,
		Table:       h.table,
		Reels:       drivers,
		Completions: make(chan model.ReelCompletion, 2*model.ReelCount),
		Lock:        h.lock,
		Gate:        NewGate(h.profiles, h.guests, h.settings.DefaultAttempts, logger),
		Wins:        h.wins,
		Sound:       sound.NewSoundPlayer(logger),
		Stats:       h.stats,
		Logger:      logger,
		Now:         h.clock.Now,
	})
	return h
}

func (h *harness) completeAll(spinID int64) {
	for i := range h.reels {
		h.coord.OnReelComplete(i, spinID)
	}
}

func (h *harness) today() string {
	return h.clock.Now().Format(model.DateLayout)
}
