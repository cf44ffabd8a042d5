package game

import (
	"sync"
	"time"
)

// LockState - блокировка спинов игрока.
// Переживает пересоздание координатора, поэтому хранится в реестре
type LockState struct {
	mtx               sync.Mutex
	lastSpinStartedAt time.Time
	locked            bool
	lockExpiresAt     time.Time // Нулевое значение - снятие ждет закрытия окна выигрыша
}

// CooldownRemaining - сколько осталось до следующего разрешенного спина
func (l *LockState) CooldownRemaining(now time.Time, cooldown time.Duration) time.Duration {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.lastSpinStartedAt.IsZero() {
		return 0
	}
	left := l.lastSpinStartedAt.Add(cooldown).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Begin фиксирует старт спина и ставит блокировку без срока
func (l *LockState) Begin(now time.Time) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.lastSpinStartedAt = now
	l.locked = true
	l.lockExpiresAt = time.Time{}
}

// ReleaseAt назначает снятие блокировки
func (l *LockState) ReleaseAt(at time.Time) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.locked {
		l.lockExpiresAt = at
	}
}

func (l *LockState) Release() {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.locked = false
	l.lockExpiresAt = time.Time{}
}

// Locked снимает просроченную блокировку и возвращает текущее состояние
func (l *LockState) Locked(now time.Time) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.locked && !l.lockExpiresAt.IsZero() && !now.Before(l.lockExpiresAt) {
		l.locked = false
		l.lockExpiresAt = time.Time{}
	}
	return l.locked
}

// LockRegistry - блокировки по ключу игрока
type LockRegistry struct {
	mtx   sync.Mutex
	locks map[string]*LockState
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[string]*LockState)}
}

// Get возвращает блокировку игрока, создавая ее при первом обращении
func (r *LockRegistry) Get(key string) *LockState {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.locks[key]
	if !ok {
		l = &LockState{}
		r.locks[key] = l
	}
	return l
}

// Prune удаляет блокировки, у которых и кулдаун, и блокировка давно истекли
func (r *LockRegistry) Prune(now time.Time, olderThan time.Duration) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	removed := 0
	for key, l := range r.locks {
		l.mtx.Lock()
		released := !l.locked || (!l.lockExpiresAt.IsZero() && !now.Before(l.lockExpiresAt))
		stale := released && now.Sub(l.lastSpinStartedAt) > olderThan
		l.mtx.Unlock()
		if stale {
			delete(r.locks, key)
			removed++
		}
	}
	return removed
}
