package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/model"
	"slot_machine/internal/service/sound"
)

// finalize завершает раунд после остановки всех барабанов.
// Вызывается под мьютексом координатора
func (c *Coordinator) finalize(session *model.SpinSession, now time.Time) {
	c.spinning = false
	c.sound.StopAll()
	c.stats.RecordRound(session.Result)

	result := session.Result
	if result.WinAmount <= 0 {
		elapsed := now.Sub(session.StartedAt)
		wait := max(c.settings.MinRoundDuration-elapsed, c.settings.ReleaseFloor)
		c.lock.ReleaseAt(now.Add(wait))

		c.logger.Info("round lost",
			zap.Int64("spin_id", session.SpinID), zap.Duration("release_in", wait))
		return
	}

	// Блокировка снимается только закрытием окна выигрыша
	c.popup = &model.Popup{
		SpinID:       session.SpinID,
		WinAmount:    result.WinAmount,
		WinningLabel: result.WinningLabel,
		Symbols:      result.SymbolIDs(),
		CodePending:  c.player.Authenticated(),
	}
	c.popupAt = now.Add(c.settings.PopupDelay)
	c.sound.PlayLoop(sound.TrackWin)

	c.logger.Info("round won",
		zap.Int64("spin_id", session.SpinID),
		zap.Int("win_amount", result.WinAmount),
		zap.String("label", result.WinningLabel))

	// Гости кода не получают
	if !c.player.Authenticated() {
		return
	}

	c.wg.Add(1)
	go c.persistWin(session.SpinID, result)
}

// persistWin сохраняет выигрыш и прикрепляет код к окну, если оно еще открыто
func (c *Coordinator) persistWin(spinID int64, result model.SpinResult) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), c.settings.PersistTimeout)
	defer cancel()

	code, err := c.wins.RecordWin(ctx, c.player.UserID, result.WinAmount, result.WinningLabel, result.SymbolIDs())
	if err != nil {
		c.logger.Error("record win failed", zap.Int64("spin_id", spinID), zap.Error(err))
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.popup == nil || c.popup.SpinID != spinID {
		return
	}
	c.popup.CodePending = false
	c.popup.ClaimCode = code
}

// ClosePopup закрывает окно выигрыша и снимает блокировку
func (c *Coordinator) ClosePopup() error {
	now := c.now()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.lastActive = now
	if c.popup == nil || now.Before(c.popupAt) {
		return ErrNoPopup
	}

	c.popup = nil
	c.sound.StopAll()
	c.lock.Release()
	return nil
}

// DismissPrompt скрывает подсказку входа или окончания попыток
func (c *Coordinator) DismissPrompt() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.prompt = model.PromptNone
}

// State - снимок для клиента. Окно выигрыша видно после задержки
func (c *Coordinator) State() *model.GameState {
	now := c.now()

	c.mtx.Lock()
	defer c.mtx.Unlock()

	state := &model.GameState{
		SpinID:            c.spinID,
		Spinning:          c.spinning,
		Locked:            c.lock.Locked(now),
		CooldownRemaining: c.lock.CooldownRemaining(now, c.settings.Cooldown),
		AttemptsRemaining: c.allowance.AttemptsRemaining,
		GuestSpinUsed:     c.allowance.GuestSpinUsed,
		Authenticated:     c.player.Authenticated(),
		Prompt:            c.prompt,
		SoundTrack:        c.sound.Current(),
		Reels:             make([]model.ReelView, 0, len(c.reels)),
	}
	if c.popup != nil && !now.Before(c.popupAt) {
		popup := *c.popup
		state.Popup = &popup
	}
	for _, r := range c.reels {
		state.Reels = append(state.Reels, r.View())
	}
	return state
}
