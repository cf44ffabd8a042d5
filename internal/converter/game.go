package converter

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"slot_machine/internal/api/dto/game"
	"slot_machine/internal/model"
)

var popupPrinter = message.NewPrinter(language.German)

func ToSpinResponse(spinID int64) game.SpinResponse {
	return game.SpinResponse{SpinID: spinID}
}

func ToStateResponse(st model.GameState) game.StateResponse {
	return game.StateResponse{
		SpinID:            st.SpinID,
		Spinning:          st.Spinning,
		Locked:            st.Locked,
		CooldownMillis:    st.CooldownRemaining.Milliseconds(),
		CooldownSeconds:   ceilSeconds(st.CooldownRemaining),
		AttemptsRemaining: st.AttemptsRemaining,
		GuestSpinUsed:     st.GuestSpinUsed,
		Authenticated:     st.Authenticated,
		Prompt:            string(st.Prompt),
		Popup:             toPopupResponse(st.Popup),
		SoundTrack:        st.SoundTrack,
		Reels:             toReelResponses(st.Reels),
	}
}

// PopupMessage - текст окна выигрыша, "Gewinn: 1.000 Punkte!"
func PopupMessage(amount int) string {
	return popupPrinter.Sprintf("Gewinn: %d Punkte!", amount)
}

func toPopupResponse(p *model.Popup) *game.PopupResponse {
	if p == nil {
		return nil
	}
	return &game.PopupResponse{
		SpinID:       p.SpinID,
		WinAmount:    p.WinAmount,
		WinningLabel: p.WinningLabel,
		Message:      PopupMessage(p.WinAmount),
		Symbols:      p.Symbols,
		ClaimCode:    p.ClaimCode,
		CodePending:  p.CodePending,
	}
}

func toReelResponses(reels []model.ReelView) []game.ReelResponse {
	result := make([]game.ReelResponse, len(reels))
	for i, r := range reels {
		result[i] = game.ReelResponse{
			ID:           r.ID,
			SpinID:       r.SpinID,
			Position:     r.Position,
			Speed:        r.Speed,
			Animating:    r.Animating,
			Symbols:      r.Symbols,
			Offset:       r.Offset,
			Center:       r.Center,
			AssetsLoaded: r.AssetsLoaded,
		}
	}
	return result
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
