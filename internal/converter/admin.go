package converter

import (
	"slot_machine/internal/api/dto/admin"
	"slot_machine/internal/model"
)

var claimMessages = map[model.ClaimOutcome]string{
	model.ClaimSuccess:        "Gewinn erfolgreich eingelöst",
	model.ClaimAlreadyClaimed: "Dieser Code wurde bereits eingelöst",
	model.ClaimInvalidCode:    "Ungültiger Code",
}

func ToClaimResponse(outcome model.ClaimOutcome) admin.ClaimResponse {
	return admin.ClaimResponse{
		Outcome: string(outcome),
		Message: claimMessages[outcome],
	}
}

func ToWinListResponse(page model.WinPage) admin.WinListResponse {
	wins := make([]admin.WinResponse, len(page.Wins))
	for i, w := range page.Wins {
		wins[i] = admin.WinResponse{
			ID:           w.ID,
			UserID:       w.UserID,
			WinCode:      w.WinCode,
			WinAmount:    w.WinAmount,
			WinningLabel: w.WinningLabel,
			Symbols:      w.Symbols,
			CreatedAt:    w.CreatedAt,
			IsClaimed:    w.IsClaimed,
			ClaimedAt:    w.ClaimedAt,
		}
	}
	return admin.WinListResponse{
		Wins:       wins,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
	}
}

func ToStatsResponse(r model.StatsReport) admin.StatsResponse {
	symbols := make([]admin.SymbolStatResponse, len(r.Symbols))
	for i, s := range r.Symbols {
		symbols[i] = admin.SymbolStatResponse{
			SymbolID: s.SymbolID,
			Observed: s.Observed,
			Expected: s.Expected,
		}
	}
	return admin.StatsResponse{
		TotalSpins:    r.TotalSpins,
		TotalWins:     r.TotalWins,
		TotalPayout:   r.TotalPayout,
		HitRate:       r.HitRate,
		ReturnPerSpin: r.ReturnPerSpin,
		WindowReturn:  r.WindowReturn,
		WindowSize:    r.WindowSize,
		Symbols:       symbols,
		ChiSquare:     r.ChiSquare,
		PValue:        r.PValue,
	}
}
