package admin

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClaimRequest struct {
	Code string `json:"code"` // Код получения, регистр не важен
}

type ClaimResponse struct {
	Outcome string `json:"outcome"` // success | alreadyClaimed | invalidCode
	Message string `json:"message"`
}

type WinResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	WinCode      string     `json:"win_code"`
	WinAmount    int        `json:"win_amount"`
	WinningLabel string     `json:"winning_label"`
	Symbols      []string   `json:"symbols"`
	CreatedAt    time.Time  `json:"created_at"`
	IsClaimed    bool       `json:"is_claimed"`
	ClaimedAt    *time.Time `json:"claimed_at,omitempty"`
}

type WinListResponse struct {
	Wins       []WinResponse `json:"wins"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
}

type SymbolStatResponse struct {
	SymbolID string  `json:"symbol_id"`
	Observed int     `json:"observed"`
	Expected float64 `json:"expected"`
}

type StatsResponse struct {
	TotalSpins    int                  `json:"total_spins"`
	TotalWins     int                  `json:"total_wins"`
	TotalPayout   int                  `json:"total_payout"`
	HitRate       decimal.Decimal      `json:"hit_rate"`
	ReturnPerSpin decimal.Decimal      `json:"return_per_spin"`
	WindowReturn  decimal.Decimal      `json:"window_return"`
	WindowSize    int                  `json:"window_size"`
	Symbols       []SymbolStatResponse `json:"symbols"`
	ChiSquare     float64              `json:"chi_square"`
	PValue        float64              `json:"p_value"`
}
