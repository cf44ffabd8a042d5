package model

import "time"

// WinRecord - сохраненный выигрыш с кодом получения
type WinRecord struct {
	ID           string
	UserID       string
	WinCode      string
	WinAmount    int
	WinningLabel string
	Symbols      []string
	CreatedAt    time.Time
	IsClaimed    bool
	ClaimedAt    *time.Time
}

// ClaimOutcome - результат погашения кода
type ClaimOutcome string

const (
	ClaimSuccess        ClaimOutcome = "success"
	ClaimAlreadyClaimed ClaimOutcome = "alreadyClaimed"
	ClaimInvalidCode    ClaimOutcome = "invalidCode"
)

// WinFilter - фильтр списка выигрышей
type WinFilter string

const (
	WinFilterAll       WinFilter = "all"
	WinFilterClaimed   WinFilter = "claimed"
	WinFilterUnclaimed WinFilter = "unclaimed"
)

// ParseWinFilter возвращает WinFilterAll для неизвестных значений
func ParseWinFilter(s string) WinFilter {
	switch WinFilter(s) {
	case WinFilterClaimed, WinFilterUnclaimed:
		return WinFilter(s)
	default:
		return WinFilterAll
	}
}

// WinPage - страница списка выигрышей
type WinPage struct {
	Wins       []WinRecord
	Page       int
	TotalPages int
	Total      int
}
