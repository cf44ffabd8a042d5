package model

import "time"

// Prompt - подсказка, которую нужно показать игроку
type Prompt string

const (
	PromptNone       Prompt = ""
	PromptLogin      Prompt = "login"
	PromptOutOfSpins Prompt = "out_of_spins"
)

// Popup - окно выигрыша
type Popup struct {
	SpinID       int64
	WinAmount    int
	WinningLabel string
	Symbols      []string
	ClaimCode    string
	CodePending  bool // Выигрыш еще сохраняется
}

// ReelView - состояние барабана для отрисовки
type ReelView struct {
	ID           int
	SpinID       int64
	Position     float64
	Speed        float64
	Animating    bool
	Symbols      []string // Видимые символы сверху вниз, плюс один частично видимый
	Offset       float64  // Смещение верхнего символа в пикселях
	Center       string
	AssetsLoaded bool
}

// GameState - снимок состояния координатора
type GameState struct {
	SpinID            int64
	Spinning          bool
	Locked            bool
	CooldownRemaining time.Duration
	AttemptsRemaining int
	GuestSpinUsed     bool
	Authenticated     bool
	Prompt            Prompt
	Popup             *Popup
	SoundTrack        string
	Reels             []ReelView
}
