package game

type SpinResponse struct {
	SpinID int64 `json:"spin_id"` // Номер принятого спина
}

type PopupResponse struct {
	SpinID       int64    `json:"spin_id"`
	WinAmount    int      `json:"win_amount"`
	WinningLabel string   `json:"winning_label"`
	Message      string   `json:"message"` // Локализованный текст выигрыша
	Symbols      []string `json:"symbols"` // ID символов
	ClaimCode    string   `json:"claim_code,omitempty"`
	CodePending  bool     `json:"code_pending"` // Код еще сохраняется
}

type ReelResponse struct {
	ID           int      `json:"id"`
	SpinID       int64    `json:"spin_id"`
	Position     float64  `json:"position"` // Позиция ленты в пикселях
	Speed        float64  `json:"speed"`
	Animating    bool     `json:"animating"`
	Symbols      []string `json:"symbols"` // Видимые символы сверху вниз
	Offset       float64  `json:"offset"`  // Смещение верхнего символа
	Center       string   `json:"center"`
	AssetsLoaded bool     `json:"assets_loaded"`
}

type StateResponse struct {
	SpinID            int64          `json:"spin_id"`
	Spinning          bool           `json:"spinning"`
	Locked            bool           `json:"locked"`
	CooldownMillis    int64          `json:"cooldown_ms"`
	CooldownSeconds   int            `json:"cooldown_seconds"` // Для надписи "подождите N с"
	AttemptsRemaining int            `json:"attempts_remaining"`
	GuestSpinUsed     bool           `json:"guest_spin_used"`
	Authenticated     bool           `json:"authenticated"`
	Prompt            string         `json:"prompt,omitempty"` // login | out_of_spins
	Popup             *PopupResponse `json:"popup,omitempty"`
	SoundTrack        string         `json:"sound_track,omitempty"`
	Reels             []ReelResponse `json:"reels"`
}
