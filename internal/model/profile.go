package model

// Формат даты сброса попыток
const DateLayout = "2006-01-02"

// Profile - суточная квота авторизованного игрока
type Profile struct {
	UserID            string
	AttemptsRemaining int
	LastResetDate     string // YYYY-MM-DD
}
