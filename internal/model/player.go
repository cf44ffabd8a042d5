package model

// Player - игрок, от имени которого выполняется спин.
// Если UserID не пустой - игрок авторизован, иначе это гость
type Player struct {
	UserID  string
	GuestID string
}

func (p Player) Authenticated() bool {
	return p.UserID != ""
}

// Key - ключ игрока для хаба и реестра блокировок
func (p Player) Key() string {
	if p.Authenticated() {
		return "user:" + p.UserID
	}
	return "guest:" + p.GuestID
}
