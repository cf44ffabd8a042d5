package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const GuestCookieName = "guest_id"

// Guest выдает неавторизованному клиенту постоянный guest_id
func Guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		guestID := ""
		if c, err := r.Cookie(GuestCookieName); err == nil {
			if id, err := uuid.Parse(c.Value); err == nil {
				guestID = id.String()
			}
		}
		if guestID == "" {
			guestID = uuid.NewString()
			setGuestCookie(w, guestID)
		}

		next.ServeHTTP(w, r.WithContext(WithGuestID(r.Context(), guestID)))
	})
}

// setGuestCookie устанавливает cookie с guest_id
func setGuestCookie(w http.ResponseWriter, guestID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookieName,
		Value:    guestID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 30, // 30 дней
	})
}
