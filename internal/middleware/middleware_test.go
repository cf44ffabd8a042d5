package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"slot_machine/internal/model"
	"slot_machine/pkg/token"
)

var secret = []byte("middleware-secret")

// capture запоминает игрока, дошедшего до обработчика
func capture(got *model.Player, reached *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		*got, _ = PlayerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthWithValidToken(t *testing.T) {
	tok, err := token.GenerateAccessToken("user-7", secret, time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	var player model.Player
	var reached bool
	h := Auth(secret, zaptest.NewLogger(t))(Guest(capture(&player, &reached)))

	r := httptest.NewRequest(http.MethodGet, "/game/state", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if !reached || player.UserID != "user-7" || player.GuestID != "" {
		t.Fatalf("unexpected player %+v", player)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("authenticated request must not get a guest cookie")
	}
}

func TestAuthRejectsBadToken(t *testing.T) {
	var player model.Player
	var reached bool
	h := Auth(secret, zaptest.NewLogger(t))(capture(&player, &reached))

	for _, header := range []string{"Bearer nope", "Basic abc", "Bearer "} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		if rec.Code != http.StatusUnauthorized || reached {
			t.Fatalf("header %q: status %d, reached %v", header, rec.Code, reached)
		}
	}
}

func TestGuestCookieIssuedAndReused(t *testing.T) {
	var player model.Player
	var reached bool
	h := Auth(secret, zaptest.NewLogger(t))(Guest(capture(&player, &reached)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != GuestCookieName {
		t.Fatalf("expected guest cookie, got %v", cookies)
	}
	first := player.GuestID
	if first == "" || first != cookies[0].Value {
		t.Fatalf("guest id %q does not match cookie %q", first, cookies[0].Value)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if player.GuestID != first {
		t.Fatalf("guest id changed: %q -> %q", first, player.GuestID)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("valid cookie must not be reissued")
	}
}

func TestGuestCookieReplacedWhenInvalid(t *testing.T) {
	var player model.Player
	var reached bool
	h := Guest(capture(&player, &reached))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: GuestCookieName, Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if player.GuestID == "not-a-uuid" || len(rec.Result().Cookies()) != 1 {
		t.Fatalf("invalid guest cookie was trusted: %+v", player)
	}
}

func TestOperatorKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := OperatorKey(hash, zaptest.NewLogger(t))(ok)

	cases := map[string]int{"": http.StatusUnauthorized, "wrong": http.StatusUnauthorized, "letmein": http.StatusNoContent}
	for key, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
		if key != "" {
			r.Header.Set(OperatorKeyHeader, key)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		if rec.Code != want {
			t.Fatalf("key %q: status %d, want %d", key, rec.Code, want)
		}
	}
}
