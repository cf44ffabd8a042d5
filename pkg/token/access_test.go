package token

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken("user-42", secret, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Fatalf("subject %q", claims.Subject)
	}
}

func TestVerifyRejects(t *testing.T) {
	expired, err := GenerateAccessToken("user-42", secret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := VerifyToken(expired, secret); err == nil {
		t.Fatalf("expired token accepted")
	}

	tok, _ := GenerateAccessToken("user-42", secret, time.Minute)
	if _, err := VerifyToken(tok, []byte("other")); err == nil {
		t.Fatalf("token with wrong key accepted")
	}

	anon, _ := GenerateAccessToken("", secret, time.Minute)
	if _, err := VerifyToken(anon, secret); err == nil {
		t.Fatalf("token without subject accepted")
	}
}
