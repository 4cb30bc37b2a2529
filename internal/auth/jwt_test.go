package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenMaker_RoundTrip(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	tok, err := tm.New("u_1", "alice")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	claims, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "alice" || claims.Subject != "u_1" {
		t.Fatalf("got %+v", claims)
	}

	exp := claims.ExpiresAt.Time
	if d := time.Until(exp); d < 55*time.Minute || d > 65*time.Minute {
		t.Fatalf("expiry %v not ~1h out", d)
	}
}

func TestTokenMaker_RejectsTampered(t *testing.T) {
	tm := NewTokenMaker("test-secret")
	other := NewTokenMaker("other-secret")

	tok, err := other.New("u_1", "alice")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := tm.Parse(tok); err == nil {
		t.Fatalf("accepted token signed with a different secret")
	}
	if _, err := tm.Parse("not.a.token"); err == nil {
		t.Fatalf("accepted malformed token")
	}
	if _, err := tm.Parse(""); err == nil {
		t.Fatalf("accepted empty token")
	}
}

func TestTokenMaker_RejectsExpired(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	claims := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u_1",
			Issuer:    "booknook",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Parse(tok); err == nil {
		t.Fatalf("accepted expired token")
	}
}

func TestTokenMaker_RejectsWrongAlg(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Parse(tok); err == nil {
		t.Fatalf("accepted token with unexpected signing method")
	}
}
