package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewJWTManager("secret")

	token, err := m.Generate("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@x.com" {
		t.Fatalf("got claims %+v", claims)
	}

	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining < 6*24*time.Hour || remaining > 7*24*time.Hour {
		t.Fatalf("expiry %v away, want about 7 days", remaining)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").Generate("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewJWTManager("secret-b").Validate(token); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewJWTManager("secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "user-1",
		Email:  "a@x.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	token, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Validate(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := NewJWTManager("secret").Validate("not-a-token"); err == nil {
		t.Fatal("malformed token was accepted")
	}
}
