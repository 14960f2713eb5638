package handlers

import (
	"net/http"
	"testing"
)

func TestRegisterValidation(t *testing.T) {
	e, _ := newTestServer(t)

	cases := []struct {
		name    string
		body    map[string]string
		message string
	}{
		{
			name:    "missing phone",
			body:    map[string]string{"name": "A", "email": "a@x.com", "password": "secret1"},
			message: "All fields are required",
		},
		{
			name:    "short password",
			body:    map[string]string{"name": "A", "email": "a@x.com", "phone": "1234567890", "password": "five5"},
			message: "Password must be at least 6 characters",
		},
		{
			name:    "bad email",
			body:    map[string]string{"name": "A", "email": "not-an-email", "phone": "1234567890", "password": "secret1"},
			message: "Invalid email format",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodPost, "/api/auth/register", "", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400", rec.Code)
			}
			if got := decodeBody(t, rec)["message"]; got != tc.message {
				t.Fatalf("got message %q, want %q", got, tc.message)
			}
		})
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "B",
		"email":    "A@X.COM",
		"phone":    "0987654321",
		"password": "secret2",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Email already registered" {
		t.Fatalf("got message %q", got)
	}
}

func TestRegisterNeverReturnsPassword(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "A",
		"email":    "a@x.com",
		"phone":    "1234567890",
		"password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201", rec.Code)
	}

	user := decodeBody(t, rec)["user"].(map[string]interface{})
	if _, ok := user["password"]; ok {
		t.Fatal("register response contains a password field")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e)

	wrongPassword := doJSON(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "wrong-password",
	})
	unknownEmail := doJSON(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@x.com",
		"password": "secret1",
	})

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("got statuses %d and %d, want 401 for both", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("bodies differ: %q vs %q", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginReturnsAddress(t *testing.T) {
	e, _ := newTestServer(t)
	token := registerUser(t, e)

	rec := doJSON(t, e, http.MethodPut, "/api/user/profile", token, map[string]string{
		"address": "12 Market Street",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update: got status %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got status %d", rec.Code)
	}

	user := decodeBody(t, rec)["user"].(map[string]interface{})
	if user["address"] != "12 Market Street" {
		t.Fatalf("got address %q", user["address"])
	}
}

func TestRegisterTokenAcceptedForProfile(t *testing.T) {
	e, _ := newTestServer(t)
	token := registerUser(t, e)

	rec := doJSON(t, e, http.MethodGet, "/api/user/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	user := decodeBody(t, rec)["user"].(map[string]interface{})
	if user["email"] != "a@x.com" {
		t.Fatalf("got email %q", user["email"])
	}
	if user["id"] == "" {
		t.Fatal("profile has no id")
	}
}
