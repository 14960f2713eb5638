package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	customMiddleware "github.com/provision-store/provision-backend-go/middleware"
	"github.com/provision-store/provision-backend-go/store"
	"github.com/provision-store/provision-backend-go/utils"
)

const testSecret = "test-secret"

// newTestServer wires the handlers against the in-memory store, mirroring
// the real route table.
func newTestServer(t *testing.T) (*echo.Echo, *store.MemoryUserStore) {
	t.Helper()

	e := echo.New()
	st := store.NewMemoryUserStore()
	jwtManager := utils.NewJWTManager(testSecret)

	auth := NewAuthHandler(st, jwtManager)
	users := NewUserHandler(st)
	orders := NewOrderHandler(st)

	e.GET("/api/health", Health)
	e.GET("/api/products", ListProducts)
	e.POST("/api/auth/register", auth.Register)
	e.POST("/api/auth/login", auth.Login)

	api := e.Group("/api", customMiddleware.Auth(jwtManager))
	api.GET("/user/profile", users.GetProfile)
	api.PUT("/user/profile", users.UpdateProfile)
	api.POST("/user/favorites", users.AddFavorite)
	api.DELETE("/user/favorites/:productId", users.RemoveFavorite)
	api.POST("/orders", orders.CreateOrder)

	return e, st
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

// registerUser registers a default user and returns the session token.
func registerUser(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "A",
		"email":    "a@x.com",
		"phone":    "1234567890",
		"password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got status %d, body %s", rec.Code, rec.Body.String())
	}

	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("register: response has no token")
	}
	return token
}
