package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/provision-store/provision-backend-go/models"
	"github.com/provision-store/provision-backend-go/store"
	"github.com/provision-store/provision-backend-go/utils"
)

type AuthHandler struct {
	store store.UserStore
	jwt   *utils.JWTManager
}

func NewAuthHandler(s store.UserStore, jwt *utils.JWTManager) *AuthHandler {
	return &AuthHandler{store: s, jwt: jwt}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and issues a session token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	if msg := validateRegistration(req.Name, req.Email, req.Phone, req.Password); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error during registration"})
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		Orders:    []models.Order{},
		Favorites: []models.Favorite{},
	}

	if err := h.store.Create(c.Request().Context(), user); err != nil {
		if err == store.ErrDuplicateEmail {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error during registration"})
	}

	token, err := h.jwt.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to generate token"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"token":   token,
		"user": map[string]interface{}{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
	})
}

// Login verifies credentials and issues a fresh token. The response for an
// unknown email and a wrong password is identical.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	if msg := validateLogin(req.Email, req.Password); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
	}

	user, err := h.store.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error during login"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
	}

	token, err := h.jwt.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user": map[string]interface{}{
			"id":      user.ID.Hex(),
			"name":    user.Name,
			"email":   user.Email,
			"phone":   user.Phone,
			"address": user.Address,
		},
	})
}
