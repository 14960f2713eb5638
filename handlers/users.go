package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/provision-store/provision-backend-go/models"
	"github.com/provision-store/provision-backend-go/store"
)

type UserHandler struct {
	store store.UserStore
}

func NewUserHandler(s store.UserStore) *UserHandler {
	return &UserHandler{store: s}
}

// GetProfile returns the authenticated user's full public record including
// orders and favorites.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("userID").(string)

	user, err := h.store.FindByID(c.Request().Context(), userID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error fetching profile"})
	}

	orders := user.Orders
	if orders == nil {
		orders = []models.Order{}
	}
	favorites := user.Favorites
	if favorites == nil {
		favorites = []models.Favorite{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"id":        user.ID.Hex(),
			"name":      user.Name,
			"email":     user.Email,
			"phone":     user.Phone,
			"address":   user.Address,
			"createdAt": user.CreatedAt,
			"orders":    orders,
			"favorites": favorites,
		},
	})
}

// UpdateProfile applies a partial update. Name and phone are ignored when
// empty; address uses a pointer so an explicit "" clears the field.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req struct {
		Name    string  `json:"name"`
		Phone   string  `json:"phone"`
		Address *string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	user, err := h.store.UpdateProfile(c.Request().Context(), userID, store.ProfileUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error updating profile"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user": map[string]interface{}{
			"id":      user.ID.Hex(),
			"name":    user.Name,
			"email":   user.Email,
			"phone":   user.Phone,
			"address": user.Address,
		},
	})
}

// AddFavorite pins a product for the authenticated user.
func (h *UserHandler) AddFavorite(c echo.Context) error {
	userID := c.Get("userID").(string)

	var fav models.Favorite
	if err := c.Bind(&fav); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	favorites, err := h.store.AddFavorite(c.Request().Context(), userID, fav)
	if err != nil {
		switch err {
		case store.ErrDuplicateFavorite:
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Product already in favorites"})
		case store.ErrNotFound:
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error adding to favorites"})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Added to favorites",
		"favorites": favorites,
	})
}

// RemoveFavorite is idempotent: removing an absent or unparseable product
// id still succeeds and returns the current set.
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	userID := c.Get("userID").(string)

	productID, parseErr := strconv.Atoi(c.Param("productId"))
	if parseErr != nil {
		user, err := h.store.FindByID(c.Request().Context(), userID)
		if err != nil {
			if err == store.ErrNotFound {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error removing from favorites"})
		}
		favorites := user.Favorites
		if favorites == nil {
			favorites = []models.Favorite{}
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":   "Removed from favorites",
			"favorites": favorites,
		})
	}

	favorites, err := h.store.RemoveFavorite(c.Request().Context(), userID, productID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error removing from favorites"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Removed from favorites",
		"favorites": favorites,
	})
}
