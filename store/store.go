package store

import (
	"context"
	"errors"

	"github.com/provision-store/provision-backend-go/models"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateFavorite = errors.New("product already in favorites")
)

// ProfileUpdate carries a partial profile change. Name and Phone are applied
// only when non-empty; Address is applied whenever it was provided, so an
// explicit empty string clears the field.
type ProfileUpdate struct {
	Name    string
	Phone   string
	Address *string
}

// UserStore persists user documents with their embedded orders and
// favorites. Implementations must apply each embedded-array mutation
// atomically so that concurrent writes against the same user cannot lose
// updates.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error)
	AddFavorite(ctx context.Context, id string, fav models.Favorite) ([]models.Favorite, error)
	RemoveFavorite(ctx context.Context, id string, productID int) ([]models.Favorite, error)
	AppendOrder(ctx context.Context, id string, order models.Order) error
}
