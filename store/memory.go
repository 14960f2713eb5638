package store

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/provision-store/provision-backend-go/models"
)

// MemoryUserStore keeps users in a map guarded by one RWMutex, which
// serializes writes the same way the Mongo store's atomic updates do. It
// backs the handler tests and runs the server without a Mongo instance.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	clone := *user
	s.users[user.ID.Hex()] = &clone
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryUserStore) UpdateProfile(_ context.Context, id string, upd ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Phone != "" {
		user.Phone = upd.Phone
	}
	if upd.Address != nil {
		user.Address = *upd.Address
	}
	return copyUser(user), nil
}

func (s *MemoryUserStore) AddFavorite(_ context.Context, id string, fav models.Favorite) ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	for _, existing := range user.Favorites {
		if existing.ProductID == fav.ProductID {
			return nil, ErrDuplicateFavorite
		}
	}

	user.Favorites = append(user.Favorites, fav)
	return copyUser(user).Favorites, nil
}

func (s *MemoryUserStore) RemoveFavorite(_ context.Context, id string, productID int) ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	kept := user.Favorites[:0]
	for _, fav := range user.Favorites {
		if fav.ProductID != productID {
			kept = append(kept, fav)
		}
	}
	user.Favorites = kept
	return copyUser(user).Favorites, nil
}

func (s *MemoryUserStore) AppendOrder(_ context.Context, id string, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	user.Orders = append(user.Orders, order)
	return nil
}

// copyUser returns a deep enough copy that callers cannot mutate stored
// state through the returned slices.
func copyUser(user *models.User) *models.User {
	clone := *user
	clone.Orders = append([]models.Order{}, user.Orders...)
	clone.Favorites = append([]models.Favorite{}, user.Favorites...)
	return &clone
}
