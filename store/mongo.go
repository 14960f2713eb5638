package store

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/provision-store/provision-backend-go/models"
)

// MongoUserStore keeps each user as one document in the users collection.
// All mutations of the embedded orders/favorites arrays go through single
// atomic update documents ($push/$pull with guard filters), so two
// concurrent writes against the same user cannot overwrite each other.
type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Emails are normalized to
// lower case before every write and lookup, so the index also enforces
// case-insensitive uniqueness.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	err := s.col.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return ErrDuplicateEmail
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	if upd.Name != "" {
		set["name"] = upd.Name
	}
	if upd.Phone != "" {
		set["phone"] = upd.Phone
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	var user models.User
	err = s.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) AddFavorite(ctx context.Context, id string, fav models.Favorite) ([]models.Favorite, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	// The guard filter makes the duplicate check and the append one atomic
	// operation: the update matches only when the productId is absent.
	var user models.User
	err = s.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "favorites.productId": bson.M{"$ne": fav.ProductID}},
		bson.M{"$push": bson.M{"favorites": fav}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	if err == mongo.ErrNoDocuments {
		if _, findErr := s.FindByID(ctx, id); findErr != nil {
			return nil, findErr
		}
		return nil, ErrDuplicateFavorite
	}
	if err != nil {
		return nil, err
	}
	return nonNilFavorites(user.Favorites), nil
}

func (s *MongoUserStore) RemoveFavorite(ctx context.Context, id string, productID int) ([]models.Favorite, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"favorites": bson.M{"productId": productID}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return nonNilFavorites(user.Favorites), nil
}

func (s *MongoUserStore) AppendOrder(ctx context.Context, id string, order models.Order) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.col.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"orders": order}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func nonNilFavorites(favs []models.Favorite) []models.Favorite {
	if favs == nil {
		return []models.Favorite{}
	}
	return favs
}
