package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite is a catalog product pinned by a user. A user holds at most one
// favorite per productId.
type Favorite struct {
	ProductID int     `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
}

// OrderItem is one line of an order as submitted by the checkout flow.
type OrderItem struct {
	ProductID int     `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is embedded in its owning user document. The orderId is a
// time-based string, not a globally unique key.
type Order struct {
	OrderID   string      `bson:"orderId" json:"orderId"`
	Date      time.Time   `bson:"date" json:"date"`
	Items     []OrderItem `bson:"items" json:"items"`
	ItemCount int         `bson:"itemCount" json:"itemCount"`
	Total     float64     `bson:"total" json:"total"`
	Status    string      `bson:"status" json:"status"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"` // stored lowercased
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password,omitempty" json:"-"` // bcrypt hash, never in JSON
	Address   string             `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Orders    []Order            `bson:"orders" json:"orders"`
	Favorites []Favorite         `bson:"favorites" json:"favorites"`
}
