package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("favorite not found")
	ErrDuplicate       = errors.New("favorite already exists")
	ErrInvalidSelector = errors.New("exactly one of client id or product id must be set")
)

// Favorite links a client to a product. ID is internal and never rendered.
type Favorite struct {
	ID        string `json:"-" gorm:"primaryKey;type:uuid" dynamodbav:"favorite_id"`
	ClientID  int64  `json:"client_id" gorm:"not null;uniqueIndex:idx_favorite_pair" dynamodbav:"client_id"`
	ProductID int64  `json:"product_id" gorm:"not null;uniqueIndex:idx_favorite_pair;index" dynamodbav:"product_id"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// NewFavorite builds a favorite with a fresh internal identity.
func NewFavorite(clientID, productID int64) *Favorite {
	return &Favorite{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		ProductID: productID,
	}
}

// Selector picks the favorites of one client or of one product.
type Selector struct {
	ClientID  *int64
	ProductID *int64
}

func ByClient(id int64) Selector {
	return Selector{ClientID: &id}
}

func ByProduct(id int64) Selector {
	return Selector{ProductID: &id}
}

// Validate requires exactly one field to be set.
func (s Selector) Validate() error {
	if (s.ClientID == nil) == (s.ProductID == nil) {
		return ErrInvalidSelector
	}
	return nil
}

// FavoriteRepository defines the contract for favorite data access.
// Create returns ErrDuplicate when the (client, product) pair already exists.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *Favorite) error
	Find(ctx context.Context, clientID, productID int64) (*Favorite, error)
	FindByClient(ctx context.Context, clientID int64) ([]Favorite, error)
	FindByProduct(ctx context.Context, productID int64) ([]Favorite, error)
	Delete(ctx context.Context, favorite *Favorite) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
