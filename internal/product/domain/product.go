package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("product not found")
	ErrDuplicate = errors.New("product already exists")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Product represents the product entity. IDs are supplied by the caller.
type Product struct {
	ID          int64    `json:"id" gorm:"primaryKey;autoIncrement:false" dynamodbav:"id"`
	Title       string   `json:"title" gorm:"not null" dynamodbav:"title"`
	Price       float64  `json:"price" gorm:"not null" dynamodbav:"price"`
	Image       string   `json:"image" dynamodbav:"image"`
	Brand       string   `json:"brand" dynamodbav:"brand"`
	ReviewScore *float64 `json:"reviewScore" dynamodbav:"review_score,omitempty"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductPatch carries a partial update; nil fields are left unchanged.
// A non-nil ID re-keys the product.
type ProductPatch struct {
	ID          *int64
	Title       *string
	Price       *float64
	Image       *string
	Brand       *string
	ReviewScore *float64
}

// ChangesID reports whether the patch moves the product to another id.
func (p ProductPatch) ChangesID(current int64) bool {
	return p.ID != nil && *p.ID != current
}

// Apply copies the present fields onto product.
func (p ProductPatch) Apply(product *Product) {
	if p.ID != nil {
		product.ID = *p.ID
	}
	if p.Title != nil {
		product.Title = *p.Title
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.ReviewScore != nil {
		score := *p.ReviewScore
		product.ReviewScore = &score
	}
}

// Page is one slice of the product listing.
type Page struct {
	CurrentPage int       `json:"current_page"`
	PageSize    int       `json:"page_size"`
	TotalItems  int64     `json:"total_items"`
	TotalPages  int       `json:"total_pages"`
	Products    []Product `json:"products"`
}

// TotalPages returns ceil(total/size).
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// ProductRepository defines the contract for product data access.
// Lookups return ErrNotFound; Create returns ErrDuplicate on an id collision.
// Update writes product under its own ID, replacing the row stored at id.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindPage(ctx context.Context, limit, offset int) ([]Product, error)
	Update(ctx context.Context, id int64, product *Product) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
