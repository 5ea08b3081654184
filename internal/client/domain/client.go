package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("client not found")
	ErrDuplicate = errors.New("client already exists")
)

// Client represents the client entity. IDs are supplied by the caller.
// Email uniqueness is enforced by create only, so its index is not unique.
type Client struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement:false" dynamodbav:"id"`
	Name  string `json:"name" gorm:"not null" dynamodbav:"name"`
	Email string `json:"email" gorm:"not null;index" dynamodbav:"email"`
}

// TableName specifies the table name
func (Client) TableName() string {
	return "clients"
}

// ClientPatch carries a partial update; nil fields are left unchanged.
type ClientPatch struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil
}

// Apply copies the present fields onto c.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
}

// ClientRepository defines the contract for client data access.
// Lookups return ErrNotFound; Create returns ErrDuplicate on an id collision.
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, id int64) (*Client, error)
	FindByEmail(ctx context.Context, email string) (*Client, error)
	FindAll(ctx context.Context) ([]Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
