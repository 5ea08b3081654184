package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/pkg/database"
)

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Client{})
}

func (r *GormClientRepository) Create(ctx context.Context, client *domain.Client) error {
	err := r.db.WithContext(ctx).Create(client).Error
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
	}
	return err
}

func (r *GormClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (r *GormClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&client).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (r *GormClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	clients := []domain.Client{}
	err := r.db.WithContext(ctx).Order("id").Find(&clients).Error
	return clients, err
}

func (r *GormClientRepository) Update(ctx context.Context, client *domain.Client) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":  client.Name,
			"email": client.Email,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormClientRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormClientRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&domain.Client{}).Error
}

func (r *GormClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Client{}).Count(&count).Error
	return count, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
