package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/favorites-service/internal/favorite/domain"
	"github.com/tair/favorites-service/pkg/database"
)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// AutoMigrate creates the favorites table with its unique (client_id, product_id) index.
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}

func (r *GormFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	err := r.db.WithContext(ctx).Create(favorite).Error
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
	}
	return err
}

func (r *GormFavoriteRepository) Find(ctx context.Context, clientID, productID int64) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND product_id = ?", clientID, productID).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *GormFavoriteRepository) FindByClient(ctx context.Context, clientID int64) ([]domain.Favorite, error) {
	favorites := []domain.Favorite{}
	err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&favorites).Error
	return favorites, err
}

func (r *GormFavoriteRepository) FindByProduct(ctx context.Context, productID int64) ([]domain.Favorite, error) {
	favorites := []domain.Favorite{}
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&favorites).Error
	return favorites, err
}

func (r *GormFavoriteRepository) Delete(ctx context.Context, favorite *domain.Favorite) error {
	res := r.db.WithContext(ctx).Where("id = ?", favorite.ID).Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormFavoriteRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&domain.Favorite{}).Error
}

func (r *GormFavoriteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).Count(&count).Error
	return count, err
}
