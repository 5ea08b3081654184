package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/favorite/domain"
	"github.com/tair/favorites-service/pkg/apperror"
)

// RemoveAllFavoritesCommand removes every favorite matching the selector
type RemoveAllFavoritesCommand struct {
	Selector domain.Selector
}

// RemoveAllFavoritesHandler performs the cascade used when a client or a
// product is deleted.
type RemoveAllFavoritesHandler struct {
	favorites domain.FavoriteRepository
}

func NewRemoveAllFavoritesHandler(favorites domain.FavoriteRepository) *RemoveAllFavoritesHandler {
	return &RemoveAllFavoritesHandler{favorites: favorites}
}

// Handle deletes the matching favorites one at a time and returns how many
// were removed. Zero matches is a success. The first failing delete stops
// the cascade; favorites already removed stay removed.
func (h *RemoveAllFavoritesHandler) Handle(ctx context.Context, cmd RemoveAllFavoritesCommand) (int, error) {
	if err := cmd.Selector.Validate(); err != nil {
		return 0, apperror.Validation(err.Error())
	}

	var (
		matches []domain.Favorite
		err     error
	)
	if cmd.Selector.ClientID != nil {
		matches, err = h.favorites.FindByClient(ctx, *cmd.Selector.ClientID)
	} else {
		matches, err = h.favorites.FindByProduct(ctx, *cmd.Selector.ProductID)
	}
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("failed to find favorites: %w", err))
	}

	removed := 0
	for i := range matches {
		if err := h.favorites.Delete(ctx, &matches[i]); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return removed, apperror.Internal(fmt.Errorf("failed to remove favorite %d/%d: %w",
				matches[i].ClientID, matches[i].ProductID, err))
		}
		removed++
	}
	return removed, nil
}

// RemoveForClient removes every favorite of a client.
func (h *RemoveAllFavoritesHandler) RemoveForClient(ctx context.Context, clientID int64) (int, error) {
	return h.Handle(ctx, RemoveAllFavoritesCommand{Selector: domain.ByClient(clientID)})
}

// RemoveForProduct removes every favorite of a product.
func (h *RemoveAllFavoritesHandler) RemoveForProduct(ctx context.Context, productID int64) (int, error) {
	return h.Handle(ctx, RemoveAllFavoritesCommand{Selector: domain.ByProduct(productID)})
}
