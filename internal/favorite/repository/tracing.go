package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/favorites-service/internal/favorite/domain"
)

var tracer = otel.Tracer("favorite-repository")

// FavoriteRepositoryWithTracing wraps any FavoriteRepository with spans.
type FavoriteRepositoryWithTracing struct {
	next domain.FavoriteRepository
}

func NewFavoriteRepositoryWithTracing(next domain.FavoriteRepository) *FavoriteRepositoryWithTracing {
	return &FavoriteRepositoryWithTracing{next: next}
}

func finish(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		span.SetAttributes(attribute.Bool("result.found", false))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func pairAttributes(clientID, productID int64) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.Int64("client.id", clientID),
		attribute.Int64("product.id", productID),
	)
}

func (r *FavoriteRepositoryWithTracing) Create(ctx context.Context, favorite *domain.Favorite) (err error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.Create", pairAttributes(favorite.ClientID, favorite.ProductID))
	defer func() { finish(span, err) }()
	return r.next.Create(ctx, favorite)
}

func (r *FavoriteRepositoryWithTracing) Find(ctx context.Context, clientID, productID int64) (favorite *domain.Favorite, err error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.Find", pairAttributes(clientID, productID))
	defer func() { finish(span, err) }()
	return r.next.Find(ctx, clientID, productID)
}

func (r *FavoriteRepositoryWithTracing) FindByClient(ctx context.Context, clientID int64) (favorites []domain.Favorite, err error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.FindByClient",
		trace.WithAttributes(attribute.Int64("client.id", clientID)),
	)
	defer func() {
		span.SetAttributes(attribute.Int("result.count", len(favorites)))
		finish(span, err)
	}()
	return r.next.FindByClient(ctx, clientID)
}

func (r *FavoriteRepositoryWithTracing) FindByProduct(ctx context.Context, productID int64) (favorites []domain.Favorite, err error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.FindByProduct",
		trace.WithAttributes(attribute.Int64("product.id", productID)),
	)
	defer func() {
		span.SetAttributes(attribute.Int("result.count", len(favorites)))
		finish(span, err)
	}()
	return r.next.FindByProduct(ctx, productID)
}

func (r *FavoriteRepositoryWithTracing) Delete(ctx context.Context, favorite *domain.Favorite) (err error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.Delete", pairAttributes(favorite.ClientID, favorite.ProductID))
	defer func() { finish(span, err) }()
	return r.next.Delete(ctx, favorite)
}

func (r *FavoriteRepositoryWithTracing) DeleteAll(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.DeleteAll")
	defer func() { finish(span, err) }()
	return r.next.DeleteAll(ctx)
}

func (r *FavoriteRepositoryWithTracing) Count(ctx context.Context) (count int64, err error) {
	ctx, span := tracer.Start(ctx, "repository.favorite.Count")
	defer func() {
		span.SetAttributes(attribute.Int64("result.count", count))
		finish(span, err)
	}()
	return r.next.Count(ctx)
}
