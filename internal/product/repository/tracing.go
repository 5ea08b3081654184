package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/favorites-service/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// ProductRepositoryWithTracing wraps any ProductRepository with spans.
type ProductRepositoryWithTracing struct {
	next domain.ProductRepository
}

func NewProductRepositoryWithTracing(next domain.ProductRepository) *ProductRepositoryWithTracing {
	return &ProductRepositoryWithTracing{next: next}
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

func (r *ProductRepositoryWithTracing) Create(ctx context.Context, product *domain.Product) (err error) {
	ctx, span := tracer.Start(ctx, "repository.product.Create",
		trace.WithAttributes(
			attribute.Int64("product.id", product.ID),
			attribute.String("product.brand", product.Brand),
			attribute.Float64("product.price", product.Price),
		),
	)
	defer func() { finish(span, err) }()
	return r.next.Create(ctx, product)
}

func (r *ProductRepositoryWithTracing) FindByID(ctx context.Context, id int64) (product *domain.Product, err error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindByID",
		trace.WithAttributes(attribute.Int64("product.id", id)),
	)
	defer func() { finish(span, err) }()
	return r.next.FindByID(ctx, id)
}

func (r *ProductRepositoryWithTracing) FindPage(ctx context.Context, limit, offset int) (products []domain.Product, err error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindPage",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer func() {
		span.SetAttributes(attribute.Int("result.count", len(products)))
		finish(span, err)
	}()
	return r.next.FindPage(ctx, limit, offset)
}

func (r *ProductRepositoryWithTracing) Update(ctx context.Context, id int64, product *domain.Product) (err error) {
	ctx, span := tracer.Start(ctx, "repository.product.Update",
		trace.WithAttributes(
			attribute.Int64("product.id", id),
			attribute.Int64("product.new_id", product.ID),
		),
	)
	defer func() { finish(span, err) }()
	return r.next.Update(ctx, id, product)
}

func (r *ProductRepositoryWithTracing) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "repository.product.Delete",
		trace.WithAttributes(attribute.Int64("product.id", id)),
	)
	defer func() { finish(span, err) }()
	return r.next.Delete(ctx, id)
}

func (r *ProductRepositoryWithTracing) DeleteAll(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "repository.product.DeleteAll")
	defer func() { finish(span, err) }()
	return r.next.DeleteAll(ctx)
}

func (r *ProductRepositoryWithTracing) Count(ctx context.Context) (count int64, err error) {
	ctx, span := tracer.Start(ctx, "repository.product.Count")
	defer func() {
		span.SetAttributes(attribute.Int64("result.count", count))
		finish(span, err)
	}()
	return r.next.Count(ctx)
}
