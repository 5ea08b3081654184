package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/favorites-service/internal/client/domain"
)

var tracer = otel.Tracer("client-repository")

// ClientRepositoryWithTracing wraps any ClientRepository with spans.
type ClientRepositoryWithTracing struct {
	next domain.ClientRepository
}

func NewClientRepositoryWithTracing(next domain.ClientRepository) *ClientRepositoryWithTracing {
	return &ClientRepositoryWithTracing{next: next}
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

func (r *ClientRepositoryWithTracing) Create(ctx context.Context, client *domain.Client) (err error) {
	ctx, span := tracer.Start(ctx, "repository.client.Create",
		trace.WithAttributes(attribute.Int64("client.id", client.ID)),
	)
	defer func() { finish(span, err) }()
	return r.next.Create(ctx, client)
}

func (r *ClientRepositoryWithTracing) FindByID(ctx context.Context, id int64) (client *domain.Client, err error) {
	ctx, span := tracer.Start(ctx, "repository.client.FindByID",
		trace.WithAttributes(attribute.Int64("client.id", id)),
	)
	defer func() { finish(span, err) }()
	return r.next.FindByID(ctx, id)
}

func (r *ClientRepositoryWithTracing) FindByEmail(ctx context.Context, email string) (client *domain.Client, err error) {
	ctx, span := tracer.Start(ctx, "repository.client.FindByEmail")
	defer func() { finish(span, err) }()
	return r.next.FindByEmail(ctx, email)
}

func (r *ClientRepositoryWithTracing) FindAll(ctx context.Context) (clients []domain.Client, err error) {
	ctx, span := tracer.Start(ctx, "repository.client.FindAll")
	defer func() {
		span.SetAttributes(attribute.Int("result.count", len(clients)))
		finish(span, err)
	}()
	return r.next.FindAll(ctx)
}

func (r *ClientRepositoryWithTracing) Update(ctx context.Context, client *domain.Client) (err error) {
	ctx, span := tracer.Start(ctx, "repository.client.Update",
		trace.WithAttributes(attribute.Int64("client.id", client.ID)),
	)
	defer func() { finish(span, err) }()
	return r.next.Update(ctx, client)
}

func (r *ClientRepositoryWithTracing) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "repository.client.Delete",
		trace.WithAttributes(attribute.Int64("client.id", id)),
	)
	defer func() { finish(span, err) }()
	return r.next.Delete(ctx, id)
}

func (r *ClientRepositoryWithTracing) DeleteAll(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "repository.client.DeleteAll")
	defer func() { finish(span, err) }()
	return r.next.DeleteAll(ctx)
}

func (r *ClientRepositoryWithTracing) Count(ctx context.Context) (count int64, err error) {
	ctx, span := tracer.Start(ctx, "repository.client.Count")
	defer func() {
		span.SetAttributes(attribute.Int64("result.count", count))
		finish(span, err)
	}()
	return r.next.Count(ctx)
}
