package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/internal/product/usecase/command"
	"github.com/tair/favorites-service/internal/product/usecase/query"
	"github.com/tair/favorites-service/kafka"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/metrics"
	"github.com/tair/favorites-service/pkg/response"
	"github.com/tair/favorites-service/pkg/validation"
)

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler

	repo          domain.ProductRepository
	validator     *validation.Validator
	publisher     kafka.EventPublisher
	metrics       *metrics.HTTPMetrics
	totalProducts prometheus.Gauge
}

// NewProductHandler creates a new product handler. publisher may be nil.
func NewProductHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	repo domain.ProductRepository,
	validator *validation.Validator,
	publisher kafka.EventPublisher,
	reg prometheus.Registerer,
) *ProductHandler {
	return &ProductHandler{
		createHandler:     createHandler,
		updateHandler:     updateHandler,
		deleteHandler:     deleteHandler,
		getProductHandler: getProductHandler,
		listHandler:       listHandler,
		repo:              repo,
		validator:         validator,
		publisher:         publisher,
		metrics:           metrics.NewHTTPMetrics(reg, "product_service"),
		totalProducts:     metrics.NewGauge(reg, "product_service_total_products", "Total number of products in the system"),
	}
}

// RegisterRoutes mounts the product routes behind protect.
func (h *ProductHandler) RegisterRoutes(router *mux.Router, protect func(http.HandlerFunc) http.HandlerFunc) {
	for _, path := range []string{"/product", "/product/"} {
		router.HandleFunc(path, h.metrics.Wrap("/product", protect(h.ListProducts))).Methods(http.MethodGet)
		router.HandleFunc(path, h.metrics.Wrap("/product", protect(h.CreateProduct))).Methods(http.MethodPost)
	}
	router.HandleFunc("/product/{id}", h.metrics.Wrap("/product/{id}", protect(h.GetProduct))).Methods(http.MethodGet)
	router.HandleFunc("/product/{id}", h.metrics.Wrap("/product/{id}", protect(h.UpdateProduct))).Methods(http.MethodPut)
	router.HandleFunc("/product/{id}", h.metrics.Wrap("/product/{id}", protect(h.DeleteProduct))).Methods(http.MethodDelete)
}

// ListProducts handles GET /product?page=N&page_size=M
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	raw := params.Get("page")
	if raw == "" {
		response.Fail(w, r, apperror.Validation("page is required"), "Invalid product page")
		return
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		response.Fail(w, r, apperror.Validation("page must be an integer"), "Invalid product page")
		return
	}

	pageSize := domain.DefaultPageSize
	if raw := params.Get("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			response.Fail(w, r, apperror.Validation("page_size must be an integer"), "Invalid product page")
			return
		}
	}

	result, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{Page: page, PageSize: pageSize})
	if err != nil {
		response.Fail(w, r, err, "Failed to list products")
		return
	}
	response.Success(w, http.StatusOK, catalog.ProductsRetrieved, result)
}

// GetProduct handles GET /product/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := response.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		response.Fail(w, r, err, "Invalid product ID")
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		response.Fail(w, r, err, "Failed to get product")
		return
	}
	response.Success(w, http.StatusOK, catalog.ProductRetrieved, product, id)
}

// CreateProduct handles POST /product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	doc, body, err := response.DecodeBody(r)
	if err == nil {
		err = h.validator.Validate(validation.ProductCreate, doc)
	}
	if err != nil {
		response.Fail(w, r, err, "Invalid product payload")
		return
	}

	var req struct {
		ID          int64    `json:"id"`
		Title       string   `json:"title"`
		Price       float64  `json:"price"`
		Image       string   `json:"image"`
		Brand       string   `json:"brand"`
		ReviewScore *float64 `json:"reviewScore"`
	}
	if err := response.Unmarshal(body, &req); err != nil {
		response.Fail(w, r, err, "Invalid product payload")
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		ID:          req.ID,
		Title:       req.Title,
		Price:       req.Price,
		Image:       req.Image,
		Brand:       req.Brand,
		ReviewScore: req.ReviewScore,
	})
	if err != nil {
		response.Fail(w, r, err, "Failed to create product")
		return
	}

	h.updateProductsMetric(r.Context())

	logger.Info(r.Context()).Int64("product_id", product.ID).Msg("Product created")
	response.Success(w, http.StatusCreated, catalog.ProductCreated, product, product.ID)
}

// UpdateProduct handles PUT /product/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := response.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		response.Fail(w, r, err, "Invalid product ID")
		return
	}

	doc, body, err := response.DecodeBody(r)
	if err == nil {
		err = h.validator.Validate(validation.ProductUpdate, doc)
	}
	if err != nil {
		response.Fail(w, r, err, "Invalid product payload")
		return
	}

	var req struct {
		ID          *int64   `json:"id"`
		Title       *string  `json:"title"`
		Price       *float64 `json:"price"`
		Image       *string  `json:"image"`
		Brand       *string  `json:"brand"`
		ReviewScore *float64 `json:"reviewScore"`
	}
	if err := response.Unmarshal(body, &req); err != nil {
		response.Fail(w, r, err, "Invalid product payload")
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), command.UpdateProductCommand{
		ID: id,
		Patch: domain.ProductPatch{
			ID:          req.ID,
			Title:       req.Title,
			Price:       req.Price,
			Image:       req.Image,
			Brand:       req.Brand,
			ReviewScore: req.ReviewScore,
		},
	})
	if err != nil {
		response.Fail(w, r, err, "Failed to update product")
		return
	}

	if product.ID != id {
		logger.Info(r.Context()).
			Int64("old_product_id", id).
			Int64("product_id", product.ID).
			Msg("Product id changed")
	}
	response.Success(w, http.StatusOK, catalog.ProductUpdated, product, product.ID)
}

// DeleteProduct handles DELETE /product/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := response.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		response.Fail(w, r, err, "Invalid product ID")
		return
	}

	result, err := h.deleteHandler.Handle(ctx, command.DeleteProductCommand{ID: id})
	if err != nil {
		response.Fail(w, r, err, "Failed to delete product")
		return
	}

	logger.Info(ctx).
		Int64("product_id", id).
		Int("favorites_removed", result.FavoritesRemoved).
		Msg("Product deleted")

	h.updateProductsMetric(ctx)

	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, kafka.ProductDeleted(id, result.FavoritesRemoved)); err != nil {
			logger.Error(ctx).Err(err).Int64("product_id", id).Msg("Failed to publish product deleted event")
		}
	}

	response.Success(w, http.StatusOK, catalog.ProductRemoved, true, id)
}

func (h *ProductHandler) updateProductsMetric(ctx context.Context) {
	count, err := h.repo.Count(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to count products")
		return
	}
	h.totalProducts.Set(float64(count))
}
