package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/favorites-service/internal/favorite/domain"
	"github.com/tair/favorites-service/internal/favorite/usecase/command"
	"github.com/tair/favorites-service/internal/favorite/usecase/query"
	"github.com/tair/favorites-service/kafka"
	"github.com/tair/favorites-service/pkg/catalog"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/metrics"
	"github.com/tair/favorites-service/pkg/response"
)

// FavoriteHandler handles HTTP requests for client favorites
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler

	repo           domain.FavoriteRepository
	publisher      kafka.EventPublisher
	metrics        *metrics.HTTPMetrics
	totalFavorites prometheus.Gauge
}

// NewFavoriteHandler creates a new favorite handler. publisher may be nil.
func NewFavoriteHandler(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
	repo domain.FavoriteRepository,
	publisher kafka.EventPublisher,
	reg prometheus.Registerer,
) *FavoriteHandler {
	return &FavoriteHandler{
		addHandler:     addHandler,
		removeHandler:  removeHandler,
		listHandler:    listHandler,
		repo:           repo,
		publisher:      publisher,
		metrics:        metrics.NewHTTPMetrics(reg, "favorite_service"),
		totalFavorites: metrics.NewGauge(reg, "favorite_service_total_favorites", "Total number of favorites in the system"),
	}
}

// favoritePayload is the rendered form of a favorite.
type favoritePayload struct {
	ClientID  int64 `json:"client_id"`
	ProductID int64 `json:"product_id"`
}

// RegisterRoutes mounts the favorite routes behind protect.
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router, protect func(http.HandlerFunc) http.HandlerFunc) {
	for _, path := range []string{"/favorite", "/favorite/"} {
		router.HandleFunc(path, h.metrics.Wrap("/favorite", protect(h.AddFavorite))).Methods(http.MethodPost)
		router.HandleFunc(path, h.metrics.Wrap("/favorite", protect(h.RemoveFavorite))).Methods(http.MethodDelete)
	}
	router.HandleFunc("/favorite/{client_id}", h.metrics.Wrap("/favorite/{client_id}", protect(h.ListFavorites))).Methods(http.MethodGet)
}

// ListFavorites handles GET /favorite/{client_id}
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	clientID, err := response.ParseID("client_id", mux.Vars(r)["client_id"])
	if err != nil {
		response.Fail(w, r, err, "Invalid client ID")
		return
	}

	favorites, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{ClientID: clientID})
	if err != nil {
		response.Fail(w, r, err, "Failed to list favorites")
		return
	}

	data := make([]favoritePayload, 0, len(favorites))
	for _, f := range favorites {
		data = append(data, favoritePayload{ClientID: f.ClientID, ProductID: f.ProductID})
	}
	response.Success(w, http.StatusOK, catalog.FavoritesRetrieved, data)
}

// AddFavorite handles POST /favorite?client_id=&product_id=
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, productID, err := pairFromQuery(r)
	if err != nil {
		response.Fail(w, r, err, "Invalid favorite parameters")
		return
	}

	favorite, err := h.addHandler.Handle(ctx, command.AddFavoriteCommand{ClientID: clientID, ProductID: productID})
	if err != nil {
		response.Fail(w, r, err, "Failed to add favorite")
		return
	}

	h.updateFavoritesMetric(ctx)
	h.publish(ctx, kafka.FavoriteAdded(clientID, productID))

	response.Success(w, http.StatusOK, catalog.FavoriteAdded,
		favoritePayload{ClientID: favorite.ClientID, ProductID: favorite.ProductID}, productID)
}

// RemoveFavorite handles DELETE /favorite?client_id=&product_id=
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, productID, err := pairFromQuery(r)
	if err != nil {
		response.Fail(w, r, err, "Invalid favorite parameters")
		return
	}

	if _, err := h.removeHandler.Handle(ctx, command.RemoveFavoriteCommand{ClientID: clientID, ProductID: productID}); err != nil {
		response.Fail(w, r, err, "Failed to remove favorite")
		return
	}

	h.updateFavoritesMetric(ctx)
	h.publish(ctx, kafka.FavoriteRemoved(clientID, productID))

	response.Success(w, http.StatusOK, catalog.FavoriteRemoved, true, productID)
}

func pairFromQuery(r *http.Request) (int64, int64, error) {
	params := r.URL.Query()
	clientID, err := response.ParseID("client_id", params.Get("client_id"))
	if err != nil {
		return 0, 0, err
	}
	productID, err := response.ParseID("product_id", params.Get("product_id"))
	if err != nil {
		return 0, 0, err
	}
	return clientID, productID, nil
}

func (h *FavoriteHandler) publish(ctx context.Context, event kafka.Event) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("event_type", event.EventType).
			Int64("client_id", event.ClientID).
			Int64("product_id", event.ProductID).
			Msg("Failed to publish favorite event")
	}
}

func (h *FavoriteHandler) updateFavoritesMetric(ctx context.Context) {
	count, err := h.repo.Count(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to count favorites")
		return
	}
	h.totalFavorites.Set(float64(count))
}
