package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/internal/client/usecase/command"
	"github.com/tair/favorites-service/internal/client/usecase/query"
	"github.com/tair/favorites-service/kafka"
	"github.com/tair/favorites-service/pkg/catalog"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/metrics"
	"github.com/tair/favorites-service/pkg/response"
	"github.com/tair/favorites-service/pkg/validation"
)

// ClientHandler handles HTTP requests for clients using CQRS pattern
type ClientHandler struct {
	// Command handlers
	createHandler *command.CreateClientHandler
	updateHandler *command.UpdateClientHandler
	deleteHandler *command.DeleteClientHandler

	// Query handlers
	getClientHandler *query.GetClientHandler
	listHandler      *query.ListClientsHandler

	repo         domain.ClientRepository
	validator    *validation.Validator
	publisher    kafka.EventPublisher
	metrics      *metrics.HTTPMetrics
	totalClients prometheus.Gauge
}

// NewClientHandler creates a new client handler. publisher may be nil.
func NewClientHandler(
	createHandler *command.CreateClientHandler,
	updateHandler *command.UpdateClientHandler,
	deleteHandler *command.DeleteClientHandler,
	getClientHandler *query.GetClientHandler,
	listHandler *query.ListClientsHandler,
	repo domain.ClientRepository,
	validator *validation.Validator,
	publisher kafka.EventPublisher,
	reg prometheus.Registerer,
) *ClientHandler {
	return &ClientHandler{
		createHandler:    createHandler,
		updateHandler:    updateHandler,
		deleteHandler:    deleteHandler,
		getClientHandler: getClientHandler,
		listHandler:      listHandler,
		repo:             repo,
		validator:        validator,
		publisher:        publisher,
		metrics:          metrics.NewHTTPMetrics(reg, "client_service"),
		totalClients:     metrics.NewGauge(reg, "client_service_total_clients", "Total number of clients in the system"),
	}
}

// RegisterRoutes mounts the client routes behind protect.
func (h *ClientHandler) RegisterRoutes(router *mux.Router, protect func(http.HandlerFunc) http.HandlerFunc) {
	for _, path := range []string{"/client", "/client/"} {
		router.HandleFunc(path, h.metrics.Wrap("/client", protect(h.ListClients))).Methods(http.MethodGet)
		router.HandleFunc(path, h.metrics.Wrap("/client", protect(h.CreateClient))).Methods(http.MethodPost)
	}
	router.HandleFunc("/client/{id}", h.metrics.Wrap("/client/{id}", protect(h.GetClient))).Methods(http.MethodGet)
	router.HandleFunc("/client/{id}", h.metrics.Wrap("/client/{id}", protect(h.UpdateClient))).Methods(http.MethodPut)
	router.HandleFunc("/client/{id}", h.metrics.Wrap("/client/{id}", protect(h.DeleteClient))).Methods(http.MethodDelete)
}

// ListClients handles GET /client
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.listHandler.Handle(r.Context(), query.ListClientsQuery{})
	if err != nil {
		response.Fail(w, r, err, "Failed to list clients")
		return
	}
	response.Success(w, http.StatusOK, catalog.ClientsRetrieved, clients)
}

// GetClient handles GET /client/{id}
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := response.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		response.Fail(w, r, err, "Invalid client ID")
		return
	}

	client, err := h.getClientHandler.Handle(r.Context(), query.GetClientQuery{ID: id})
	if err != nil {
		response.Fail(w, r, err, "Failed to get client")
		return
	}
	response.Success(w, http.StatusOK, catalog.ClientRetrieved, client, id)
}

// CreateClient handles POST /client
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	doc, body, err := response.DecodeBody(r)
	if err == nil {
		err = h.validator.Validate(validation.ClientCreate, doc)
	}
	if err != nil {
		response.Fail(w, r, err, "Invalid client payload")
		return
	}

	var req struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := response.Unmarshal(body, &req); err != nil {
		response.Fail(w, r, err, "Invalid client payload")
		return
	}

	client, err := h.createHandler.Handle(r.Context(), command.CreateClientCommand{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		response.Fail(w, r, err, "Failed to create client")
		return
	}

	h.updateClientsMetric(r.Context())

	logger.Info(r.Context()).Int64("client_id", client.ID).Msg("Client created")
	response.Success(w, http.StatusOK, catalog.ClientCreated, client, client.ID)
}

// UpdateClient handles PUT /client/{id}
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := response.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		response.Fail(w, r, err, "Invalid client ID")
		return
	}

	doc, body, err := response.DecodeBody(r)
	if err == nil {
		err = h.validator.Validate(validation.ClientUpdate, doc)
	}
	if err != nil {
		response.Fail(w, r, err, "Invalid client payload")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := response.Unmarshal(body, &req); err != nil {
		response.Fail(w, r, err, "Invalid client payload")
		return
	}

	client, err := h.updateHandler.Handle(r.Context(), command.UpdateClientCommand{
		ID:    id,
		Patch: domain.ClientPatch{Name: req.Name, Email: req.Email},
	})
	if err != nil {
		response.Fail(w, r, err, "Failed to update client")
		return
	}
	response.Success(w, http.StatusOK, catalog.ClientUpdated, client, id)
}

// DeleteClient handles DELETE /client/{id}
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := response.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		response.Fail(w, r, err, "Invalid client ID")
		return
	}

	result, err := h.deleteHandler.Handle(ctx, command.DeleteClientCommand{ID: id})
	if err != nil {
		response.Fail(w, r, err, "Failed to delete client")
		return
	}

	logger.Info(ctx).
		Int64("client_id", id).
		Int("favorites_removed", result.FavoritesRemoved).
		Msg("Client deleted")

	h.updateClientsMetric(ctx)

	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, kafka.ClientDeleted(id, result.FavoritesRemoved)); err != nil {
			logger.Error(ctx).Err(err).Int64("client_id", id).Msg("Failed to publish client deleted event")
		}
	}

	response.Success(w, http.StatusOK, catalog.ClientRemoved, true, id)
}

func (h *ClientHandler) updateClientsMetric(ctx context.Context) {
	count, err := h.repo.Count(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to count clients")
		return
	}
	h.totalClients.Set(float64(count))
}
