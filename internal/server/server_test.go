package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	grpccodes "google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/tair/favorites-service/pkg/logger"
)

type stubStore struct {
	err error
}

func (s *stubStore) Ping(context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	store := &stubStore{}

	rec := httptest.NewRecorder()
	HealthCheck(store)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	store.err = errors.New("connection refused")
	rec = httptest.NewRecorder()
	HealthCheck(store)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func newTestRouter(h http.HandlerFunc) *mux.Router {
	router := mux.NewRouter()
	cfg := DefaultMiddlewareConfig(0)
	cfg.EnableTracing = false
	RegisterMiddlewares(router, cfg)
	router.HandleFunc("/probe", h)
	router.HandleFunc("/swagger/index.html", h)
	return router
}

func TestRequestIDIsPropagated(t *testing.T) {
	var seen string
	router := newTestRouter(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRecoveryMiddleware(t *testing.T) {
	router := newTestRouter(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "default-src 'self'", rec.Header().Get("Content-Security-Policy"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestGRPCHealthFollowsStore(t *testing.T) {
	store := &stubStore{}
	srv := NewGRPCServer(store, NewGRPCMetrics(prometheus.NewRegistry()))
	defer srv.Stop()

	ctx := context.Background()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, srv.Refresh(ctx))
	resp, err := srv.Health().Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	store.err = errors.New("down")
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, srv.Refresh(ctx))
	resp, err = srv.Health().Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}

func TestWatchHealthStopsWithContext(t *testing.T) {
	srv := NewGRPCServer(&stubStore{}, NewGRPCMetrics(prometheus.NewRegistry()))
	defer srv.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.WatchHealth(ctx, time.Hour)
		close(done)
	}()
	cancel()
	<-done
}

func TestMetricsInterceptor(t *testing.T) {
	m := NewGRPCMetrics(prometheus.NewRegistry())
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	ok := func(context.Context, any) (any, error) { return "ok", nil }
	fail := func(context.Context, any) (any, error) { return nil, status.Error(grpccodes.Unavailable, "down") }

	_, err := m.MetricsInterceptor(context.Background(), nil, info, ok)
	require.NoError(t, err)
	_, err = m.MetricsInterceptor(context.Background(), nil, info, fail)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues(info.FullMethod, "Unavailable")))
}
