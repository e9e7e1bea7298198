package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/task-saga-service/internal/adapters/http"
	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
	"github.com/jsamuelsen11/task-saga-service/mocks"
)

func newTestRouter(t *testing.T, metrics http.Handler, mws ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockTaskService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	registry := mocks.NewMockHealthRegistry(t)

	th := handlers.NewTaskHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(th, hh, metrics, mws...), svc, registry
}

func registeredRoutes(t *testing.T, router http.Handler) map[string]bool {
	t.Helper()

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}
	return registered
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, nil)
	registered := registeredRoutes(t, router)

	expectedRoutes := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/tasks",
		"POST /api/v1/tasks",
		"GET /api/v1/tasks/{id}",
		"PUT /api/v1/tasks/{id}",
		"DELETE /api/v1/tasks/{id}",
	}
	for _, key := range expectedRoutes {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
	if registered["GET /metrics"] {
		t.Error("GET /metrics registered without a metrics handler")
	}
}

func TestRouter_MetricsRoute(t *testing.T) {
	t.Parallel()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("saga_unit_total 1\n"))
	})
	router, _, _ := newTestRouter(t, metrics)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "saga_unit_total 1\n" {
		t.Errorf("GET /metrics = %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router, _, registry := newTestRouter(t, nil, mark("outer"), mark("inner"))
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}

func TestRouter_IntegrationListTasks(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t, nil)
	svc.EXPECT().ListTasks(mock.Anything).Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationGetTaskPathParam(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t, nil)
	found := task.Reconstruct("abc-123", 1, "x", task.StatusPending, nil)
	svc.EXPECT().GetTask(mock.Anything, "abc-123").Return(found, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc-123", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/tasks", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
