package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ChethakaL/resturant-saas-sub004/internal/engine"
	"github.com/ChethakaL/resturant-saas-sub004/internal/experiments"
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRestaurantRepo struct {
	restaurant *models.Restaurant
}

func (r *stubRestaurantRepo) BulkCreate(context.Context, []*models.Restaurant) error { return nil }
func (r *stubRestaurantRepo) Create(context.Context, *models.Restaurant) error       { return nil }
func (r *stubRestaurantRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	return r.restaurant, nil
}
func (r *stubRestaurantRepo) UpdateEngineMode(context.Context, string, models.EngineMode) error {
	return nil
}
func (r *stubRestaurantRepo) Count(context.Context) (int, error) { return 1, nil }
func (r *stubRestaurantRepo) DeleteAll(context.Context) error    { return nil }

type stubCategoryRepo struct {
	categories []*models.Category
}

func (r *stubCategoryRepo) BulkCreate(context.Context, []*models.Category) error { return nil }
func (r *stubCategoryRepo) GetByRestaurantID(context.Context, string) ([]*models.Category, error) {
	return r.categories, nil
}
func (r *stubCategoryRepo) Count(context.Context) (int, error) { return len(r.categories), nil }
func (r *stubCategoryRepo) DeleteAll(context.Context) error    { return nil }

type stubMenuItemRepo struct {
	items []*models.MenuItem
}

func (r *stubMenuItemRepo) BulkCreate(context.Context, []*models.MenuItem) error { return nil }
func (r *stubMenuItemRepo) Create(context.Context, *models.MenuItem) error       { return nil }
func (r *stubMenuItemRepo) GetByRestaurantID(context.Context, string) ([]*models.MenuItem, error) {
	return r.items, nil
}
func (r *stubMenuItemRepo) Count(context.Context) (int, error) { return len(r.items), nil }
func (r *stubMenuItemRepo) DeleteAll(context.Context) error    { return nil }

type stubOrderRepo struct {
	orders []*models.Order
}

func (r *stubOrderRepo) BulkCreate(context.Context, []*models.Order) error { return nil }
func (r *stubOrderRepo) GetCompletedByRestaurantID(context.Context, string) ([]*models.Order, error) {
	return r.orders, nil
}
func (r *stubOrderRepo) Count(context.Context) (int, error) { return len(r.orders), nil }
func (r *stubOrderRepo) DeleteAll(context.Context) error    { return nil }

// slowSink records events after a delivery delay, standing in for a sink
// with real write latency.
type slowSink struct {
	delay time.Duration

	mu     sync.Mutex
	events []models.GuestEvent
}

func (s *slowSink) Write(event models.GuestEvent) error {
	time.Sleep(s.delay)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *slowSink) Close() error { return nil }

func (s *slowSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func testServer(restaurant *models.Restaurant, sink *slowSink) *Server {
	cfg := &models.Config{DefaultMode: "classic"}
	return New(
		cfg,
		engine.New(engine.Config{}),
		&stubRestaurantRepo{restaurant: restaurant},
		&stubCategoryRepo{categories: []*models.Category{
			{ID: "mains", RestaurantID: restaurant.ID, Name: "Rice & Curry Mains", DisplayOrder: 1},
		}},
		&stubMenuItemRepo{items: []*models.MenuItem{
			{ID: "kottu", RestaurantID: restaurant.ID, CategoryID: "mains", Name: "Chicken Kottu", Price: 1400, Popularity: 0.9, Available: true},
		}},
		&stubOrderRepo{},
		sink,
		experiments.NewMemoryStore(),
	)
}

func TestGetDisplayPlanFallsBackToDefaultMode(t *testing.T) {
	restaurant := &models.Restaurant{ID: "r1", Name: "Upali's", EngineMode: ""}
	srv := testServer(restaurant, &slowSink{})

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1/plan?guest=g1", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("restaurant without a mode must use the configured default, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"mode":"classic"`) {
		t.Errorf("expected the default mode in the response, got %s", rec.Body.String())
	}
}

func TestGetDisplayPlanRejectsInvalidMode(t *testing.T) {
	restaurant := &models.Restaurant{ID: "r1", Name: "Upali's", EngineMode: "turbo"}
	srv := testServer(restaurant, &slowSink{})

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1/plan?guest=g1", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("an unknown configured mode must not be silently defaulted, got %d", rec.Code)
	}
}

func TestGetUpsellsFallsBackToDefaultMode(t *testing.T) {
	restaurant := &models.Restaurant{ID: "r1", Name: "Upali's", EngineMode: " "}
	srv := testServer(restaurant, &slowSink{})

	body := strings.NewReader(`{"item_ids":["kottu"],"idle_seconds":10}`)
	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/upsells?guest=g1", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("blank mode must use the configured default, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDrainWaitsForInFlightEventWrites(t *testing.T) {
	restaurant := &models.Restaurant{ID: "r1", Name: "Upali's", EngineMode: "classic"}
	sink := &slowSink{delay: 50 * time.Millisecond}
	srv := testServer(restaurant, sink)

	body := strings.NewReader(`{"event_type":"item_view","payload":{"item_id":"kottu"},"guest_id":"g1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/r1/events", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("event ingestion should return 202, got %d: %s", rec.Code, rec.Body.String())
	}

	// delivery is asynchronous; Drain must not return before it lands
	srv.Drain()
	if got := sink.count(); got != 1 {
		t.Fatalf("expected the event delivered after Drain, sink has %d", got)
	}
}
