package server

import (
	"sync"
	"time"

	"github.com/ChethakaL/resturant-saas-sub004/internal/engine"
	"github.com/ChethakaL/resturant-saas-sub004/internal/events"
	"github.com/ChethakaL/resturant-saas-sub004/internal/experiments"
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/ChethakaL/resturant-saas-sub004/internal/repositories"
	"github.com/gin-gonic/gin"
)

// Server is the thin HTTP surface over the optimization engine. It owns no
// business state: every request fetches a snapshot through the repositories
// and runs the pure engine over it.
type Server struct {
	cfg         *models.Config
	engine      *engine.Engine
	restaurants repositories.RestaurantRepository
	categories  repositories.CategoryRepository
	menuItems   repositories.MenuItemRepository
	orders      repositories.OrderRepository
	sink        events.EventSink
	expStore    experiments.Store

	writes sync.WaitGroup // in-flight event deliveries
}

func New(
	cfg *models.Config,
	eng *engine.Engine,
	restaurants repositories.RestaurantRepository,
	categories repositories.CategoryRepository,
	menuItems repositories.MenuItemRepository,
	orders repositories.OrderRepository,
	sink events.EventSink,
	expStore experiments.Store,
) *Server {
	return &Server{
		cfg:         cfg,
		engine:      eng,
		restaurants: restaurants,
		categories:  categories,
		menuItems:   menuItems,
		orders:      orders,
		sink:        sink,
		expStore:    expStore,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/restaurants/:id/plan", s.GetDisplayPlan)
		api.POST("/restaurants/:id/upsells", s.GetUpsells)
		api.POST("/restaurants/:id/events", s.PostEvent)
		api.GET("/guests/:guestId/experiments", s.GetExperiments)
		api.DELETE("/guests/:guestId/experiments/:experimentId", s.ResetExperiment)
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return router
}

// Drain blocks until every in-flight event delivery has finished. Callers
// must drain before closing the sink, or a late write races the close.
func (s *Server) Drain() {
	s.writes.Wait()
}

// assigner builds the per-guest experiment assigner. Assignments live in the
// injected store, so the throwaway seed only matters for first-time buckets.
func (s *Server) assigner(guestID string) *experiments.Assigner {
	return experiments.NewAssigner(s.expStore, guestID, time.Now().UnixNano())
}
