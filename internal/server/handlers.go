package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ChethakaL/resturant-saas-sub004/internal/engine"
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/lucsky/cuid"
)

// resolveMode parses the restaurant's engine mode, falling back to the
// configured default when the restaurant has none set.
func (s *Server) resolveMode(restaurant *models.Restaurant) (models.EngineMode, error) {
	raw := restaurant.EngineMode
	if strings.TrimSpace(raw) == "" {
		raw = s.cfg.DefaultMode
	}
	return models.ParseEngineMode(raw)
}

func guestID(c *gin.Context) string {
	if id := c.Query("guest"); id != "" {
		return id
	}
	if id := c.GetHeader("X-Guest-ID"); id != "" {
		return id
	}
	return cuid.New()
}

// GetDisplayPlan computes the full display plan for one restaurant and one
// guest: category order, item hints, moods and bundles, plus the variant map
// the client needs for event correlation.
func (s *Server) GetDisplayPlan(c *gin.Context) {
	restaurantID := c.Param("id")
	guest := guestID(c)

	restaurant, err := s.restaurants.GetByID(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	mode, err := s.resolveMode(restaurant)
	if err != nil {
		// restaurant-configured mode outside the closed enum is a
		// configuration error, never silently defaulted
		log.Printf("Restaurant %s has invalid engine mode %q", restaurantID, restaurant.EngineMode)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Restaurant engine mode is misconfigured"})
		return
	}
	settings := engine.ResolveSettings(mode)

	items, err := s.menuItems.GetByRestaurantID(c.Request.Context(), restaurantID)
	if err != nil {
		log.Printf("Error loading menu items for %s: %v", restaurantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	categories, err := s.categories.GetByRestaurantID(c.Request.Context(), restaurantID)
	if err != nil {
		log.Printf("Error loading categories for %s: %v", restaurantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	variants, err := s.assigner(guest).AllVariants(c.Request.Context())
	if err != nil {
		log.Printf("Error resolving experiment variants for guest %s: %v", guest, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve experiments"})
		return
	}

	plan := s.engine.GeneratePlan(items, categories, settings, variants)

	if settings.Bundles {
		orders, err := s.orders.GetCompletedByRestaurantID(c.Request.Context(), restaurantID)
		if err != nil {
			log.Printf("Error loading order history for %s: %v", restaurantID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order history"})
			return
		}
		plan.Bundles = s.engine.SynthesizeBundles(orders, items, settings)
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant_id": restaurantID,
		"guest_id":      guest,
		"mode":          mode,
		"variants":      variants,
		"plan":          plan,
	})
}

// GetUpsells returns the stage suggestions for the guest's current cart.
func (s *Server) GetUpsells(c *gin.Context) {
	restaurantID := c.Param("id")
	guest := guestID(c)

	var cart models.CartState
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart state"})
		return
	}

	restaurant, err := s.restaurants.GetByID(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	mode, err := s.resolveMode(restaurant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Restaurant engine mode is misconfigured"})
		return
	}
	settings := engine.ResolveSettings(mode)

	items, err := s.menuItems.GetByRestaurantID(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	categories, err := s.categories.GetByRestaurantID(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	variants, err := s.assigner(guest).AllVariants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve experiments"})
		return
	}

	suggestions := s.engine.SynthesizeUpsells(cart, items, categories, settings, variants)
	c.JSON(http.StatusOK, gin.H{
		"restaurant_id": restaurantID,
		"guest_id":      guest,
		"suggestions":   suggestions,
	})
}

type eventRequest struct {
	EventType string                 `json:"event_type" binding:"required"`
	Payload   map[string]interface{} `json:"payload"`
	GuestID   string                 `json:"guest_id"`
	Variant   string                 `json:"variant"`
}

// PostEvent ingests a guest interaction report. Delivery to the sink is
// fire-and-forget: the client gets 202 as soon as the event is parsed.
func (s *Server) PostEvent(c *gin.Context) {
	restaurantID := c.Param("id")

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event"})
		return
	}

	payload, err := json.Marshal(req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
		return
	}

	event := models.NewGuestEvent(cuid.New(), restaurantID, req.EventType, string(payload), req.GuestID, req.Variant, time.Now())
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.sink.Write(event); err != nil {
			log.Printf("Failed to write guest event %s: %v", event.ID, err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"id": event.ID})
}

// GetExperiments exposes the guest's full assignment map.
func (s *Server) GetExperiments(c *gin.Context) {
	guest := c.Param("guestId")
	variants, err := s.assigner(guest).AllVariants(c.Request.Context())
	if err != nil {
		log.Printf("Error resolving experiment variants for guest %s: %v", guest, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve experiments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"guest_id": guest, "variants": variants})
}

// ResetExperiment clears one assignment so the next lookup re-buckets.
func (s *Server) ResetExperiment(c *gin.Context) {
	guest := c.Param("guestId")
	experimentID := c.Param("experimentId")
	if err := s.assigner(guest).Reset(c.Request.Context(), experimentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
