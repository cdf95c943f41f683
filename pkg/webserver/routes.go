package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		// Itinerary
		trip := v1.Group("/trip")
		{
			trip.GET("", s.getTrip)
			trip.GET("/meta", s.getTripMeta)
			trip.GET("/:dayId", s.getDay)
			trip.POST("/:dayId/activities", s.addActivity)
			trip.PATCH("/:dayId/activities/:activityId", s.updateActivity)
			trip.DELETE("/:dayId/activities/:activityId", s.deleteActivity)
			trip.POST("/:dayId/activities/:activityId/photo", s.attachPhoto)
		}

		// Static reference cards
		v1.GET("/tips", s.getTips)

		// Per-browser view state
		view := v1.Group("/view")
		{
			view.GET("", s.getViewState)
			view.PUT("/edit", s.startEdit)
			view.DELETE("/edit", s.finishEdit)
			view.PUT("/tip", s.openTip)
			view.DELETE("/tip", s.closeTip)
			view.PUT("/conclusion", s.revealConclusion)
			view.DELETE("/conclusion", s.dismissConclusion)
			view.PUT("/currency", s.setCurrencyInput)
		}

		// Stateless conversion display
		v1.GET("/convert", s.convert)
	}

	// Catch-all
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
