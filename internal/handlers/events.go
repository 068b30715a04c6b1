package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/priyanshuroy/rover-security-api/internal/models"
	"github.com/priyanshuroy/rover-security-api/internal/store"
)

// defaultReportLimit bounds GET /api/reports when no limit is given.
const defaultReportLimit = 50

// RegisterEventRoutes registers the rover-facing endpoints.
//
// POST /api/rover/update
// - Accepts any JSON object; the payload is stored as-is, no shape checks
// - Durable: returns success only after the store write completes
//
// GET /api/reports?limit=N
// - Returns the newest N events, newest first (default 50)
// - Non-positive limits return an empty list
func RegisterEventRoutes(r gin.IRoutes, st store.Store) {
	r.POST("/api/rover/update", func(c *gin.Context) {
		var data map[string]any
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payload must be a JSON object"})
			return
		}

		ev, err := st.InsertEvent(c.Request.Context(), data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store event"})
			return
		}

		c.JSON(http.StatusCreated, models.EventIngestResponse{
			Status:  "success",
			EventID: ev.ID,
		})
	})

	r.GET("/api/reports", func(c *gin.Context) {
		limit := defaultReportLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
				return
			}
			limit = n
		}

		events, err := st.ListEvents(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reports"})
			return
		}

		c.JSON(http.StatusOK, events)
	})
}
