package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/adrianlim83/person-finder/pkg/database"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck reports process liveness and store reachability
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if database.Client != nil {
		if err := database.Client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "degraded",
				"database": "unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
