package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/settings"
)

// GET /api/settings
func GetSettings(svc *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/settings"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, svc.Get())
	}
}

// PUT /api/settings — shallow merge at the top level; a provided nested
// object replaces the stored one wholesale.
func UpdateSettings(svc *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/settings"
		defer handlePanic(c, route)

		var partial map[string]json.RawMessage
		if err := c.ShouldBindJSON(&partial); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		merged, err := svc.Update(partial)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Error updating settings: "+err.Error())
			return
		}

		c.JSON(http.StatusOK, merged)
	}
}
