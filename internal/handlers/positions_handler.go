package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jyotish/internal/service"
)

type PositionsHandler struct {
	service service.PositionsService
}

func NewPositionsHandler(service service.PositionsService) *PositionsHandler {
	return &PositionsHandler{service: service}
}

// GetPositions отдаёт сидерические положения девяти грах.
// Без параметра datetime берётся текущий момент.
func (h *PositionsHandler) GetPositions(c *gin.Context) {
	ctx := c.Request.Context()

	at := time.Now().UTC()
	if raw := c.Query("datetime"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid datetime format, use RFC3339",
			})
			return
		}
		at = parsed
	}

	scheme := ayanamsaOrDefault(c.Query("ayanamsa"))

	positions, err := h.service.Current(ctx, at, scheme)
	if err != nil {
		respondServiceError(c, "failed to calculate positions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"datetime":  at.Format(time.RFC3339),
			"ayanamsa":  scheme,
			"positions": positions,
			"count":     len(positions),
		},
	})
}
