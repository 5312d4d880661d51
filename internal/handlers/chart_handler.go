package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jyotish/internal/astro"
	"jyotish/internal/service"
)

type ChartHandler struct {
	service service.ChartService
}

func NewChartHandler(service service.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// ChartRequest описывает тело запроса карты. Datetime принимает RFC3339
// либо локальное время YYYY-MM-DDTHH:MM:SS в поясе tz_offset_minutes.
type ChartRequest struct {
	Datetime        string  `json:"datetime"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	TZOffsetMinutes int     `json:"tz_offset_minutes"`
	Ayanamsa        string  `json:"ayanamsa"`
	Divisions       []int   `json:"divisions"`
	Division        int     `json:"division"`
	Levels          int     `json:"levels"`
	HorizonYears    float64 `json:"horizon_years"`
}

// chartInput проверяет тело и собирает вход расчёта.
// При ошибке сам пишет ответ и возвращает false.
func chartInput(c *gin.Context) (astro.ChartInput, *ChartRequest, bool) {
	var req ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return astro.ChartInput{}, nil, false
	}
	if req.Datetime == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "datetime is required",
		})
		return astro.ChartInput{}, nil, false
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "latitude must be within -90..90 and longitude within -180..180",
		})
		return astro.ChartInput{}, nil, false
	}

	moment, err := parseBirthMoment(req.Datetime, req.TZOffsetMinutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid datetime, use RFC3339 or YYYY-MM-DDTHH:MM:SS",
		})
		return astro.ChartInput{}, nil, false
	}

	scheme := ayanamsaOrDefault(req.Ayanamsa)

	return astro.ChartInput{
		Moment:      moment,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TZOffsetMin: req.TZOffsetMinutes,
		Ayanamsa:    scheme,
	}, &req, true
}

// CreateChart строит натальную карту с дробными картами.
func (h *ChartHandler) CreateChart(c *gin.Context) {
	ctx := c.Request.Context()

	in, req, ok := chartInput(c)
	if !ok {
		return
	}
	for _, d := range req.Divisions {
		if d < 1 || d > 60 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "division must be within 1..60",
			})
			return
		}
	}

	bundle, err := h.service.GetChart(ctx, in, req.Divisions)
	if err != nil {
		respondServiceError(c, "failed to calculate chart", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bundle,
	})
}

// CreateDivisionalChart строит одну варгу D-n.
func (h *ChartHandler) CreateDivisionalChart(c *gin.Context) {
	ctx := c.Request.Context()

	in, req, ok := chartInput(c)
	if !ok {
		return
	}
	if req.Division < 1 || req.Division > 60 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "division must be within 1..60",
		})
		return
	}

	dc, err := h.service.GetDivisional(ctx, in, req.Division)
	if err != nil {
		respondServiceError(c, "failed to calculate divisional chart", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dc,
	})
}

// GetDasha строит таймлайн Вимшоттари по данным рождения.
func (h *ChartHandler) GetDasha(c *gin.Context) {
	ctx := c.Request.Context()

	in, req, ok := chartInput(c)
	if !ok {
		return
	}

	periods, err := h.service.GetDasha(ctx, in, req.Levels, req.HorizonYears)
	if err != nil {
		respondServiceError(c, "failed to calculate dasha timeline", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"periods": periods,
			"count":   len(periods),
		},
	})
}
