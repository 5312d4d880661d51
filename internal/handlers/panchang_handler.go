package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jyotish/internal/service"
)

type PanchangHandler struct {
	service service.PanchangService
	geocode service.GeocodeService
}

func NewPanchangHandler(service service.PanchangService, geocode service.GeocodeService) *PanchangHandler {
	return &PanchangHandler{service: service, geocode: geocode}
}

// GetDaily отдаёт панчанг на дату и место.
func (h *PanchangHandler) GetDaily(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := parseScope(c, h.geocode)
	if !ok {
		return
	}

	p, err := h.service.GetDaily(ctx, scope.Date, scope.Lat, scope.Lon, scope.TZOffsetMin, scope.Scheme)
	if err != nil {
		respondServiceError(c, "failed to calculate panchang", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}

// GetMonthly отдаёт сводку по дням календарного месяца.
func (h *PanchangHandler) GetMonthly(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := parseScope(c, h.geocode)
	if !ok {
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be within 1..12"})
		return
	}

	days, err := h.service.GetMonthly(ctx, year, time.Month(month), scope.Lat, scope.Lon, scope.TZOffsetMin, scope.Scheme)
	if err != nil {
		respondServiceError(c, "failed to calculate monthly panchang", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"days":  days,
			"count": len(days),
			"year":  year,
			"month": month,
		},
	})
}

var periodDescriptions = map[string]string{
	"Rahu Kalam":   "Inauspicious for starting new ventures",
	"Yamagandam":   "Inauspicious, associated with Yama (death)",
	"Gulika Kalam": "Inauspicious, ruled by Saturn's son Gulika",
}

// GetPeriods отдаёт неблагоприятные периоды дня с пояснениями.
func (h *PanchangHandler) GetPeriods(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := parseScope(c, h.geocode)
	if !ok {
		return
	}

	p, err := h.service.GetDaily(ctx, scope.Date, scope.Lat, scope.Lon, scope.TZOffsetMin, scope.Scheme)
	if err != nil {
		respondServiceError(c, "failed to calculate panchang", err)
		return
	}

	periods := make([]gin.H, 0, 3)
	for _, ip := range []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{p.RahuKalam.Name, p.RahuKalam.Start, p.RahuKalam.End},
		{p.Yamagandam.Name, p.Yamagandam.Start, p.Yamagandam.End},
		{p.GulikaKalam.Name, p.GulikaKalam.Start, p.GulikaKalam.End},
	} {
		periods = append(periods, gin.H{
			"name":        ip.name,
			"start":       ip.start,
			"end":         ip.end,
			"description": periodDescriptions[ip.name],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"date":    scope.Date.Format("2006-01-02"),
			"periods": periods,
			"sunrise": p.Sun.Sunrise,
			"sunset":  p.Sun.Sunset,
		},
	})
}
