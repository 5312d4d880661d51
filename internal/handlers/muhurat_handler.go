package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jyotish/internal/models"
	"jyotish/internal/service"
)

type MuhuratHandler struct {
	service  service.MuhuratService
	panchang service.PanchangService
	geocode  service.GeocodeService
}

func NewMuhuratHandler(service service.MuhuratService, panchang service.PanchangService, geocode service.GeocodeService) *MuhuratHandler {
	return &MuhuratHandler{service: service, panchang: panchang, geocode: geocode}
}

// MuhuratSearchRequest описывает тело поиска окон. Указатели отличают
// незаполненный флаг от false: пустой avoid_rahu_kalam включён.
type MuhuratSearchRequest struct {
	EventType         string  `json:"event_type"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	City              string  `json:"city"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	TZOffsetMinutes   int     `json:"tz_offset_minutes"`
	Ayanamsa          string  `json:"ayanamsa"`
	AvoidRahuKalam    *bool   `json:"avoid_rahu_kalam"`
	AvoidYamagandam   *bool   `json:"avoid_yamagandam"`
	ExcludeTithis     []int   `json:"exclude_tithis"`
	ExcludeNakshatras []int   `json:"exclude_nakshatras"`
	MaxResults        int     `json:"max_results"`
}

// muhuratQuery проверяет разобранное тело и собирает параметры поиска.
// При ошибке сам пишет ответ и возвращает false.
func muhuratQuery(c *gin.Context, geocode service.GeocodeService, req MuhuratSearchRequest) (models.MuhuratQuery, bool) {
	// Пустая категория означает общий благоприятный поиск,
	// опечатка в имени отклоняется со списком известных.
	event := models.EventGeneralAuspicious
	if req.EventType != "" {
		parsed, known := models.ParseEventType(req.EventType)
		if !known {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "unknown event type",
				"event_types": models.EventTypes(),
			})
			return models.MuhuratQuery{}, false
		}
		event = parsed
	}

	if req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_date and end_date are required, use YYYY-MM-DD",
		})
		return models.MuhuratQuery{}, false
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid start_date format, use YYYY-MM-DD",
		})
		return models.MuhuratQuery{}, false
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid end_date format, use YYYY-MM-DD",
		})
		return models.MuhuratQuery{}, false
	}

	lat, lon, tz := req.Latitude, req.Longitude, req.TZOffsetMinutes
	if req.City != "" && geocode != nil {
		res, gerr := geocode.Resolve(c.Request.Context(), req.City)
		if gerr != nil {
			respondServiceError(c, "failed to resolve city", gerr)
			return models.MuhuratQuery{}, false
		}
		lat, lon = res.Latitude, res.Longitude
		if req.TZOffsetMinutes == 0 {
			tz = tzOffsetFor(res.Timezone, start.Add(12*time.Hour))
		}
	}

	scheme := ayanamsaOrDefault(req.Ayanamsa)

	loc := time.FixedZone("local", tz*60)
	q := models.MuhuratQuery{
		Event:             event,
		Start:             time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc),
		End:               time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc),
		Latitude:          lat,
		Longitude:         lon,
		TZOffsetMin:       tz,
		Ayanamsa:          scheme,
		AvoidRahuKalam:    true,
		ExcludeTithis:     req.ExcludeTithis,
		ExcludeNakshatras: req.ExcludeNakshatras,
		MaxResults:        req.MaxResults,
	}
	if req.AvoidRahuKalam != nil {
		q.AvoidRahuKalam = *req.AvoidRahuKalam
	}
	if req.AvoidYamagandam != nil {
		q.AvoidYamagandam = *req.AvoidYamagandam
	}
	return q, true
}

// SearchMuhurat ищет благоприятные окна в диапазоне дат.
func (h *MuhuratHandler) SearchMuhurat(c *gin.Context) {
	ctx := c.Request.Context()

	var req MuhuratSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	q, ok := muhuratQuery(c, h.geocode, req)
	if !ok {
		return
	}

	result, err := h.service.Search(ctx, q)
	if err != nil {
		respondServiceError(c, "failed to search muhurat windows", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetEventTypes отдаёт справочник категорий событий.
func (h *MuhuratHandler) GetEventTypes(c *gin.Context) {
	infos := h.service.EventTypes()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    infos,
		"count":   len(infos),
	})
}

// GetChoghadiya отдаёт дневные и ночные сегменты на дату.
func (h *MuhuratHandler) GetChoghadiya(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := parseScope(c, h.geocode)
	if !ok {
		return
	}

	day, night, err := h.panchang.GetChoghadiya(ctx, scope.Date, scope.Lat, scope.Lon, scope.TZOffsetMin)
	if err != nil {
		respondServiceError(c, "failed to calculate choghadiya", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"date":  scope.Date.Format("2006-01-02"),
			"day":   day,
			"night": night,
		},
	})
}

// GetHora отдаёт планетарные часы на дату.
func (h *MuhuratHandler) GetHora(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := parseScope(c, h.geocode)
	if !ok {
		return
	}

	periods, err := h.panchang.GetHora(ctx, scope.Date, scope.Lat, scope.Lon, scope.TZOffsetMin)
	if err != nil {
		respondServiceError(c, "failed to calculate hora", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"date":    scope.Date.Format("2006-01-02"),
			"periods": periods,
			"count":   len(periods),
		},
	})
}

// GetToday отдаёт сводку на текущий момент: панчанг, действующие
// сегменты и активные запретные периоды.
func (h *MuhuratHandler) GetToday(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := parseScope(c, h.geocode)
	if !ok {
		return
	}

	now := time.Now().In(time.FixedZone("local", scope.TZOffsetMin*60))
	summary, err := h.service.Today(ctx, now, scope.Lat, scope.Lon, scope.TZOffsetMin, scope.Scheme)
	if err != nil {
		respondServiceError(c, "failed to build today summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summary,
	})
}
