package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jyotish/internal/astro"
	"jyotish/internal/models"
	"jyotish/internal/service"
)

type MatchmakingHandler struct {
	service service.MatchmakingService
}

func NewMatchmakingHandler(service service.MatchmakingService) *MatchmakingHandler {
	return &MatchmakingHandler{service: service}
}

// PartyRequest описывает одного партнёра: либо готовая пара
// накшатра-раши, либо данные рождения для построения карты.
type PartyRequest struct {
	Nakshatra       int     `json:"nakshatra"`
	Rashi           int     `json:"rashi"`
	Datetime        string  `json:"datetime"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	TZOffsetMinutes int     `json:"tz_offset_minutes"`
}

type MatchRequest struct {
	Bride    PartyRequest `json:"bride"`
	Groom    PartyRequest `json:"groom"`
	Ayanamsa string       `json:"ayanamsa"`
}

// party превращает пару накшатра-раши в модель, проверяя диапазоны.
func party(c *gin.Context, role string, req PartyRequest) (models.MatchParty, bool) {
	if req.Nakshatra < 1 || req.Nakshatra > 27 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": role + " nakshatra must be within 1..27",
		})
		return models.MatchParty{}, false
	}
	if req.Rashi < 1 || req.Rashi > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": role + " rashi must be within 1..12",
		})
		return models.MatchParty{}, false
	}
	return models.MatchParty{
		Nakshatra: models.Nakshatra(req.Nakshatra),
		Rashi:     models.Rashi(req.Rashi),
	}, true
}

// birthInput собирает данные рождения партнёра для расчёта карты.
func birthInput(c *gin.Context, role string, req PartyRequest, scheme models.AyanamsaScheme) (astro.ChartInput, bool) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": role + " latitude must be within -90..90 and longitude within -180..180",
		})
		return astro.ChartInput{}, false
	}
	moment, err := parseBirthMoment(req.Datetime, req.TZOffsetMinutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": role + " datetime is invalid, use RFC3339 or YYYY-MM-DDTHH:MM:SS",
		})
		return astro.ChartInput{}, false
	}
	return astro.ChartInput{
		Moment:      moment,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TZOffsetMin: req.TZOffsetMinutes,
		Ayanamsa:    scheme,
	}, true
}

// GetCompatibility считает полную совместимость. Режим выбирается по
// телу запроса: заполненные datetime обоих партнёров включают расчёт
// от данных рождения, иначе ожидаются пары накшатра-раши.
func (h *MatchmakingHandler) GetCompatibility(c *gin.Context) {
	ctx := c.Request.Context()

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	if req.Bride.Datetime != "" || req.Groom.Datetime != "" {
		if req.Bride.Datetime == "" || req.Groom.Datetime == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "both parties need a datetime for birth data mode",
			})
			return
		}

		scheme := ayanamsaOrDefault(req.Ayanamsa)
		bride, ok := birthInput(c, "bride", req.Bride, scheme)
		if !ok {
			return
		}
		groom, ok := birthInput(c, "groom", req.Groom, scheme)
		if !ok {
			return
		}

		result, err := h.service.CompatibilityFromBirth(ctx, bride, groom)
		if err != nil {
			respondServiceError(c, "failed to calculate compatibility", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    result,
		})
		return
	}

	bride, ok := party(c, "bride", req.Bride)
	if !ok {
		return
	}
	groom, ok := party(c, "groom", req.Groom)
	if !ok {
		return
	}

	result, err := h.service.Compatibility(bride, groom)
	if err != nil {
		respondServiceError(c, "failed to calculate compatibility", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetPorutham считает десять южноиндийских факторов по парам.
func (h *MatchmakingHandler) GetPorutham(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	bride, ok := party(c, "bride", req.Bride)
	if !ok {
		return
	}
	groom, ok := party(c, "groom", req.Groom)
	if !ok {
		return
	}

	result, err := h.service.Porutham(bride, groom)
	if err != nil {
		respondServiceError(c, "failed to calculate porutham", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetAshtakoota считает восемь кут северной системы по парам.
func (h *MatchmakingHandler) GetAshtakoota(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	bride, ok := party(c, "bride", req.Bride)
	if !ok {
		return
	}
	groom, ok := party(c, "groom", req.Groom)
	if !ok {
		return
	}

	result, err := h.service.Ashtakoota(bride, groom)
	if err != nil {
		respondServiceError(c, "failed to calculate ashtakoota", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
