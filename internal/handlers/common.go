package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jyotish/internal/astro"
	"jyotish/internal/clients"
	"jyotish/internal/models"
	"jyotish/internal/service"
)

// Координаты по умолчанию: Нью-Дели.
const (
	defaultLat = "28.6139"
	defaultLon = "77.2090"
	defaultTZ  = "330"
)

// requestScope собирает место, дату и схему аянамсы из параметров запроса.
type requestScope struct {
	Lat         float64
	Lon         float64
	TZOffsetMin int
	Date        time.Time
	Scheme      models.AyanamsaScheme
}

// parseScope разбирает общие query-параметры: date, city либо lat/lon,
// tz_offset_minutes и ayanamsa. При ошибке сам пишет ответ и возвращает false.
func parseScope(c *gin.Context, geocode service.GeocodeService) (requestScope, bool) {
	var scope requestScope

	dateStr := c.Query("date")
	var year int
	var month time.Month
	var day int
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid date format, use YYYY-MM-DD",
			})
			return scope, false
		}
		year, month, day = parsed.Date()
	}

	if city := c.Query("city"); city != "" && geocode != nil {
		res, err := geocode.Resolve(c.Request.Context(), city)
		if err != nil {
			respondServiceError(c, "failed to resolve city", err)
			return scope, false
		}
		scope.Lat = res.Latitude
		scope.Lon = res.Longitude

		// Смещение пояса берём на полдень запрошенной даты: так
		// учитывается летнее время.
		probe := time.Now().UTC()
		if dateStr != "" {
			probe = time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
		}
		scope.TZOffsetMin = tzOffsetFor(res.Timezone, probe)
	} else {
		scope.Lat, _ = strconv.ParseFloat(c.DefaultQuery("lat", defaultLat), 64)
		scope.Lon, _ = strconv.ParseFloat(c.DefaultQuery("lon", defaultLon), 64)
		scope.TZOffsetMin, _ = strconv.Atoi(defaultTZ)
	}

	if tzStr := c.Query("tz_offset_minutes"); tzStr != "" {
		if v, err := strconv.Atoi(tzStr); err == nil {
			scope.TZOffsetMin = v
		}
	}

	loc := time.FixedZone("local", scope.TZOffsetMin*60)
	if dateStr == "" {
		now := time.Now().In(loc)
		year, month, day = now.Date()
	}
	scope.Date = time.Date(year, month, day, 0, 0, 0, 0, loc)

	scope.Scheme = ayanamsaOrDefault(c.Query("ayanamsa"))

	return scope, true
}

// ayanamsaOrDefault разбирает имя схемы аянамсы. Неизвестное имя не
// ошибка: откатываемся к Лахири, отметив это в логе.
func ayanamsaOrDefault(raw string) models.AyanamsaScheme {
	scheme, ok := models.ParseAyanamsa(raw)
	if !ok && raw != "" {
		log.Printf("Unknown ayanamsa scheme %q, falling back to %s", raw, scheme)
	}
	return scheme
}

// tzOffsetFor переводит название зоны IANA в смещение от UTC в минутах
// на указанный момент.
func tzOffsetFor(name string, at time.Time) int {
	if name == "" {
		return 0
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0
	}
	_, offset := at.In(loc).Zone()
	return offset / 60
}

// parseBirthMoment разбирает момент рождения: RFC3339 либо локальное
// время без зоны, которое трактуется в поясе tzOffsetMin.
func parseBirthMoment(value string, tzOffsetMin int) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	loc := time.FixedZone("local", tzOffsetMin*60)
	return time.ParseInLocation("2006-01-02T15:04:05", value, loc)
}

// respondServiceError переводит доменные ошибки в HTTP-статусы:
// кривой диапазон это 400, невозможный расчёт 422, остальное 500.
func respondServiceError(c *gin.Context, title string, err error) {
	var rangeErr *astro.InvalidRangeError
	var compErr *astro.ComputationError

	switch {
	case errors.Is(err, clients.ErrPlaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "place not found",
			"message": err.Error(),
		})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid range",
			"message": rangeErr.Error(),
		})
	case errors.As(err, &compErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "computation failed",
			"message": compErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   title,
			"message": err.Error(),
		})
	}
}
