package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jyotish/internal/service"
)

type ExportHandler struct {
	muhurat  service.MuhuratService
	panchang service.PanchangService
	export   service.ExportService
	geocode  service.GeocodeService
}

func NewExportHandler(muhurat service.MuhuratService, panchang service.PanchangService, export service.ExportService, geocode service.GeocodeService) *ExportHandler {
	return &ExportHandler{muhurat: muhurat, panchang: panchang, export: export, geocode: geocode}
}

type ExportMuhuratRequest struct {
	MuhuratSearchRequest
	Format string `json:"format"`
}

type ExportPanchangRequest struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	City            string  `json:"city"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	TZOffsetMinutes int     `json:"tz_offset_minutes"`
	Ayanamsa        string  `json:"ayanamsa"`
	Format          string  `json:"format"`
}

// exportFormat проверяет формат выгрузки, пустой означает xlsx.
func exportFormat(c *gin.Context, format string) (string, bool) {
	if format == "" {
		return "xlsx", true
	}
	switch format {
	case "csv", "excel", "xlsx":
		return format, true
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "unsupported format, use csv or xlsx",
	})
	return "", false
}

// sendFile отдаёт готовый файл вложением под читаемым именем.
func sendFile(c *gin.Context, path, format, name string) {
	var contentType string
	var filename string

	switch format {
	case "csv":
		contentType = "text/csv"
		filename = name + ".csv"
	default:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = name + ".xlsx"
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.File(path)
}

// ExportMuhurat ищет окна и выгружает их файлом.
func (h *ExportHandler) ExportMuhurat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ExportMuhuratRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	format, ok := exportFormat(c, req.Format)
	if !ok {
		return
	}
	q, ok := muhuratQuery(c, h.geocode, req.MuhuratSearchRequest)
	if !ok {
		return
	}

	result, err := h.muhurat.Search(ctx, q)
	if err != nil {
		respondServiceError(c, "failed to search muhurat windows", err)
		return
	}

	path, err := h.export.ExportMuhurat(ctx, result, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to export muhurat windows",
			"message": err.Error(),
		})
		return
	}

	sendFile(c, path, format, "muhurat_windows")
}

// ExportMonthlyPanchang считает месяц и выгружает его файлом.
func (h *ExportHandler) ExportMonthlyPanchang(c *gin.Context) {
	ctx := c.Request.Context()

	var req ExportPanchangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	format, ok := exportFormat(c, req.Format)
	if !ok {
		return
	}

	now := time.Now()
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	if req.Month < 1 || req.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "month must be within 1..12",
		})
		return
	}

	lat, lon, tz := req.Latitude, req.Longitude, req.TZOffsetMinutes
	if req.City != "" && h.geocode != nil {
		res, gerr := h.geocode.Resolve(ctx, req.City)
		if gerr != nil {
			respondServiceError(c, "failed to resolve city", gerr)
			return
		}
		lat, lon = res.Latitude, res.Longitude
		if req.TZOffsetMinutes == 0 {
			probe := time.Date(req.Year, time.Month(req.Month), 15, 12, 0, 0, 0, time.UTC)
			tz = tzOffsetFor(res.Timezone, probe)
		}
	}

	scheme := ayanamsaOrDefault(req.Ayanamsa)

	days, err := h.panchang.GetMonthly(ctx, req.Year, time.Month(req.Month), lat, lon, tz, scheme)
	if err != nil {
		respondServiceError(c, "failed to calculate monthly panchang", err)
		return
	}

	title := fmt.Sprintf("%s %d", time.Month(req.Month), req.Year)
	path, err := h.export.ExportMonthlyPanchang(ctx, title, days, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to export panchang",
			"message": err.Error(),
		})
		return
	}

	sendFile(c, path, format, "panchang_monthly")
}
