package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/astro"
	"jyotish/internal/models"
	"jyotish/internal/service"
)

type stubChartService struct {
	lastInput     astro.ChartInput
	lastDivisions []int
	err           error
}

var _ service.ChartService = (*stubChartService)(nil)

func (s *stubChartService) GetChart(_ context.Context, in astro.ChartInput, divisions []int) (*service.ChartBundle, error) {
	s.lastInput = in
	s.lastDivisions = divisions
	if s.err != nil {
		return nil, s.err
	}
	return &service.ChartBundle{Chart: &models.NatalChart{Ayanamsa: in.Ayanamsa}}, nil
}

func (s *stubChartService) GetDivisional(_ context.Context, in astro.ChartInput, division int) (*models.DivisionalChart, error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return &models.DivisionalChart{Division: division}, nil
}

func (s *stubChartService) GetDasha(_ context.Context, in astro.ChartInput, levels int, horizonYears float64) ([]models.DashaPeriod, error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return []models.DashaPeriod{{Ruler: models.Venus}, {Ruler: models.Sun}}, nil
}

func setupChartRouter(stub *stubChartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewChartHandler(stub)
	router.POST("/chart", h.CreateChart)
	router.POST("/chart/divisional", h.CreateDivisionalChart)
	router.POST("/chart/dasha", h.GetDasha)
	return router
}

func TestCreateChartParsesLocalDatetime(t *testing.T) {
	stub := &stubChartService{}
	router := setupChartRouter(stub)

	w := postJSON(t, router, "/chart", `{
		"datetime": "1990-05-15T10:30:00",
		"latitude": 28.6139,
		"longitude": 77.2090,
		"tz_offset_minutes": 330
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Chart map[string]any `json:"chart"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data.Chart)

	// Локальное время трактуется в поясе из запроса.
	want := time.Date(1990, 5, 15, 10, 30, 0, 0, time.FixedZone("local", 330*60))
	assert.True(t, stub.lastInput.Moment.Equal(want))
	assert.Equal(t, models.AyanamsaLahiri, stub.lastInput.Ayanamsa)
	assert.Nil(t, stub.lastDivisions)
}

func TestCreateChartParsesRFC3339(t *testing.T) {
	stub := &stubChartService{}
	router := setupChartRouter(stub)

	w := postJSON(t, router, "/chart", `{
		"datetime": "1990-05-15T10:30:00+05:30",
		"latitude": 28.6139,
		"longitude": 77.2090,
		"divisions": [1, 9, 10]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	want := time.Date(1990, 5, 15, 5, 0, 0, 0, time.UTC)
	assert.True(t, stub.lastInput.Moment.Equal(want))
	assert.Equal(t, []int{1, 9, 10}, stub.lastDivisions)
}

func TestCreateChartRejectsMissingDatetime(t *testing.T) {
	router := setupChartRouter(&stubChartService{})

	w := postJSON(t, router, "/chart", `{"latitude": 28.6, "longitude": 77.2}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "datetime is required")
}

func TestCreateChartRejectsBadCoordinates(t *testing.T) {
	router := setupChartRouter(&stubChartService{})

	w := postJSON(t, router, "/chart", `{
		"datetime": "1990-05-15T10:30:00",
		"latitude": 91.0,
		"longitude": 77.2
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude must be within -90..90")
}

func TestCreateChartRejectsBadDivision(t *testing.T) {
	router := setupChartRouter(&stubChartService{})

	w := postJSON(t, router, "/chart", `{
		"datetime": "1990-05-15T10:30:00",
		"latitude": 28.6,
		"longitude": 77.2,
		"divisions": [1, 61]
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "division must be within 1..60")
}

func TestCreateChartMapsComputationError(t *testing.T) {
	stub := &stubChartService{err: fmt.Errorf("failed to calculate chart: %w",
		&astro.ComputationError{Op: "houses", Reason: "ascendant undefined at polar latitude"})}
	router := setupChartRouter(stub)

	w := postJSON(t, router, "/chart", `{
		"datetime": "1990-05-15T10:30:00",
		"latitude": 89.0,
		"longitude": 0.0
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "computation failed")
	assert.Contains(t, w.Body.String(), "ascendant undefined")
}

func TestCreateDivisionalChart(t *testing.T) {
	stub := &stubChartService{}
	router := setupChartRouter(stub)

	w := postJSON(t, router, "/chart/divisional", `{
		"datetime": "1990-05-15T10:30:00",
		"latitude": 28.6,
		"longitude": 77.2,
		"division": 9
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Division int `json:"division"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.Data.Division)
}

func TestCreateDivisionalChartRejectsZeroDivision(t *testing.T) {
	router := setupChartRouter(&stubChartService{})

	w := postJSON(t, router, "/chart/divisional", `{
		"datetime": "1990-05-15T10:30:00",
		"latitude": 28.6,
		"longitude": 77.2
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "division must be within 1..60")
}

func TestGetDashaEnvelope(t *testing.T) {
	stub := &stubChartService{}
	router := setupChartRouter(stub)

	w := postJSON(t, router, "/chart/dasha", `{
		"datetime": "1990-05-15T10:30:00",
		"latitude": 28.6,
		"longitude": 77.2,
		"levels": 2
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Data.Count)
}
