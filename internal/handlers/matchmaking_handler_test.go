package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/service"
)

// Эфемериды не нужны: режим готовых пар считается без карт.
func setupMatchmakingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewMatchmakingHandler(service.NewMatchmakingService(nil))
	router.POST("/matchmaking", h.GetCompatibility)
	router.POST("/matchmaking/porutham", h.GetPorutham)
	router.POST("/matchmaking/ashtakoota", h.GetAshtakoota)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetCompatibilityPairs(t *testing.T) {
	router := setupMatchmakingRouter()

	w := postJSON(t, router, "/matchmaking", `{
		"bride": {"nakshatra": 4, "rashi": 2},
		"groom": {"nakshatra": 4, "rashi": 2}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Porutham struct {
				TotalMatched int `json:"total_matched"`
				TotalChecked int `json:"total_checked"`
			} `json:"porutham"`
			Ashtakoota struct {
				TotalPoints float64 `json:"total_points"`
				MaxPoints   int     `json:"max_points"`
			} `json:"ashtakoota"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 7, resp.Data.Porutham.TotalMatched)
	assert.Equal(t, 10, resp.Data.Porutham.TotalChecked)
	assert.Equal(t, 31.0, resp.Data.Ashtakoota.TotalPoints)
	assert.Equal(t, 36, resp.Data.Ashtakoota.MaxPoints)
}

func TestGetCompatibilityRejectsBadNakshatra(t *testing.T) {
	router := setupMatchmakingRouter()

	w := postJSON(t, router, "/matchmaking", `{
		"bride": {"nakshatra": 0, "rashi": 2},
		"groom": {"nakshatra": 4, "rashi": 2}
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bride nakshatra must be within 1..27")
}

func TestGetCompatibilityRejectsBadRashi(t *testing.T) {
	router := setupMatchmakingRouter()

	w := postJSON(t, router, "/matchmaking", `{
		"bride": {"nakshatra": 4, "rashi": 2},
		"groom": {"nakshatra": 4, "rashi": 13}
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "groom rashi must be within 1..12")
}

func TestGetCompatibilityRejectsMixedMode(t *testing.T) {
	router := setupMatchmakingRouter()

	// Дата рождения указана только у одного партнёра.
	w := postJSON(t, router, "/matchmaking", `{
		"bride": {"datetime": "1990-05-15T10:30:00", "latitude": 28.6, "longitude": 77.2},
		"groom": {"nakshatra": 4, "rashi": 2}
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "both parties need a datetime")
}

func TestGetPorutham(t *testing.T) {
	router := setupMatchmakingRouter()

	w := postJSON(t, router, "/matchmaking/porutham", `{
		"bride": {"nakshatra": 4, "rashi": 2},
		"groom": {"nakshatra": 4, "rashi": 2}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Checks         []map[string]any `json:"poruthams"`
			Recommendation string           `json:"recommendation"`
			HasBlockers    bool             `json:"has_hard_blockers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.Checks, 10)
	// Раджу-блокер одинаковой накшатры перевешивает набранные баллы.
	assert.True(t, resp.Data.HasBlockers)
	assert.Equal(t, "Not Recommended - Essential poruthams failed", resp.Data.Recommendation)
}

func TestGetAshtakoota(t *testing.T) {
	router := setupMatchmakingRouter()

	w := postJSON(t, router, "/matchmaking/ashtakoota", `{
		"bride": {"nakshatra": 4, "rashi": 2},
		"groom": {"nakshatra": 4, "rashi": 2}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Kootas      []map[string]any `json:"kootas"`
			TotalPoints float64          `json:"total_points"`
			MaxPoints   int              `json:"max_points"`
			NadiDosha   bool             `json:"nadi_dosha"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.Kootas, 8)
	assert.Equal(t, 31.0, resp.Data.TotalPoints)
	assert.Equal(t, 36, resp.Data.MaxPoints)
	assert.False(t, resp.Data.NadiDosha)
}

func TestGetPoruthamRejectsInvalidBody(t *testing.T) {
	router := setupMatchmakingRouter()

	w := postJSON(t, router, "/matchmaking/porutham", `{"bride": `)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
