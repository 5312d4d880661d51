package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jyotish/internal/astro"
	"jyotish/internal/models"
)

// ReferenceHandler отдаёт статические справочники: накшатры, раши,
// титхи, йоги и караны. Данные зашиты в модели, сервисы не нужны.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

func (h *ReferenceHandler) GetNakshatras(c *gin.Context) {
	items := make([]gin.H, 0, 27)
	for n := models.Nakshatra(1); n <= 27; n++ {
		meta, _ := astro.NakshatraMatchMeta(n)
		items = append(items, gin.H{
			"number": int(n),
			"name":   n.Name(),
			"deity":  n.Deity(),
			"ruler":  n.Ruler().String(),
			"symbol": n.Symbol(),
			"gana":   meta.Gana,
			"yoni":   meta.Yoni,
			"nadi":   meta.Nadi,
			"rajju":  meta.Rajju,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func (h *ReferenceHandler) GetRashis(c *gin.Context) {
	items := make([]gin.H, 0, 12)
	for r := models.Rashi(1); r <= 12; r++ {
		items = append(items, gin.H{
			"number":  int(r),
			"name":    r.Name(),
			"english": r.English(),
			"element": r.Element(),
			"lord":    r.Lord().String(),
			"symbol":  r.Symbol(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func (h *ReferenceHandler) GetTithis(c *gin.Context) {
	items := make([]gin.H, 0, 30)
	for t := models.Tithi(1); t <= 30; t++ {
		items = append(items, gin.H{
			"number": int(t),
			"name":   t.Name(),
			"paksha": t.Paksha(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func (h *ReferenceHandler) GetYogas(c *gin.Context) {
	items := make([]gin.H, 0, 27)
	for y := models.Yoga(1); y <= 27; y++ {
		items = append(items, gin.H{
			"number": int(y),
			"name":   y.Name(),
			"nature": y.Nature(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func (h *ReferenceHandler) GetKaranas(c *gin.Context) {
	items := make([]gin.H, 0, 11)
	for k := models.KaranaType(1); k <= 11; k++ {
		items = append(items, gin.H{
			"number": int(k),
			"name":   k.Name(),
			"nature": k.Nature(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func (h *ReferenceHandler) GetAyanamsas(c *gin.Context) {
	schemes := models.AyanamsaSchemes()
	items := make([]gin.H, 0, len(schemes))
	for _, s := range schemes {
		items = append(items, gin.H{
			"scheme": s,
			"title":  s.Title(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}
