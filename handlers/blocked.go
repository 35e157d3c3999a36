package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"geolumiere/models"
	"geolumiere/services/scheduling"
	"geolumiere/utils"
)

const blockedDatesCacheKey = "blocked_dates:list"

// BlockedDateHandler exposes the blocked-date registry. The public listing
// backs the booking form's calendar and is cached briefly in Redis; the
// scheduler itself never reads this cache.
type BlockedDateHandler struct {
	Svc   scheduling.SchedulingService
	Cache *redis.Client
}

func NewBlockedDateHandler(svc scheduling.SchedulingService, cache *redis.Client) *BlockedDateHandler {
	return &BlockedDateHandler{Svc: svc, Cache: cache}
}

// ListBlockedDates handles GET /api/blocked-dates (public).
func (h *BlockedDateHandler) ListBlockedDates(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, blockedDatesCacheKey).Result(); err == nil {
			var dates []models.BlockedDate
			if json.Unmarshal([]byte(cached), &dates) == nil {
				c.JSON(http.StatusOK, gin.H{"blockedDates": dates})
				return
			}
		}
	}

	dates, err := h.Svc.ListBlockedDates(ctx)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(dates); err == nil {
			if err := h.Cache.Set(ctx, blockedDatesCacheKey, data, time.Minute).Err(); err != nil {
				getLogger(c).Warn("failed to cache blocked dates", zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"blockedDates": dates})
}

// CreateBlockedDate handles POST /api/blocked-dates (admin).
func (h *BlockedDateHandler) CreateBlockedDate(c *gin.Context) {
	var body struct {
		Date   string `json:"date"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La date est requise"})
		return
	}
	date, err := parseDateParam(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date invalide"})
		return
	}

	blocked, err := h.Svc.BlockDate(c.Request.Context(), date, body.Reason)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"blocked": blocked})
}

// DeleteBlockedDate handles DELETE /api/blocked-dates/:id (admin).
func (h *BlockedDateHandler) DeleteBlockedDate(c *gin.Context) {
	if err := h.Svc.UnblockDate(c.Request.Context(), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Date débloquée"})
}

func (h *BlockedDateHandler) invalidateCache(ctx context.Context) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Del(ctx, blockedDatesCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate blocked dates cache", zap.Error(err))
	}
}
