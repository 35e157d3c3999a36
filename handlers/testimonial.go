package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	testimonialRepo "geolumiere/database/repository/testimonial"
	"geolumiere/models"
)

// TestimonialHandler serves public testimonials and the admin CRUD.
type TestimonialHandler struct {
	Repo testimonialRepo.TestimonialRepository
}

func NewTestimonialHandler(repo testimonialRepo.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{Repo: repo}
}

// ListActive handles GET /api/testimonials (public).
func (h *TestimonialHandler) ListActive(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context(), true)
	if err != nil {
		getLogger(c).Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// ListAll handles GET /api/testimonials/all (admin).
func (h *TestimonialHandler) ListAll(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context(), false)
	if err != nil {
		getLogger(c).Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// Create handles POST /api/testimonials (admin).
func (h *TestimonialHandler) Create(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if msg := validateTestimonial(&t); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &t); err != nil {
		getLogger(c).Error("failed to create testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"testimonial": t})
}

// Update handles PUT /api/testimonials/:id (admin).
func (h *TestimonialHandler) Update(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	t.ID = c.Param("id")
	if msg := validateTestimonial(&t); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.Repo.Update(c.Request.Context(), &t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Témoignage introuvable"})
			return
		}
		getLogger(c).Error("failed to update testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": t})
}

// Delete handles DELETE /api/testimonials/:id (admin).
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Témoignage introuvable"})
			return
		}
		getLogger(c).Error("failed to delete testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Témoignage supprimé"})
}

func validateTestimonial(t *models.Testimonial) string {
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Role) == "" || strings.TrimSpace(t.Content) == "" {
		return "Nom, rôle et contenu requis"
	}
	if t.Rating < 1 || t.Rating > 5 {
		return "La note doit être comprise entre 1 et 5"
	}
	return ""
}
