package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	agencyRepo "geolumiere/database/repository/agency"
	"geolumiere/models"
	"geolumiere/services/scheduling"
)

// AgencyHandler manages the agency CRUD. The public listing only returns
// active agencies; the admin variant returns everything.
type AgencyHandler struct {
	Repo agencyRepo.AgencyRepository
}

func NewAgencyHandler(repo agencyRepo.AgencyRepository) *AgencyHandler {
	return &AgencyHandler{Repo: repo}
}

// ListAgencies handles GET /api/agencies (public).
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.Repo.GetAll(c.Request.Context(), true)
	if err != nil {
		getLogger(c).Error("failed to list agencies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agencies": agencies})
}

// ListAllAgencies handles GET /api/agencies/all (admin).
func (h *AgencyHandler) ListAllAgencies(c *gin.Context) {
	agencies, err := h.Repo.GetAll(c.Request.Context(), false)
	if err != nil {
		getLogger(c).Error("failed to list agencies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agencies": agencies})
}

// CreateAgency handles POST /api/agencies (admin).
func (h *AgencyHandler) CreateAgency(c *gin.Context) {
	var agency models.Agency
	if err := c.ShouldBindJSON(&agency); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if agency.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom est requis"})
		return
	}
	if err := scheduling.ValidateScheduleTemplate(agency.Schedule); err != nil {
		respondSchedulingError(c, err)
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &agency); err != nil {
		getLogger(c).Error("failed to create agency", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"agency": agency})
}

// UpdateAgency handles PUT /api/agencies/:id (admin).
func (h *AgencyHandler) UpdateAgency(c *gin.Context) {
	var agency models.Agency
	if err := c.ShouldBindJSON(&agency); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	agency.ID = c.Param("id")
	if err := scheduling.ValidateScheduleTemplate(agency.Schedule); err != nil {
		respondSchedulingError(c, err)
		return
	}

	if err := h.Repo.Update(c.Request.Context(), &agency); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agence introuvable"})
			return
		}
		getLogger(c).Error("failed to update agency", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agency": agency})
}

// DeleteAgency handles DELETE /api/agencies/:id (admin). Past appointments
// keep their agencyName snapshot, so deleting an agency never breaks the
// appointment history.
func (h *AgencyHandler) DeleteAgency(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agence introuvable"})
			return
		}
		getLogger(c).Error("failed to delete agency", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agence supprimée"})
}
