package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geolumiere/services/scheduling"
)

// respondSchedulingError maps the scheduler's error taxonomy onto HTTP.
// Conflict (409) and validation (400) are deliberately distinct statuses:
// the client re-picks a slot on 409 and fixes the form on 400.
func respondSchedulingError(c *gin.Context, err error) {
	var (
		validationErr    *scheduling.ValidationError
		notFoundErr      *scheduling.NotFoundError
		conflictErr      *scheduling.ConflictError
		invalidStatusErr *scheduling.InvalidStatusError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Resource + " introuvable"})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	case errors.As(err, &invalidStatusErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Statut invalide", "details": invalidStatusErr.Error()})
	default:
		getLogger(c).Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
	}
}
