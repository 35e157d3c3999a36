package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geolumiere/services/scheduling"
	"geolumiere/utils"
)

// AppointmentHandler exposes the scheduling core over HTTP.
type AppointmentHandler struct {
	Svc scheduling.SchedulingService
}

func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// GetAvailableSlots handles GET /api/appointments/available-slots.
func (h *AppointmentHandler) GetAvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	agencyID := c.Query("agencyId")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre date requis"})
		return
	}
	if agencyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre agencyId requis"})
		return
	}

	date, err := parseDateParam(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date invalide"})
		return
	}

	slots, err := h.Svc.AvailableSlots(c.Request.Context(), agencyID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

// CreateAppointment handles POST /api/appointments (public booking form).
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var body struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Service    string `json:"service"`
		Date       string `json:"date"`
		TimeSlot   string `json:"timeSlot"`
		Message    string `json:"message"`
		AgencyID   string `json:"agencyId"`
		AgencyName string `json:"agencyName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	var date time.Time
	if body.Date != "" {
		var err error
		if date, err = parseDateParam(body.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date invalide"})
			return
		}
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), scheduling.CreateAppointmentRequest{
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		Service:    body.Service,
		Date:       date,
		TimeSlot:   body.TimeSlot,
		Message:    body.Message,
		AgencyID:   body.AgencyID,
		AgencyName: body.AgencyName,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	getLogger(c).Info("appointment created",
		zap.String("id", appt.ID),
		zap.String("agencyId", appt.AgencyID),
		zap.String("day", appt.Day),
		zap.String("timeSlot", appt.TimeSlot))
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// ListAppointments handles GET /api/appointments (admin listing).
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Svc.ListAppointments(c.Request.Context(), c.Query("status"), c.Query("month"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointment handles PUT /api/appointments/:id (admin transition).
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var body struct {
		Status     string `json:"status"`
		AdminNotes string `json:"adminNotes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	appt, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status, body.AdminNotes)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// DeleteAppointment handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Svc.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rendez-vous supprimé"})
}

// parseDateParam accepts both the canonical day form and full RFC 3339.
func parseDateParam(s string) (time.Time, error) {
	if t, err := utils.ParseDay(s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
