package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"geolumiere/config"
	agencyRepo "geolumiere/database/repository/agency"
	contactRepo "geolumiere/database/repository/contactinfo"
	userRepo "geolumiere/database/repository/user"
	"geolumiere/models"
	"geolumiere/utils"
)

// SeedHandler bootstraps an empty database: the admin account, the
// contact-info singleton and the main office with a default weekly
// template. Safe to call repeatedly; it only fills what is missing.
type SeedHandler struct {
	Users    userRepo.UserRepository
	Agencies agencyRepo.AgencyRepository
	Contact  contactRepo.ContactInfoRepository
}

func NewSeedHandler(users userRepo.UserRepository, agencies agencyRepo.AgencyRepository, contact contactRepo.ContactInfoRepository) *SeedHandler {
	return &SeedHandler{Users: users, Agencies: agencies, Contact: contact}
}

// Seed handles POST /api/seed (admin).
func (h *SeedHandler) Seed(c *gin.Context) {
	ctx := c.Request.Context()
	logger := getLogger(c)
	created := []string{}

	if n, err := h.Users.Count(ctx); err == nil && n == 0 {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "SEED_ADMIN_PASSWORD requis pour créer le compte admin"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash seed password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
			return
		}
		admin := &models.User{
			Email:        "admin@geolumiere.bj",
			Name:         "Administrateur",
			PasswordHash: string(hash),
			Role:         "admin",
		}
		if err := h.Users.Create(ctx, admin); err != nil {
			logger.Error("failed to seed admin user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
			return
		}
		created = append(created, "admin")
	}

	if _, err := h.Contact.Get(ctx); err != nil {
		info := &models.ContactInfo{GlobalEmails: []string{config.AppConfig.ContactFallbackEmail}}
		if err := h.Contact.Upsert(ctx, info); err != nil {
			logger.Error("failed to seed contact info", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
			return
		}
		created = append(created, "contactInfo")
	}

	if agencies, err := h.Agencies.GetAll(ctx, false); err == nil && len(agencies) == 0 {
		main := &models.Agency{
			Name:         "Siège Social - Godomey",
			District:     "Godomey",
			City:         "Abomey-Calavi",
			Country:      "Bénin",
			Schedule:     defaultSchedule(),
			DisplayHours: "Lun-Ven : 8h-18h",
			IsMainOffice: true,
			IsActive:     true,
		}
		if err := h.Agencies.Create(ctx, main); err != nil {
			logger.Error("failed to seed main agency", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
			return
		}
		created = append(created, "agency")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seed terminé", "created": created})
}

func defaultSchedule() []models.ScheduleDay {
	weekdaySlots := []string{"08:00", "09:00", "10:00", "11:00", "15:00", "16:00", "17:00"}
	var schedule []models.ScheduleDay
	for _, day := range utils.FrenchWeekdays() {
		open := day != "samedi" && day != "dimanche"
		entry := models.ScheduleDay{Day: day, IsOpen: open}
		if open {
			entry.Slots = append([]string(nil), weekdaySlots...)
		}
		schedule = append(schedule, entry)
	}
	return schedule
}
