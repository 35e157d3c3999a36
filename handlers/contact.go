package handlers

import (
	"fmt"
	"html"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geolumiere/config"
	contactRepo "geolumiere/database/repository/contactinfo"
	"geolumiere/models"
	"geolumiere/services/notification"
	"geolumiere/utils"
)

// ContactHandler serves the contact-info singleton and the public contact
// form, which emails the site-wide recipients.
type ContactHandler struct {
	Repo   contactRepo.ContactInfoRepository
	Mailer notification.Mailer
}

func NewContactHandler(repo contactRepo.ContactInfoRepository, mailer notification.Mailer) *ContactHandler {
	return &ContactHandler{Repo: repo, Mailer: mailer}
}

// GetContactInfo handles GET /api/contact-info (public).
func (h *ContactHandler) GetContactInfo(c *gin.Context) {
	info, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		// No document yet: return defaults rather than an error.
		info = &models.ContactInfo{GlobalEmails: []string{config.AppConfig.ContactFallbackEmail}}
	}
	c.JSON(http.StatusOK, gin.H{"contactInfo": info})
}

// UpdateContactInfo handles PUT /api/contact-info (admin).
func (h *ContactHandler) UpdateContactInfo(c *gin.Context) {
	var info models.ContactInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), &info); err != nil {
		getLogger(c).Error("failed to update contact info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contactInfo": info})
}

// SubmitContactForm handles POST /api/contact (public).
func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if len(strings.TrimSpace(body.Name)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom est requis"})
		return
	}
	if _, err := mail.ParseAddress(body.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email invalide"})
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le message est requis"})
		return
	}

	recipients := []string{config.AppConfig.ContactFallbackEmail}
	if info, err := h.Repo.Get(c.Request.Context()); err == nil && len(info.GlobalEmails) > 0 {
		recipients = info.GlobalEmails
	}

	subject := strings.TrimSpace(body.Subject)
	if subject == "" {
		subject = "Nouveau message de contact"
	}

	var b strings.Builder
	b.WriteString("<h2>Nouveau message de contact</h2>")
	fmt.Fprintf(&b, "<p><strong>Nom :</strong> %s</p>", html.EscapeString(body.Name))
	fmt.Fprintf(&b, "<p><strong>Email :</strong> %s</p>", html.EscapeString(body.Email))
	if body.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Téléphone :</strong> %s</p>", html.EscapeString(body.Phone))
	}
	escaped := strings.ReplaceAll(html.EscapeString(body.Message), "\n", "<br>")
	fmt.Fprintf(&b, "<p><strong>Message :</strong><br>%s</p>", escaped)

	msg := notification.Message{To: recipients, Subject: subject + " — SCP GEOLUMIERE", HTML: b.String()}
	go func() {
		if err := h.Mailer.Send(msg); err != nil {
			utils.GetLogger().Error("failed to send contact form email", zap.Error(err))
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "Message envoyé"})
}
