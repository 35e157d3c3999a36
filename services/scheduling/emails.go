package scheduling

import (
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"geolumiere/models"
	"geolumiere/services/notification"
	"geolumiere/utils"
)

// notifyAsync delivers a message on a detached goroutine. Delivery is
// best-effort: failures are logged and never affect the operation that
// triggered the email.
func (s *DefaultSchedulingService) notifyAsync(msg notification.Message) {
	if s.Mailer == nil {
		return
	}
	go func() {
		if err := s.Mailer.Send(msg); err != nil {
			utils.GetLogger().Error("failed to send notification email",
				zap.String("subject", msg.Subject),
				zap.Strings("to", msg.To),
				zap.Error(err))
		}
	}()
}

func newRequestEmail(appt *models.Appointment, recipients []string, adminBaseURL string) notification.Message {
	formattedDate := utils.FormatDateFR(appt.Date)
	var b strings.Builder
	b.WriteString("<h2>Nouveau rendez-vous reçu</h2>")
	fmt.Fprintf(&b, "<p><strong>Agence :</strong> %s</p>", html.EscapeString(appt.AgencyName))
	fmt.Fprintf(&b, "<p><strong>Client :</strong> %s</p>", html.EscapeString(appt.Name))
	fmt.Fprintf(&b, "<p><strong>Email :</strong> %s</p>", html.EscapeString(appt.Email))
	phone := appt.Phone
	if phone == "" {
		phone = "Non renseigné"
	}
	fmt.Fprintf(&b, "<p><strong>Téléphone :</strong> %s</p>", html.EscapeString(phone))
	fmt.Fprintf(&b, "<p><strong>Service :</strong> %s</p>", html.EscapeString(appt.Service))
	fmt.Fprintf(&b, "<p><strong>Date :</strong> %s à %s</p>", formattedDate, appt.TimeSlot)
	if appt.Message != "" {
		escaped := strings.ReplaceAll(html.EscapeString(appt.Message), "\n", "<br>")
		fmt.Fprintf(&b, "<p><strong>Message :</strong><br>%s</p>", escaped)
	}
	fmt.Fprintf(&b, `<p><a href="%s/admin/rendez-vous">Gérer les rendez-vous →</a></p>`, adminBaseURL)

	return notification.Message{
		To:      recipients,
		Subject: fmt.Sprintf("Nouveau RDV — %s — %s — %s %s", appt.AgencyName, appt.Service, formattedDate, appt.TimeSlot),
		HTML:    b.String(),
	}
}

func requestReceivedEmail(appt *models.Appointment) notification.Message {
	formattedDate := utils.FormatDateFR(appt.Date)
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Bonjour %s,</h2>", html.EscapeString(appt.Name))
	b.WriteString("<p>Nous avons bien reçu votre demande de rendez-vous.</p>")
	b.WriteString("<table>")
	fmt.Fprintf(&b, "<tr><td><strong>Agence</strong></td><td>%s</td></tr>", html.EscapeString(appt.AgencyName))
	fmt.Fprintf(&b, "<tr><td><strong>Service</strong></td><td>%s</td></tr>", html.EscapeString(appt.Service))
	fmt.Fprintf(&b, "<tr><td><strong>Date</strong></td><td>%s</td></tr>", formattedDate)
	fmt.Fprintf(&b, "<tr><td><strong>Heure</strong></td><td>%s</td></tr>", appt.TimeSlot)
	b.WriteString("</table>")
	// Receipt only: the appointment is still pending at this point.
	b.WriteString("<p>Notre équipe va examiner votre demande et vous enverra une confirmation prochainement.</p>")
	b.WriteString("<p>Cordialement,</p><p><strong>SCP GEOLUMIERE</strong><br>Géomètres-Experts Associés</p>")

	return notification.Message{
		To:      []string{appt.Email},
		Subject: "Demande de rendez-vous reçue — SCP GEOLUMIERE",
		HTML:    b.String(),
	}
}

func confirmedEmail(appt *models.Appointment, adminNotes string) notification.Message {
	formattedDate := utils.FormatDateFR(appt.Date)
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Bonjour %s,</h2>", html.EscapeString(appt.Name))
	b.WriteString("<p>Votre rendez-vous est <strong>confirmé</strong>.</p>")
	b.WriteString("<table>")
	fmt.Fprintf(&b, "<tr><td><strong>Service</strong></td><td>%s</td></tr>", html.EscapeString(appt.Service))
	fmt.Fprintf(&b, "<tr><td><strong>Date</strong></td><td>%s</td></tr>", formattedDate)
	fmt.Fprintf(&b, "<tr><td><strong>Heure</strong></td><td>%s</td></tr>", appt.TimeSlot)
	b.WriteString("</table>")
	if adminNotes != "" {
		fmt.Fprintf(&b, "<p><strong>Note :</strong> %s</p>", html.EscapeString(adminNotes))
	}
	b.WriteString("<p>Cordialement,</p><p><strong>SCP GEOLUMIERE</strong><br>Géomètres-Experts Associés</p>")

	return notification.Message{
		To:      []string{appt.Email},
		Subject: fmt.Sprintf("Votre rendez-vous est confirmé — %s %s", formattedDate, appt.TimeSlot),
		HTML:    b.String(),
	}
}

func cancelledEmail(appt *models.Appointment, adminNotes string) notification.Message {
	formattedDate := utils.FormatDateFR(appt.Date)
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Bonjour %s,</h2>", html.EscapeString(appt.Name))
	fmt.Fprintf(&b, "<p>Nous sommes au regret de vous informer que votre rendez-vous du <strong>%s à %s</strong> a été annulé.</p>", formattedDate, appt.TimeSlot)
	if adminNotes != "" {
		fmt.Fprintf(&b, "<p><strong>Motif :</strong> %s</p>", html.EscapeString(adminNotes))
	}
	b.WriteString("<p>Vous pouvez prendre un nouveau rendez-vous en ligne ou nous contacter directement.</p>")
	b.WriteString("<p>Cordialement,</p><p><strong>SCP GEOLUMIERE</strong><br>Géomètres-Experts Associés</p>")

	return notification.Message{
		To:      []string{appt.Email},
		Subject: "Votre rendez-vous a été annulé — SCP GEOLUMIERE",
		HTML:    b.String(),
	}
}
