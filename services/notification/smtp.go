package notification

import (
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"
)

// SMTPMailer sends email via unauthenticated SMTP (Mailpit-compatible in
// development, a local relay in production). The whole exchange runs under
// one deadline so a hung relay cannot pin a sender goroutine.
type SMTPMailer struct {
	addr    string
	from    string
	timeout time.Duration
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "noreply@geolumiere.bj"
	}
	return &SMTPMailer{
		addr:    fmt.Sprintf("%s:%s", host, port),
		from:    from,
		timeout: 10 * time.Second,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	conn, err := net.DialTimeout("tcp", m.addr, m.timeout)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", m.addr, err)
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(m.timeout)); err != nil {
		return err
	}

	host, _, err := net.SplitHostPort(m.addr)
	if err != nil {
		return err
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(envelopeAddress(m.from)); err != nil {
		return err
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	raw := buildMessage(m.from, msg.To, msg.Subject, msg.HTML)
	if _, err := w.Write([]byte(raw)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// envelopeAddress strips an RFC 5322 display name down to the bare address
// required in MAIL FROM ("SCP GEOLUMIERE <x@y>" → "x@y").
func envelopeAddress(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		return addr.Address
	}
	return from
}

func buildMessage(from string, to []string, subject, html string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from,
		strings.Join(to, ", "),
		subject,
		html,
	)
}
