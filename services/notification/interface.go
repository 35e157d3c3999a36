package notification

// Message is one outbound email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Mailer delivers email. The scheduler treats delivery as fire-and-forget:
// it decides what to send and to whom, never whether the operation that
// triggered it succeeds.
type Mailer interface {
	Send(msg Message) error
}
