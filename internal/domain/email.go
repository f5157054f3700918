package domain

import "context"

// Mailer sends an email. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData is the payload for the registration confirmation email.
type RegistrationEmailData struct {
	Name       string
	EventTitle string
	StartTime  string
	Location   string
}

// EmailService sends application emails.
type EmailService interface {
	// SendRegistrationConfirmation emails the user that their registration
	// for the event was recorded.
	SendRegistrationConfirmation(ctx context.Context, to string, data *RegistrationEmailData) error
}
