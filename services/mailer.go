package services

import (
	"fmt"
	"log"
	"strings"

	"assetdesk/config"
)

// Notification email types accepted by SendNotificationEmail.
var EmailTypes = []string{
	"COMPLAINT_ALERT", "MAINTENANCE_REMINDER", "ASSET_ASSIGNED", "GENERAL",
}

// Mailer is the outbound mail collaborator. Transport lives outside this
// core.
type Mailer interface {
	Send(from string, to []string, subject, body string) error
}

// logMailer is the default collaborator; it records the dispatch instead of
// delivering it.
type logMailer struct{}

func (logMailer) Send(from string, to []string, subject, body string) error {
	log.Printf("mail dispatch: from=%s to=%s subject=%q (%d bytes)",
		from, strings.Join(to, ","), subject, len(body))
	return nil
}

// ActiveMailer is the configured mail collaborator.
var ActiveMailer Mailer = logMailer{}

// SendNotificationEmail validates the request and delegates delivery to the
// mail collaborator.
func SendNotificationEmail(to []string, subject, body, emailType string) error {
	if len(to) == 0 {
		return fmt.Errorf("at least one recipient is required: %w", ErrValidation)
	}
	for _, addr := range to {
		if addr == "" {
			return fmt.Errorf("empty recipient address: %w", ErrValidation)
		}
	}
	if subject == "" || body == "" {
		return fmt.Errorf("subject and body are required: %w", ErrValidation)
	}

	valid := false
	for _, t := range EmailTypes {
		if t == emailType {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown email type %q: %w", emailType, ErrValidation)
	}

	if err := ActiveMailer.Send(config.AppConfig.MailFrom, to, subject, body); err != nil {
		return fmt.Errorf("mail dispatch: %v: %w", err, ErrCollaborator)
	}
	return nil
}
