package service

import (
	"context"
	"fmt"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendInvitation(ctx context.Context, email, orgName string, role domain.Role, token, invitedBy string) error {
	subject := fmt.Sprintf("Invitation to join %s", orgName)
	plainText := fmt.Sprintf(
		"Hello,\n\n%s has invited you to join %s as %s.\n\nUse the following token to complete your registration:\n\n%s\n\nThis invitation expires; if it does, ask for a new one.",
		invitedBy, orgName, role, token,
	)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>You're invited to %s</h2>
				<p><strong>%s</strong> has invited you to join as <strong>%s</strong>.</p>
				<p>Your invitation token:</p>
				<pre>%s</pre>
			</body>
		</html>
	`, orgName, invitedBy, role, token)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "SendInvitation", "to", email)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "SendInvitation", err)
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "SendInvitation", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "SendInvitation", nil, "to", email)
	return nil
}

// noopEmailService is used when no SendGrid key is configured, so local
// development does not require an email account. The token still comes
// back in the invitation response.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendInvitation(ctx context.Context, email, orgName string, role domain.Role, token, invitedBy string) error {
	logger.Info("Email delivery disabled, skipping invitation email", "to", email, "org", orgName)
	return nil
}
