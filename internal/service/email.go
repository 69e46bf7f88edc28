package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/innovelous/agency/internal/model"
	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client       *resend.Client
	fromEmail    string
	supportEmail string
	isDev        bool
	appURL       string
	appName      string
}

func NewEmailService(apiKey, fromEmail, supportEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:       client,
		fromEmail:    fromEmail,
		supportEmail: supportEmail,
		isDev:        isDev,
		appURL:       appURL,
		appName:      appName,
	}
}

// SendOrderConfirmation mails the client who submitted the intake form.
// Failures are not fatal to the order; the caller logs and moves on.
func (s *EmailService) SendOrderConfirmation(order *model.Order) error {
	subject, body := orderConfirmationTemplate(order, s.appName)
	return s.send("order_confirmation", order.Email, subject, body)
}

// SendOrderNotification mails the agency inbox about a new order.
func (s *EmailService) SendOrderNotification(order *model.Order) error {
	subject, body := orderNotificationTemplate(order, s.appName, s.appURL)
	return s.send("order_notification", s.supportEmail, subject, body)
}

func (s *EmailService) send(emailType, to, subject, body string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", emailType, "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", emailType, "to", to)
	}
	return err
}
