package service

import (
	"testing"
	"time"

	"github.com/innovelous/agency/internal/model"
	"github.com/stretchr/testify/assert"
)

func testOrder() *model.Order {
	return &model.Order{
		ID:           "o1",
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "+1 555 0100",
		ProjectTitle: "Company website",
		Description:  "A marketing site with a blog.",
		Budget:       "$5k",
		Timeline:     "6 weeks",
		Status:       model.OrderStatusPending,
		SubmittedAt:  time.Now().UTC(),
	}
}

func TestOrderEmailTemplates(t *testing.T) {
	order := testOrder()

	subject, body := orderConfirmationTemplate(order, "Innovelous")
	assert.Equal(t, "We received your project request - Innovelous", subject)
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, `"Company website"`)
	assert.Contains(t, body, "The Innovelous Team")

	subject, body = orderNotificationTemplate(order, "Innovelous", "https://innovelous.example")
	assert.Equal(t, "New project order: Company website", subject)
	assert.Contains(t, body, "Jane Doe <jane@example.com>")
	assert.Contains(t, body, "$5k")
	assert.Contains(t, body, "6 weeks")
	assert.Contains(t, body, "https://innovelous.example/dashboard")

	// Plain-text templates, ASCII punctuation only
	for _, s := range []string{subject, body} {
		for _, r := range s {
			assert.Less(t, r, rune(128), "unexpected non-ASCII character %q", r)
		}
	}
}

func TestEmailServiceDevMode(t *testing.T) {
	svc := NewEmailService("", "noreply@example.com", "hello@example.com", "https://innovelous.example", "Innovelous", true)

	assert.NoError(t, svc.SendOrderConfirmation(testOrder()), "dev mode logs instead of sending")
	assert.NoError(t, svc.SendOrderNotification(testOrder()))
}

func TestEmailServiceUnconfiguredInProduction(t *testing.T) {
	svc := NewEmailService("", "noreply@example.com", "hello@example.com", "https://innovelous.example", "Innovelous", false)

	assert.Error(t, svc.SendOrderConfirmation(testOrder()), "no client and not in dev mode")
}
