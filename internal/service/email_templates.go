package service

import (
	"fmt"

	"github.com/innovelous/agency/internal/model"
)

func orderConfirmationTemplate(order *model.Order, appName string) (string, string) {
	subject := fmt.Sprintf("We received your project request - %s", appName)
	body := fmt.Sprintf(`Hi %s,

Thanks for reaching out about "%s". Your request has been received and we'll get back to you within 24 hours.

Best,
The %s Team`, order.Name, order.ProjectTitle, appName)

	return subject, body
}

func orderNotificationTemplate(order *model.Order, appName, appURL string) (string, string) {
	subject := fmt.Sprintf("New project order: %s", order.ProjectTitle)
	body := fmt.Sprintf(`A new order was submitted on %s.

Client:   %s <%s>
Phone:    %s
Project:  %s
Budget:   %s
Timeline: %s

%s

Review it in the dashboard: %s/dashboard`,
		appName,
		order.Name, order.Email,
		order.Phone,
		order.ProjectTitle,
		order.Budget,
		order.Timeline,
		order.Description,
		appURL,
	)

	return subject, body
}
