package utils

import (
	"fmt"
	"html"
	"os"
	"strings"

	"tickoff/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends the due-soon reminder email.
type Mailer interface {
	SendDueReminder(todos []models.Todo, to string) error
}

// SendGridMailer sends reminders through the SendGrid API, authenticated by
// the SENDGRID_API_KEY environment variable.
type SendGridMailer struct{}

func (SendGridMailer) SendDueReminder(todos []models.Todo, to string) error {
	from := mail.NewEmail("tickoff reminders", "donotreply@tickoff.app")
	subject := fmt.Sprintf("%d todo(s) due soon", len(todos))

	var plainBody, htmlBody strings.Builder
	plainBody.WriteString("Due soon:\n")
	htmlBody.WriteString("<p>Due soon:</p><ul>")
	for _, t := range todos {
		line := t.Title
		if t.DueDate != nil {
			line = fmt.Sprintf("%s (due %s)", t.Title, t.DueDate.Format("Jan 2 at 15:04"))
		}
		fmt.Fprintf(&plainBody, "- %s\n", line)
		fmt.Fprintf(&htmlBody, "<li>%s</li>", html.EscapeString(line))
	}
	htmlBody.WriteString("</ul>")

	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plainBody.String(), htmlBody.String())
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending reminder email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
