package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

// Inline so the binary has no template files to deploy alongside it.
const followUpTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your inquiry, {{.Name}}!</h2>
  <p>We received your request{{if .EventType}} for your <strong>{{.EventType}}</strong>{{end}}{{if .EventDate}} on <strong>{{.EventDate}}</strong>{{end}}.</p>
  <p>Your reference number is <strong>{{.RefNumber}}</strong>. Please keep it for all follow-ups.</p>
  <p>Our team will get back to you within one business day.</p>
  <p>— Lucille's Premium Catering</p>
</body>
</html>`

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *EmailSender) SendFollowUp(to, name, refNumber, eventType, eventDate string) error {
	data := FollowUpEmailData{
		Name:      name,
		RefNumber: refNumber,
		EventType: eventType,
		EventDate: eventDate,
	}

	t, err := template.New("followup").Parse(followUpTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse follow-up template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render follow-up template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@lucillescatering.com")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("We got your inquiry, %s! (Ref %s)", name, refNumber))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
