package utils

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP. When no host is configured
// it is disabled and callers skip sending.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

func NewMailer(host string, port int, username, password string) *Mailer {
	return &Mailer{host: host, port: port, username: username, password: password}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.host != ""
}

// SendWelcome greets a newly registered user.
func (m *Mailer) SendWelcome(to string, name string) error {
	if name == "" {
		name = "there"
	}
	body := `
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h1 style="color: #003366;">Welcome to Krafti!</h1>
		<p>Hi ` + name + `,</p>
		<p>Your account is ready. Browse the class catalog and pick your first summer camp class.</p>
		<p>&copy; Krafti Summer Camp School. All rights reserved.</p>
	</div>`

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", "Welcome to Krafti")
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(mailer)
}
