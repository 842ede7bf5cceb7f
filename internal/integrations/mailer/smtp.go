package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPNotifier отправляет HTML письма через SMTP сервер
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPNotifier создает notifier поверх net/smtp
func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send отправляет HTML письмо одному получателю
func (n *SMTPNotifier) Send(to string, subject string, body string) error {
	addr := fmt.Sprintf("%s:%d", n.host, n.port)

	var msg strings.Builder
	msg.WriteString("From: " + n.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	if err := smtp.SendMail(addr, auth, n.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}

	return nil
}
