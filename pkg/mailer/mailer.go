// Package mailer sends the account-confirmation email over SMTP with an
// implicit-TLS connection. Delivery is best-effort: the auth flow fires it
// in the background and only logs failures.
package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"contactbook-backend/pkg/config"
)

const confirmationSubject = "Confirm your email"

const confirmationTemplate = `<html>
<body>
  <p>Hello {{.Username}},</p>
  <p>Thank you for registering with Contact Manager API. Please confirm your
  email address by following the link below:</p>
  <p><a href="{{.Host}}/api/auth/confirmed_email/{{.Token}}">Confirm email</a></p>
  <p>If you did not register, simply ignore this message.</p>
</body>
</html>`

// Mailer sends confirmation emails through a single SMTP account.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	baseURL  string
	tmpl     *template.Template
}

// New builds a Mailer from the mail section of the config.
func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.MailHost,
		port:     cfg.MailPort,
		username: cfg.MailUsername,
		password: cfg.MailPassword,
		from:     cfg.MailFrom,
		baseURL:  cfg.BaseURL,
		tmpl:     template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

// SendConfirmation renders the confirmation template and delivers it.
func (m *Mailer) SendConfirmation(email, username, confirmationToken string) error {
	var body bytes.Buffer
	err := m.tmpl.Execute(&body, struct {
		Username string
		Host     string
		Token    string
	}{
		Username: username,
		Host:     m.baseURL,
		Token:    confirmationToken,
	})
	if err != nil {
		return fmt.Errorf("render confirmation mail: %w", err)
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: Contact Manager API <%s>\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", confirmationSubject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return m.send(email, msg.Bytes())
}

func (m *Mailer) send(to string, msg []byte) error {
	addr := m.host + ":" + m.port

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
