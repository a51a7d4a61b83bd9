package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// Mailer delivers notifications over plain SMTP.
type Mailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewMailer(host, port, user, password, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, password: password, from: from}
}

// Configured reports whether enough SMTP settings are present to attempt
// delivery.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.port != "" && m.user != "" && m.password != ""
}

func (m *Mailer) send(to, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("SMTP credentials not fully configured")
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	message := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, subject, body))
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *Mailer) SendInvitation(_ context.Context, inv Invitation) error {
	subject := fmt.Sprintf("%s registered a loan for you", inv.LenderName)
	body := fmt.Sprintf(
		"Hi %s,\n\n%s registered a loan of %.2f: %s\n\nReview and respond here: %s\n",
		inv.BorrowerName, inv.LenderName, inv.Amount, inv.Description, inv.InvitationURL)
	return m.send(inv.BorrowerEmail, subject, body)
}

func (m *Mailer) SendPaymentSubmitted(_ context.Context, ps PaymentSubmitted) error {
	subject := fmt.Sprintf("%s registered a payment", ps.BorrowerName)
	body := fmt.Sprintf(
		"Hi %s,\n\n%s registered a %s payment of %.2f on the loan of %.2f (loan %s).",
		ps.LenderName, ps.BorrowerName, ps.PaymentType, ps.PaymentAmount, ps.LoanAmount, ps.LoanID)
	if ps.Notes != "" {
		body += "\n\nNotes: " + ps.Notes
	}
	body += "\n\nConfirm or reject it from your dashboard.\n"
	return m.send(ps.LenderEmail, subject, body)
}
