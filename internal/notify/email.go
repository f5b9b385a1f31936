// Package notify holds the outbound channels: SMTP email to subscribers and
// an optional Twilio SMS alert.
package notify

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/moffd234/FlightPriceTracker/internal/config"
	"github.com/moffd234/FlightPriceTracker/internal/domain"
)

// EmailSender delivers deal alerts over SMTP. Each send opens its own
// authenticated STARTTLS session and closes it before returning; nothing is
// pooled across calls.
type EmailSender struct {
	host     string
	port     string
	from     string
	password string
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.EmailAddress,
		password: cfg.EmailPassword,
	}
}

// SendDeal emails one subscriber about one qualifying fare. Failures wrap
// domain.ErrDelivery and abort the caller's pass.
func (s *EmailSender) SendDeal(sub domain.Subscriber, city string, fare domain.FareQuote) error {
	msg := buildDealMessage(sub, fare.FromCity, city, fare)
	if err := s.send(sub.Email, msg); err != nil {
		return fmt.Errorf("%w: email to %s: %v", domain.ErrDelivery, sub.Email, err)
	}
	return nil
}

// send runs one full SMTP submission: dial, STARTTLS, auth, one recipient,
// quit. The connection is closed on every path.
func (s *EmailSender) send(to, msg string) error {
	client, err := smtp.Dial(s.host + ":" + s.port)
	if err != nil {
		return fmt.Errorf("SMTP dial failed: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: s.host,
		MinVersion: tls.VersionTLS12,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("STARTTLS failed: %w", err)
	}

	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("SMTP MAIL failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("SMTP RCPT failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("SMTP write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("SMTP close failed: %w", err)
	}

	return client.Quit()
}

// buildDealMessage renders the full message, subject line included.
func buildDealMessage(sub domain.Subscriber, origin, city string, fare domain.FareQuote) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("Subject: LOW PRICE ON A FLIGHT TO %s\r\n", strings.ToUpper(city)))
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf(
		"Good Morning %s,\nWe have found an amazing price from %s to %s on %s for only $%s",
		sub.FullName(), origin, city, fare.LocalDeparture, formatPrice(fare.Price),
	))
	return msg.String()
}

// formatPrice drops a trailing ".00" so whole-dollar fares read "$450".
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
