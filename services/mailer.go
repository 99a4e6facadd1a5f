package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/mirkashi/Grazieoutfits/models"
)

// Mailer sends transactional mail using the SMTP parameters stored in the
// settings document.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order, cfg models.EmailConfig) error
}

// SMTPMailer implements Mailer over plain SMTP. Port 465 uses implicit TLS;
// any other port dials in the clear and upgrades via STARTTLS when the server
// offers it.
type SMTPMailer struct {
	dialTimeout time.Duration
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{dialTimeout: 10 * time.Second}
}

func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, order *models.Order, cfg models.EmailConfig) error {
	from := fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	subject := "Order Confirmation - Grazie Outfits"
	body := buildOrderConfirmationHTML(order)

	msg := []byte(
		"From: " + from + "\r\n" +
			"To: " + order.Email + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	return m.send(ctx, cfg, order.Email, msg)
}

func (m *SMTPMailer) send(ctx context.Context, cfg models.EmailConfig, to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	dialer := &net.Dialer{Timeout: m.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial failed: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	// Implicit TLS on 465.
	if cfg.SMTPPort == 465 {
		conn = tls.Client(conn, &tls.Config{ServerName: cfg.SMTPHost})
	}

	client, err := smtp.NewClient(conn, cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake failed: %w", err)
	}
	defer client.Close()

	if cfg.SMTPPort != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: cfg.SMTPHost}); err != nil {
				return fmt.Errorf("smtp starttls failed: %w", err)
			}
		}
	}

	if cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp mail failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("smtp write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp write failed: %w", err)
	}

	return client.Quit()
}

func buildOrderConfirmationHTML(order *models.Order) string {
	return fmt.Sprintf(`
      <h1>Thank you for your order!</h1>
      <p>Dear %s,</p>
      <p>Your order has been received and is being processed.</p>
      <p><strong>Order ID:</strong> %s</p>
      <p><strong>Total Amount:</strong> Rs %d</p>
      <p>We will contact you soon with updates.</p>
      <p>Best regards,<br>Grazie Outfits Team</p>
    `, order.CustomerName, order.ID.Hex(), order.TotalAmount)
}
