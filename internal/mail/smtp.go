package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"
)

// SMTPConfig holds the outbound mail server settings. Port 465 is
// implicit TLS, which net/smtp does not speak directly, so the dialer
// wraps the connection itself.
type SMTPConfig struct {
	Host     string
	Port     string
	Address  string
	Password string
	FromName string
}

func SMTPConfigFromEnv() SMTPConfig {
	cfg := SMTPConfig{
		Host:     os.Getenv("SMTP_SERVER"),
		Port:     os.Getenv("SMTP_PORT"),
		Address:  os.Getenv("EMAIL_ADDRESS"),
		Password: os.Getenv("EMAIL_PASSWORD"),
		FromName: os.Getenv("EMAIL_FROM_NAME"),
	}
	if cfg.Port == "" {
		cfg.Port = "465"
	}
	return cfg
}

func (c SMTPConfig) configured() bool {
	return c.Host != "" && c.Address != "" && c.Password != ""
}

// Sender delivers a message to one external address.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends over implicit-TLS SMTP.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	if !s.cfg.configured() {
		return fmt.Errorf("smtp is not configured")
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.cfg.Address, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(s.cfg.Address); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	from := s.cfg.Address
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.Address)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		from, to, subject, body)

	if _, err := wc.Write([]byte(msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}
