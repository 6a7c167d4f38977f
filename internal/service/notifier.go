package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/middleware"
)

// Notifier は学習リマインドの送信手段を抽象化します
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogNotifier ---
type LogNotifier struct{}

func (n *LogNotifier) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Notification (LogNotifier) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- SMTPNotifier ---
type SMTPNotifier struct {
	cfg *config.SMTPConfig
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	logger.Debug("Attempting to send notification via SMTP",
		"smtp_addr", addr,
		"from", n.cfg.From,
		"to", to,
	)

	// smtp.Dialは平文での接続を許可する低レベルな関数
	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return err
	}
	defer c.Close()

	if err = c.Mail(n.cfg.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", n.cfg.From)
		return err
	}

	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return err
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return err
	}
	defer wc.Close()

	msg := "To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n"

	if _, err = wc.Write([]byte(msg)); err != nil {
		logger.Error("Failed to write notification data", "error", err)
		return err
	}

	logger.Info("Notification sent successfully via SMTP", "to", to, "subject", subject)
	return nil
}

// --- NewNotifier ファクトリ関数 ---
func NewNotifier(cfg *config.Config) Notifier {
	logger := slog.Default()
	switch cfg.Notifier.Type {
	case "ses":
		logger.Info("Initializing SES notifier...")
		return NewSESNotifier(cfg)
	case "smtp":
		logger.Info("Initializing SMTP notifier...")
		return &SMTPNotifier{cfg: &cfg.SMTP}
	case "log":
		logger.Info("Initializing Log notifier...")
		return &LogNotifier{}
	default:
		logger.Warn("Unknown notifier type, defaulting to LogNotifier", "type", cfg.Notifier.Type)
		return &LogNotifier{}
	}
}
