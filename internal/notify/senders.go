package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Princeaman007/interships/internal/config"
	"github.com/wneessen/go-mail"
)

// SMTPSender delivers messages through an SMTP relay.
type SMTPSender struct {
	mu     sync.Mutex
	client *mail.Client
	from   string
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}
	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPSender{client: client, from: cfg.SMTPFrom}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.DialAndSendWithContext(ctx, m)
}

// LogSender writes messages to the log instead of sending them. It is used
// when no SMTP host is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "email not sent, smtp disabled", "to", msg.To, "subject", msg.Subject)
	return nil
}

// NewSender picks the SMTP sender when configured.
func NewSender(cfg *config.Config) (Sender, error) {
	if !cfg.SMTPEnabled() {
		return LogSender{}, nil
	}
	return NewSMTPSender(cfg)
}
