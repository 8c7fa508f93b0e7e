// internal/email/sender.go
package email

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"order-notify-service/internal/config"
)

// smtpOK is reported as the provider status for an accepted SMTP message.
const smtpOK = 250

// mailDialer is the part of *gomail.Dialer the sender needs.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Sender delivers over SMTP with a single attempt.
type Sender struct {
	dialer mailDialer
	lg     *zap.Logger
}

func NewSender(cfg *config.Config, lg *zap.Logger) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		lg:     lg,
	}
}

func (s *Sender) Dispatch(ctx context.Context, msg Message) (*Receipt, error) {
	if msg.ToAddress == "" {
		return nil, ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "email send cancelled")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetAddressHeader("To", msg.ToAddress, msg.ToName)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	s.lg.Debug("Sending over SMTP", zap.String("to", msg.ToAddress), zap.String("subject", msg.Subject))

	// gomail takes no context; only the pre-send check above honours it.
	if err := s.dialer.DialAndSend(m); err != nil {
		return nil, errors.Wrapf(err, "send email to %s", msg.ToAddress)
	}
	return &Receipt{Success: true, ProviderStatus: smtpOK, RawResponse: "accepted"}, nil
}
