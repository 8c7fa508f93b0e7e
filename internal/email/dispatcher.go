// internal/email/dispatcher.go
package email

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"order-notify-service/internal/config"
)

// ErrNoRecipient is returned when a message has no destination address.
var ErrNoRecipient = errors.New("email must have a recipient address")

// Message is a fully rendered email ready for a provider.
type Message struct {
	FromAddress string
	FromName    string
	ToAddress   string
	ToName      string
	Subject     string
	HTMLBody    string
}

// Receipt is the provider's synchronous answer.
type Receipt struct {
	Success        bool
	ProviderStatus int
	RawResponse    string
}

// Dispatcher hands a message to a transactional email provider exactly once.
// A returned error means the provider could not be reached; a reachable
// provider that refuses the message yields a Receipt with Success == false.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) (*Receipt, error)
}

// NewDispatcher builds the provider selected by cfg.EmailProvider.
func NewDispatcher(cfg *config.Config, lg *zap.Logger) (Dispatcher, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.EmailProvider)) {
	case "", "zeptomail":
		return NewZeptoMail(cfg.ZeptoMailURL, cfg.ZeptoMailAPIKey, cfg.SendTimeout, lg), nil
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, errors.New("SMTP_HOST is required for the smtp provider")
		}
		return NewSender(cfg, lg), nil
	default:
		return nil, errors.Errorf("unsupported email provider %q", cfg.EmailProvider)
	}
}
