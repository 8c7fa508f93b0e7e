// internal/email/zeptomail.go
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// ZeptoMail sends through the ZeptoMail HTTP API. HTTP 201 means accepted.
type ZeptoMail struct {
	url    string
	apiKey string
	client *http.Client
	lg     *zap.Logger
}

func NewZeptoMail(url, apiKey string, timeout time.Duration, lg *zap.Logger) *ZeptoMail {
	return &ZeptoMail{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		lg:     lg,
	}
}

type zeptoAddress struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type zeptoRecipient struct {
	EmailAddress zeptoAddress `json:"email_address"`
}

type zeptoPayload struct {
	From     zeptoAddress     `json:"from"`
	To       []zeptoRecipient `json:"to"`
	Subject  string           `json:"subject"`
	HTMLBody string           `json:"htmlbody"`
}

func (z *ZeptoMail) Dispatch(ctx context.Context, msg Message) (*Receipt, error) {
	if msg.ToAddress == "" {
		return nil, ErrNoRecipient
	}

	body, err := json.Marshal(zeptoPayload{
		From: zeptoAddress{Address: msg.FromAddress, Name: msg.FromName},
		To: []zeptoRecipient{{
			EmailAddress: zeptoAddress{Address: msg.ToAddress, Name: msg.ToName},
		}},
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("authorization", "Zoho-enczapikey "+z.apiKey)

	z.lg.Debug("Posting to ZeptoMail", zap.String("to", msg.ToAddress), zap.String("subject", msg.Subject))

	resp, err := z.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "post to zeptomail")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read zeptomail response")
	}

	return &Receipt{
		Success:        resp.StatusCode == http.StatusCreated,
		ProviderStatus: resp.StatusCode,
		RawResponse:    string(raw),
	}, nil
}
