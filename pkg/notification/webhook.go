package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// Webhook posts announcements to a club-configured webhook endpoint. It
// implements notify.Notifier.
type Webhook struct {
	url    string
	client *retryablehttp.Client
}

func NewWebhook(url string) *Webhook {
	client := retryablehttp.NewClient()
	client.Logger = nil
	return &Webhook{url: url, client: client}
}

func (w *Webhook) Send(ctx context.Context, subject, message string) error {
	payload, err := json.Marshal(map[string]string{
		"subject": subject,
		"message": message,
	})
	if err != nil {
		return errors.Wrap(err, "encoding webhook payload")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "building webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "posting webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.Errorf("posting webhook: status %d", resp.StatusCode)
	}
	return nil
}
