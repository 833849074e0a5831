// Package webhook delivers notification events to an external endpoint as
// JSON POST requests. Delivery is best-effort: one attempt per event, no
// retries, no buffering. The bot or push gateway behind the endpoint owns
// rendering and user delivery.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"freighthub/internal/core/domain/events"
)

const defaultTimeout = 5 * time.Second

// eventBody is the wire format posted to the endpoint.
type eventBody struct {
	Kind       string            `json:"kind"`
	OrderID    string            `json:"order_id"`
	Recipients []string          `json:"recipients"`
	Payload    map[string]string `json:"payload"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Publisher posts notification events to a single configured URL.
type Publisher struct {
	url    string
	client *http.Client
}

// NewPublisher creates a webhook publisher for the given endpoint URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Publish posts the event to the endpoint.
// Any status outside 2xx is reported as an error.
func (p *Publisher) Publish(ctx context.Context, event events.NotificationEvent) error {
	recipients := make([]string, 0, len(event.Recipients))
	for _, r := range event.Recipients {
		recipients = append(recipients, r.String())
	}

	body, err := json.Marshal(eventBody{
		Kind:       string(event.Kind),
		OrderID:    event.OrderID.String(),
		Recipients: recipients,
		Payload:    event.Payload,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
