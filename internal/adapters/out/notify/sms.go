package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// SMSChannel delivers transition events through an HTTP SMS gateway. The
// gateway receives the serialized event as JSON and renders the message text
// itself.
type SMSChannel struct {
	gatewayURL string
	apiKey     string
	client     *http.Client
}

// NewSMSChannel creates an SMS channel targeting the given gateway endpoint.
func NewSMSChannel(gatewayURL string, apiKey string) *SMSChannel {
	return &SMSChannel{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the channel in the delivery log.
func (c *SMSChannel) Name() string {
	return "sms"
}

// Send posts the serialized transition event to the gateway. Any non-2xx
// response counts as a failed attempt.
func (c *SMSChannel) Send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway: unexpected status %d", resp.StatusCode)
	}

	return nil
}
