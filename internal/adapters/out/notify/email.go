// Package notify implements the downstream notification channels the
// dispatcher delivers transition events to.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// EmailChannel delivers transition events as plain-text mail through an SMTP
// relay.
type EmailChannel struct {
	addr      string
	from      string
	recipient string
	auth      smtp.Auth
}

// NewEmailChannel creates an email channel targeting the given SMTP relay.
// Pass nil auth for an unauthenticated relay.
func NewEmailChannel(addr string, from string, recipient string, auth smtp.Auth) *EmailChannel {
	return &EmailChannel{
		addr:      addr,
		from:      from,
		recipient: recipient,
		auth:      auth,
	}
}

// Name identifies the channel in the delivery log.
func (c *EmailChannel) Name() string {
	return "email"
}

// Send mails the serialized transition event. The context is checked before
// the send; net/smtp itself does not take one.
func (c *EmailChannel) Send(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Order stage update\r\nContent-Type: application/json\r\n\r\n%s\r\n",
		c.from, c.recipient, payload,
	)

	if err := smtp.SendMail(c.addr, c.auth, c.from, []string{c.recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
