// Package flnotify provides a notifier.Client backed by the FL notification
// service HTTP API.
package flnotify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/notifier"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/go-faster/jx"
)

// Client posts SMS requests to the notification service. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// EncodeSMS renders msg as the JSON body expected by the send-sms endpoint.
func EncodeSMS(msg notifier.SMS) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("recipient")
	e.ArrStart()
	for _, r := range msg.Recipients {
		e.Str(r)
	}
	e.ArrEnd()
	e.FieldStart("sender")
	e.Str(msg.Sender)
	e.FieldStart("message")
	e.Str(msg.Message)
	e.ObjEnd()

	return e.Bytes()
}

// SendSMS posts msg to <baseURL>/send-sms.
func (c *Client) SendSMS(ctx context.Context, msg notifier.SMS) error {
	if len(msg.Recipients) == 0 {
		return serrors.With(serrors.ErrBadRequest, "no sms recipients")
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/send-sms",
		bytes.NewReader(EncodeSMS(msg)))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-secret-key", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	body := strings.TrimSpace(string(b))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", body)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "secret key rejected: %s", body)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("send sms failed with status %d: %s", resp.StatusCode, body)
	}

	return nil
}

var _ notifier.Client = (*Client)(nil)

// New constructs a Client for the service at baseURL. A trailing slash on
// baseURL is ignored.
func New(httpClient *http.Client, baseURL, secretKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
	}
}
