package flnotify_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/notifier"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/notifier/flnotify"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *flnotify.Client {
	return flnotify.New(&http.Client{Transport: fn}, "https://notify.example.com/", "s3cret")
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

var testSMS = notifier.SMS{
	Recipients: []string{"233240000001", "233240000002"},
	Sender:     "FLC Admin",
	Message:    "Accra weekly report for 2026-10-11 is ready",
}

func TestEncodeSMS(t *testing.T) {
	got := string(flnotify.EncodeSMS(testSMS))
	require.JSONEq(t, `{
		"recipient": ["233240000001", "233240000002"],
		"sender": "FLC Admin",
		"message": "Accra weekly report for 2026-10-11 is ready"
	}`, got)
}

func TestEncodeSMS_EscapesText(t *testing.T) {
	got := string(flnotify.EncodeSMS(notifier.SMS{
		Recipients: []string{"1"},
		Sender:     "FLC",
		Message:    "line \"one\"\nline two",
	}))
	require.JSONEq(t, `{"recipient":["1"],"sender":"FLC","message":"line \"one\"\nline two"}`, got)
}

func TestClient_SendSMS_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "notify.example.com", r.URL.Host)
		require.Equal(t, "/send-sms", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "s3cret", r.Header.Get("x-secret-key"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, string(flnotify.EncodeSMS(testSMS)), string(b))

		return respond(http.StatusOK, `{"message":"sent"}`)
	})

	require.NoError(t, c.SendSMS(context.Background(), testSMS))
}

func TestClient_SendSMS_statusKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{name: "unauthorized", status: http.StatusUnauthorized, kind: serrors.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, kind: serrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return respond(tt.status, "nope")
			})

			err := c.SendSMS(context.Background(), testSMS)
			require.ErrorIs(t, err, tt.kind)
			require.Contains(t, err.Error(), "nope")
		})
	}
}

func TestClient_SendSMS_non2xx(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "gateway down\n")
	})

	err := c.SendSMS(context.Background(), testSMS)
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
	require.Contains(t, err.Error(), "gateway down")
}

func TestClient_SendSMS_transportError(t *testing.T) {
	boom := errors.New("dial failed")
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})

	err := c.SendSMS(context.Background(), testSMS)
	require.ErrorIs(t, err, boom)
}

func TestClient_SendSMS_noRecipients(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})

	err := c.SendSMS(context.Background(), notifier.SMS{Sender: "FLC", Message: "hi"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
