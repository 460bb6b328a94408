package gsheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/spreadsheet/gsheets"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

type fakeSheets struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query().Get("valueInputOption"),
		Body:   body,
	})
	status := f.status
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Unable to parse range","status":"INVALID_ARGUMENT"}}`))
		return
	}
	_, _ = w.Write([]byte(`{}`))
}

func newTestSheets(t *testing.T, fake *fakeSheets) *gsheets.Sheets {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := gsheets.New(context.Background(), gsheets.Options{
		SpreadsheetID: "sheet-id",
		ClientOptions: []option.ClientOption{
			option.WithEndpoint(srv.URL + "/"),
			option.WithoutAuthentication(),
			option.WithHTTPClient(srv.Client()),
		},
	})
	require.NoError(t, err)

	return s
}

func TestNew_RequiresSpreadsheetID(t *testing.T) {
	_, err := gsheets.New(context.Background(), gsheets.Options{})
	require.Error(t, err)
}

func TestA1(t *testing.T) {
	require.Equal(t, "'ALL Accra Graph Data'!A2:F", gsheets.A1("ALL Accra Graph Data", "A2:F"))
	require.Equal(t, "'Pastor''s Sheet'!G2:G", gsheets.A1("Pastor's Sheet", "G2:G"))
}

func TestSheets_Clear(t *testing.T) {
	fake := &fakeSheets{}
	s := newTestSheets(t, fake)

	require.NoError(t, s.Clear(context.Background(), "ALL Accra Graph Data"))

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	require.Equal(t, http.MethodPost, req.Method)
	require.True(t, strings.HasPrefix(req.Path, "/v4/spreadsheets/sheet-id/values/"), req.Path)
	require.True(t, strings.HasSuffix(req.Path, "'ALL Accra Graph Data':clear"), req.Path)
}

func TestSheets_Write(t *testing.T) {
	fake := &fakeSheets{}
	s := newTestSheets(t, fake)

	rows := [][]string{
		{"Weekend Attendance"},
		{"120"},
		{""},
	}
	require.NoError(t, s.Write(context.Background(), "ALL Accra Graph Data", "G2:G", rows))

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	require.Equal(t, http.MethodPut, req.Method)
	require.True(t, strings.HasSuffix(req.Path, "'ALL Accra Graph Data'!G2:G"), req.Path)
	require.Equal(t, "USER_ENTERED", req.Query)
	require.Equal(t, "ROWS", req.Body["majorDimension"])
	require.Equal(t, []any{
		[]any{"Weekend Attendance"},
		[]any{"120"},
		[]any{""},
	}, req.Body["values"])
}

func TestSheets_Errors(t *testing.T) {
	fake := &fakeSheets{status: http.StatusBadRequest}
	s := newTestSheets(t, fake)

	err := s.Clear(context.Background(), "ALL Accra Graph Data")
	require.ErrorContains(t, err, `clear sheet "ALL Accra Graph Data"`)

	err = s.Write(context.Background(), "ALL Accra Graph Data", "A2:F", [][]string{{"Pastor"}})
	require.ErrorContains(t, err, "write range 'ALL Accra Graph Data'!A2:F")
}
