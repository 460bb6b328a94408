package weekly

import (
	"net/http"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"

	"github.com/go-faster/jx"
)

// Result is the outcome of one pipeline run, shaped like the handler
// response the scheduler inspects.
type Result struct {
	// StatusCode is 200 when the sheet was cleared and written, 500 otherwise.
	StatusCode int
	// Body is a JSON object with a single message field.
	Body []byte
	// Reports lists what each report produced, in column order.
	Reports []domain.ReportSummary
	// SMSSent reports whether the gateway accepted the notification.
	SMSSent bool
	// Err is the failure behind a 500.
	Err error
}

// OK reports whether the run completed its sheet writes.
func (r Result) OK() bool { return r.StatusCode == http.StatusOK }

// ReportRows maps report name to the rows it produced.
func (r Result) ReportRows() map[string]int {
	out := make(map[string]int, len(r.Reports))
	for _, s := range r.Reports {
		out[s.Name] = s.Rows
	}

	return out
}

// Response renders {"statusCode": ..., "body": "..."} with the body kept as a
// JSON string.
func (r Result) Response() []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("statusCode")
	e.Int(r.StatusCode)
	e.FieldStart("body")
	e.Str(string(r.Body))
	e.ObjEnd()

	return e.Bytes()
}

func messageBody(msg string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("message")
	e.Str(msg)
	e.ObjEnd()

	return e.Bytes()
}

func succeeded(msg string, reports []domain.ReportSummary, smsSent bool) Result {
	return Result{
		StatusCode: http.StatusOK,
		Body:       messageBody(msg),
		Reports:    reports,
		SMSSent:    smsSent,
	}
}

func failed(err error, reports []domain.ReportSummary) Result {
	return Result{
		StatusCode: http.StatusInternalServerError,
		Body:       messageBody(err.Error()),
		Reports:    reports,
		Err:        err,
	}
}
