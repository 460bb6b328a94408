// Package v1handler serves the v1 report API: triggering weekly reports and
// reading run history.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/api/specs/v1specs"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

type Deps struct {
	Reports reports.Service
}

type Handler struct {
	deps Deps
}

var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "rate limited"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
}

// classify gives the errors raised by the generated server a kind.
func classify(err error) error {
	var (
		secErr     *ogenerrors.SecurityError
		paramsErr  *ogenerrors.DecodeParamsError
		requestErr *ogenerrors.DecodeRequestError
	)
	switch {
	case errors.As(err, &secErr):
		if serrors.KindOf(secErr.Err) == serrors.ErrUnauthorized {
			return secErr.Err
		}

		return serrors.Wrap(serrors.ErrUnauthorized, secErr.Err, "unauthorized")
	case errors.As(err, &paramsErr):
		return serrors.Wrap(serrors.ErrBadRequest, paramsErr.Err, "invalid parameters")
	case errors.As(err, &requestErr):
		return serrors.Wrap(serrors.ErrBadRequest, requestErr.Err, "invalid request body")
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "")
	}

	return err
}

// NewError maps err to a response by its serrors kind. Errors without a
// known kind become a 500 whose message hides the cause.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	err = classify(err)

	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &v1specs.ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: v1specs.Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Debug(ctx, "request failed", zap.Error(err))
	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = mapping.message
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: mapping.status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

// HandleError writes the errors the generated server reports before a
// handler runs, such as malformed parameters, in the NewError shape.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, err)
	body, _ := res.Response.MarshalJSON()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(body)
}
