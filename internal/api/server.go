// Package api configures the HTTP server: the v1 report routes, metrics,
// docs, the River job dashboard and the shared middlewares.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/api/handler/v1handler"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/api/specs/v1specs"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/controller"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target specs/v1specs --package v1specs --clean specs/v1.yaml

// v1Spec is the OpenAPI document of the v1 routes.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// maxBodyBytes bounds v1 request bodies.
const maxBodyBytes = 64 << 10

const riverUIPrefix = "/riverui"

// Options holds the HTTP server settings. Zero durations fall back to the
// net/http defaults.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds every request through http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	MetricsPath    string
	CORSOrigins    []string
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// River serves the job dashboard under /riverui/. It is optional.
	River *river.Client[pgx.Tx]
	// MeterProvider records the v1 request metrics; nil uses the global one.
	MeterProvider metric.MeterProvider
}

// NewServer wires the routes into an *http.Server:
//   - the v1 API under /v1/
//   - Prometheus metrics at MetricsPath
//   - the OpenAPI document and Swagger UI
//   - the River UI, when a River client is given
//   - pprof under /debug/pprof/
//
// ctx bounds the River UI's background work.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	mux.Handle(opts.MetricsPath, promhttp.Handler())

	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/v1/docs/", v5emb.New(
		"Campus Weekly Report Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Handler := v1handler.New(deps.Deps)
	v1Srv, err := v1specs.NewServer(v1Handler,
		secHandler,
		v1specs.WithMeterProvider(deps.MeterProvider),
		v1specs.WithErrorHandler(v1Handler.HandleError),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 server: %w", err)
	}
	mux.Handle("/v1/", http.MaxBytesHandler(v1Srv, maxBodyBytes))

	if deps.River != nil {
		ui, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.River, nil),
			Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
			Prefix:    riverUIPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui handler: %w", err)
		}
		if err := ui.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui handler: %w", err)
		}
		mux.Handle(riverUIPrefix+"/", ui)
	}

	mux.Handle("/debug/pprof/", controller.PprofMux())

	handler := controller.WithCORS(opts.CORSOrigins, mux)
	handler = controller.WithLogger(handler)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
