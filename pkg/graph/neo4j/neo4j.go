// Package neo4j provides a graph.Runner backed by the official Neo4j driver.
// A single driver (and its connection pool) serves the whole process; each
// query borrows a fresh read session that is closed as soon as the records are
// collected.
package neo4j

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/graph"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"go.uber.org/zap"
)

// Options configures the connection to the graph database.
type Options struct {
	// URI is the bolt/neo4j URI, e.g. neo4j+s://graph.example.com.
	URI      string
	Username string
	Password string
	// Database selects a named database; empty uses the server default.
	Database string
	// MaxConnectionPoolSize bounds concurrent sessions across all queries.
	MaxConnectionPoolSize int
	// MaxConnectionLifetime recycles pooled connections older than this.
	MaxConnectionLifetime time.Duration
	// AcquisitionTimeout bounds the wait for a pooled connection.
	AcquisitionTimeout time.Duration
}

// Graph implements graph.Runner.
type Graph struct {
	driver   neo4j.DriverWithContext
	database string
}

var _ graph.Runner = (*Graph)(nil)

// New creates the driver and verifies that the server is reachable.
func New(ctx context.Context, options Options) (*Graph, error) {
	driver, err := neo4j.NewDriverWithContext(options.URI,
		neo4j.BasicAuth(options.Username, options.Password, ""),
		func(c *config.Config) {
			if options.MaxConnectionPoolSize > 0 {
				c.MaxConnectionPoolSize = options.MaxConnectionPoolSize
			}
			if options.MaxConnectionLifetime > 0 {
				c.MaxConnectionLifetime = options.MaxConnectionLifetime
			}
			if options.AcquisitionTimeout > 0 {
				c.ConnectionAcquisitionTimeout = options.AcquisitionTimeout
			}
		})
	if err != nil {
		return nil, fmt.Errorf("could not create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach neo4j at %s", options.URI)
	}

	return &Graph{driver: driver, database: options.Database}, nil
}

// Run executes cypher inside a managed read transaction on its own session.
func (g *Graph) Run(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error) {
	if strings.TrimSpace(cypher) == "" {
		return nil, serrors.With(serrors.ErrInvalidQuery, "empty cypher query")
	}

	session := g.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: g.database,
	})
	defer func() {
		if err := session.Close(ctx); err != nil {
			logger.Warn(ctx, "could not close neo4j session", zap.Error(err))
		}
	}()

	res, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}

		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}

		out := make([]graph.Record, 0, len(records))
		for _, record := range records {
			out = append(out, record.AsMap())
		}

		return out, nil
	})
	if err != nil {
		return nil, classify(err)
	}

	records, _ := res.([]graph.Record)

	return records, nil
}

// Close releases the driver's connection pool.
func (g *Graph) Close(ctx context.Context) error {
	if err := g.driver.Close(ctx); err != nil {
		return fmt.Errorf("could not close neo4j driver: %w", err)
	}

	return nil
}

// classify maps driver errors onto semantic kinds.
func classify(err error) error {
	var neoErr *neo4j.Neo4jError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "graph query timed out")
	case neo4j.IsConnectivityError(err):
		return serrors.Wrap(serrors.ErrUnavailable, err, "graph database unavailable")
	case errors.As(err, &neoErr) && strings.Contains(neoErr.Code, ".Statement."):
		return serrors.Wrap(serrors.ErrInvalidQuery, err, "graph rejected query")
	default:
		return fmt.Errorf("could not run graph query: %w", err)
	}
}
