// Package graph defines how the pipeline reads the church hierarchy out of the
// graph database: a cypher string plus parameters in, records out.
package graph

import "context"

// Record is one result row keyed by the names in the query's RETURN clause.
type Record map[string]any

// Runner executes read-only cypher queries. Implementations must be safe for
// concurrent use; the pipeline shares one Runner across all report queries.
//
//go:generate mockgen -package mockgraph -source=interface.go -destination=mock/mockgraph.go *
type Runner interface {
	// Run executes cypher with params and returns every record.
	Run(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
}
