// Package domain contains the entities shared across the report pipeline:
// report parameters, the rows a report produces and the record of a pipeline
// run. The types are free of graph, sheet and SQL concerns.
package domain
