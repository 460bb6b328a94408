// Package adminportal embeds the SQL migrations applied by the migrate command
// and by the storage integration tests.
package adminportal

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
