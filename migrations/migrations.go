// Package migrations embeds the goose SQL migrations so the migrate command
// and deployment images do not depend on the source tree being present.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
