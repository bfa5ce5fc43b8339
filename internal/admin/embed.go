package admin

import "embed"

// distFS carries the built dashboard frontend. The dist directory is the
// build output of the web client; a placeholder index.html is committed so
// the binary still builds before the frontend has been compiled.
//
//go:embed all:dist
var distFS embed.FS
