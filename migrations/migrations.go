// Package migrations embeds the SQL schema migrations so the binaries can
// apply them without a files-on-disk deployment step.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
