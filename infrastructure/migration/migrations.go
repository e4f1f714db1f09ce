package migration

import "embed"

// FS contém os arquivos SQL aplicados pelo golang-migrate via iofs
//
//go:embed sql/*.sql
var FS embed.FS

const Version = 1
