package migrations

import "embed"

// FS embeds the SQL migration files in this directory. golang-migrate
// reads them through its iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates up to.
const Version = 1
