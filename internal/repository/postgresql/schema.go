package postgresql

import _ "embed"

// Schema is the full DDL. Every statement is idempotent, so it runs on
// each startup.
//
//go:embed schema.sql
var Schema string
