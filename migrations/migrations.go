package migrations

import "embed"

// FS SQL-миграции схемы, применяются goose при старте сервиса
//
//go:embed *.sql
var FS embed.FS
