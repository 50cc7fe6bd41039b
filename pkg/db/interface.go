package db

import "database/sql"

// DBProvider is satisfied by clients exposing a sql.DB handle, letting the
// download index run against either PostgresClient or SupabaseClient.
type DBProvider interface {
	DB() *sql.DB
}
