package statistics

import "strings"

// dialect holds the driver specific schema statements and query conventions.
type dialect struct {
	// setup is run once after connecting, before the schema.
	setup         []string
	createTables  []string
	createIndexes []string
	// positional rewrites $n placeholders as ?n.
	positional bool
	// maxOpenConns limits the pool size when set.
	maxOpenConns int
	// upsertProject inserts a project unless the account and project name exist. Empty when the
	// database has no unique index to resolve the conflict on.
	upsertProject string
}

const upsertProjectOnConflict = `INSERT INTO projects (id, account_name, project_name, date_time) VALUES ($1, $2, $3, $4)
	ON CONFLICT (account_name, project_name) DO NOTHING`

var (
	dialectPostgres = dialect{
		createTables: []string{
			`CREATE TABLE IF NOT EXISTS requests (
				id TEXT PRIMARY KEY,
				date_time TEXT NOT NULL
			);`,
			`CREATE TABLE IF NOT EXISTS projects (
				id TEXT PRIMARY KEY,
				account_name TEXT NOT NULL,
				project_name TEXT NOT NULL,
				date_time TEXT NOT NULL
			);`,
			`CREATE TABLE IF NOT EXISTS badges (
				id TEXT PRIMARY KEY,
				badge_identifier TEXT NOT NULL,
				project_id TEXT NOT NULL,
				created TEXT NOT NULL
			);`,
		},
		createIndexes: []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_account_project ON projects (account_name, project_name);`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_badges_identifier ON badges (badge_identifier);`,
		},
		upsertProject: upsertProjectOnConflict,
	}

	// SQLite accepts the postgres schema. A single connection serializes writers, so the
	// connection settings apply to every statement.
	dialectSQLite = dialect{
		setup: []string{
			`PRAGMA journal_mode=WAL;`,
			`PRAGMA busy_timeout=5000;`,
		},
		createTables:  dialectPostgres.createTables,
		createIndexes: dialectPostgres.createIndexes,
		positional:    true,
		maxOpenConns:  1,
		upsertProject: upsertProjectOnConflict,
	}

	// ramsql keeps tables for the lifetime of the named in-memory database only, so the tables are
	// always created fresh and uniqueness is enforced by the store queries.
	dialectRamSQL = dialect{
		createTables: []string{
			`CREATE TABLE requests (id TEXT PRIMARY KEY, date_time TEXT NOT NULL);`,
			`CREATE TABLE projects (id TEXT PRIMARY KEY, account_name TEXT NOT NULL, project_name TEXT NOT NULL, date_time TEXT NOT NULL);`,
			`CREATE TABLE badges (id TEXT PRIMARY KEY, badge_identifier TEXT NOT NULL, project_id TEXT NOT NULL, created TEXT NOT NULL);`,
		},
	}
)

func dialectFor(driverName string) dialect {
	switch driverName {
	case DriverRamSQL:
		return dialectRamSQL
	case DriverSQLite:
		return dialectSQLite
	default:
		return dialectPostgres
	}
}

func (d dialect) statements() []string {
	stmts := make([]string, 0, len(d.setup)+len(d.createTables)+len(d.createIndexes))
	stmts = append(stmts, d.setup...)
	stmts = append(stmts, d.createTables...)

	return append(stmts, d.createIndexes...)
}

// rebind converts a query written with $n placeholders to the dialect.
func (d dialect) rebind(query string) string {
	if !d.positional {
		return query
	}

	return strings.ReplaceAll(query, "$", "?")
}
