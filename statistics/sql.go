package statistics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartcontractkit/analyzer-badges/badge"

	_ "github.com/lib/pq"
	_ "github.com/proullon/ramsql/driver"
	_ "modernc.org/sqlite"
)

const (
	// DriverPostgres selects the PostgreSQL SQL store.
	DriverPostgres = "postgres"
	// DriverRamSQL selects an in-process SQL store, mostly useful for tests.
	DriverRamSQL = "ramsql"
	// DriverSQLite selects a SQLite file store. The DSN is the database file path.
	DriverSQLite = "sqlite"
)

var _ Store = &sqlStore{}

// querier is implemented by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqlStore is a [Store] backed by a SQL database.
type sqlStore struct {
	db      *sql.DB
	dialect dialect
}

// OpenSQL opens a SQL backed statistics store and creates its tables.
func OpenSQL(ctx context.Context, driverName, dsn string) (Store, error) {
	if dsn == "" {
		return nil, errors.New("statistics dsn is required")
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	d := dialectFor(driverName)
	if d.maxOpenConns > 0 {
		db.SetMaxOpenConns(d.maxOpenConns)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	if err = migrate(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqlStore{db: db, dialect: d}, nil
}

func migrate(ctx context.Context, db *sql.DB, d dialect) error {
	for _, stmt := range d.statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create statistics schema: %w", err)
		}
	}

	return nil
}

type sqlTxKey struct{}

// sqlTransaction wraps a *sql.Tx so that Rollback after Commit is a no-op.
type sqlTransaction struct {
	mu    sync.Mutex
	tx    *sql.Tx
	store *sqlStore
	done  bool
}

func (t *sqlTransaction) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return ErrTransactionDone
	}
	t.done = true

	return t.tx.Commit()
}

func (t *sqlTransaction) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return nil
	}
	t.done = true

	return t.tx.Rollback()
}

func (s *sqlStore) BeginTransaction(ctx context.Context) (context.Context, badge.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ctx, nil, err
	}

	stx := &sqlTransaction{tx: tx, store: s}

	return context.WithValue(ctx, sqlTxKey{}, stx), stx, nil
}

// conn returns the transaction carried by ctx, or the database when there is none.
func (s *sqlStore) conn(ctx context.Context) (querier, error) {
	stx, ok := ctx.Value(sqlTxKey{}).(*sqlTransaction)
	if !ok || stx.store != s {
		return s.db, nil
	}

	stx.mu.Lock()
	defer stx.mu.Unlock()
	if stx.done {
		return nil, ErrTransactionDone
	}

	return stx.tx, nil
}

func (s *sqlStore) AddRequestEntry(ctx context.Context) error {
	q, err := s.conn(ctx)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx,
		s.dialect.rebind(`INSERT INTO requests (id, date_time) VALUES ($1, $2)`),
		uuid.New().String(), formatTime(now()),
	)
	if err != nil {
		return fmt.Errorf("failed to insert request entry: %w", err)
	}

	return nil
}

func (s *sqlStore) RegisterBadge(ctx context.Context, accountName, projectName string) (Registration, error) {
	if err := validateProject(accountName, projectName); err != nil {
		return Registration{}, err
	}

	var reg Registration
	err := WithTransaction(ctx, s, func(ctx context.Context) error {
		q, err := s.conn(ctx)
		if err != nil {
			return err
		}

		projectID, err := s.ensureProject(ctx, q, accountName, projectName)
		if err != nil {
			return err
		}

		reg = Registration{
			BadgeIdentifier: newBadgeIdentifier(),
			AccountName:     accountName,
			ProjectName:     projectName,
			Created:         now(),
		}
		_, err = q.ExecContext(ctx,
			s.dialect.rebind(`INSERT INTO badges (id, badge_identifier, project_id, created) VALUES ($1, $2, $3, $4)`),
			uuid.New().String(), reg.BadgeIdentifier, projectID, formatTime(reg.Created),
		)
		if err != nil {
			return fmt.Errorf("failed to insert badge: %w", err)
		}

		return nil
	})
	if err != nil {
		return Registration{}, err
	}

	return reg, nil
}

// ensureProject returns the id of the project, inserting it when it is not known yet. Where the
// dialect supports it the insert ignores a project committed concurrently, so the following
// lookup always finds the winning row.
func (s *sqlStore) ensureProject(ctx context.Context, q querier, accountName, projectName string) (string, error) {
	if s.dialect.upsertProject != "" {
		_, err := q.ExecContext(ctx, s.dialect.rebind(s.dialect.upsertProject),
			uuid.New().String(), accountName, projectName, formatTime(now()),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert project: %w", err)
		}

		return s.lookupProject(ctx, q, accountName, projectName)
	}

	id, err := s.lookupProject(ctx, q, accountName, projectName)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	id = uuid.New().String()
	_, err = q.ExecContext(ctx,
		s.dialect.rebind(`INSERT INTO projects (id, account_name, project_name, date_time) VALUES ($1, $2, $3, $4)`),
		id, accountName, projectName, formatTime(now()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert project: %w", err)
	}

	return id, nil
}

func (s *sqlStore) lookupProject(ctx context.Context, q querier, accountName, projectName string) (string, error) {
	var id string
	err := q.QueryRowContext(ctx,
		s.dialect.rebind(`SELECT id FROM projects WHERE account_name = $1 AND project_name = $2`),
		accountName, projectName,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up project: %w", err)
	}

	return id, nil
}

func (s *sqlStore) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	counts := []struct {
		table string
		dest  *int
	}{
		{table: "requests", dest: &summary.Requests},
		{table: "badges", dest: &summary.Badges},
		{table: "projects", dest: &summary.Projects},
	}

	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+c.table).Scan(c.dest); err != nil {
			return Summary{}, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	return summary, nil
}

// Close releases database resources.
func (s *sqlStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
