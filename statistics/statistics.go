// Package statistics records badge request and registration statistics.
//
// An in-memory store serves tests and single process use. The SQL store runs on PostgreSQL,
// SQLite or ramsql. Both implement [Store] and therefore badge.StatisticsService.
package statistics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/smartcontractkit/analyzer-badges/badge"
)

var (
	// ErrTransactionDone is returned when committing or rolling back a finished transaction.
	ErrTransactionDone = errors.New("transaction has already been committed or rolled back")

	// ErrInvalidProject is returned when registering a badge without account or project name.
	ErrInvalidProject = errors.New("account and project name are required")
)

// Summary holds the totals recorded by a store.
type Summary struct {
	Requests int
	Badges   int
	Projects int
}

// Registration is the result of registering a badge for a project.
type Registration struct {
	BadgeIdentifier string
	AccountName     string
	ProjectName     string
	Created         time.Time
}

// Store is a statistics store.
type Store interface {
	badge.StatisticsService

	// RegisterBadge records the project, if not known yet, and a new badge identifier for it.
	RegisterBadge(ctx context.Context, accountName, projectName string) (Registration, error)

	// Summary returns the committed totals.
	Summary(ctx context.Context) (Summary, error)

	// Close releases the resources held by the store.
	Close() error
}

// TransactionLogic is the function run by [WithTransaction].
type TransactionLogic func(ctx context.Context) error

// WithTransaction runs fn inside a transaction of svc, committing when fn succeeds and rolling back
// when it fails or panics.
func WithTransaction(ctx context.Context, svc badge.StatisticsService, fn TransactionLogic) (err error) {
	txCtx, tx, err := svc.BeginTransaction(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var txerr error
	defer func() {
		if r := recover(); r != nil {
			// rollback before re-panicking
			_ = tx.Rollback()
			panic(r)
		} else if txerr != nil {
			// non panic error from the transaction logic itself
			err = errors.Join(txerr, tx.Rollback())
		} else {
			// everything went fine
			err = tx.Commit()
		}
	}()

	txerr = fn(txCtx)

	return txerr
}

// newBadgeIdentifier generates a new, time sortable badge identifier.
func newBadgeIdentifier() string {
	return "badge_" + ksuid.New().String()
}

func validateProject(accountName, projectName string) error {
	if strings.TrimSpace(accountName) == "" || strings.TrimSpace(projectName) == "" {
		return ErrInvalidProject
	}

	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
