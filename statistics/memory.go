package statistics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartcontractkit/analyzer-badges/badge"
)

var _ Store = &memoryStore{}

type projectKey struct {
	accountName string
	projectName string
}

type projectRow struct {
	id       string
	dateTime time.Time
}

type badgeRow struct {
	projectID string
	created   time.Time
}

// memoryStorage holds the rows of the in-memory store, either committed or staged by a transaction.
type memoryStorage struct {
	requests map[string]time.Time
	projects map[projectKey]projectRow
	badges   map[string]badgeRow
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		requests: make(map[string]time.Time),
		projects: make(map[projectKey]projectRow),
		badges:   make(map[string]badgeRow),
	}
}

// memoryStore is an in-memory [Store]. Changes made inside a transaction are staged and only become
// visible to other callers on commit.
type memoryStore struct {
	mu           sync.RWMutex // protects all fields below
	committed    *memoryStorage
	transactions map[*memoryTransaction]struct{}
}

// NewMemoryStore creates an in-memory statistics store. Data is not persisted and a new call
// creates an entirely separate store.
func NewMemoryStore() Store {
	return &memoryStore{
		committed:    newMemoryStorage(),
		transactions: make(map[*memoryTransaction]struct{}),
	}
}

type memoryTxKey struct{}

// memoryTransaction is an active transaction of a memoryStore.
type memoryTransaction struct {
	store  *memoryStore
	staged *memoryStorage
}

func (t *memoryTransaction) Commit() error {
	return t.store.commitTransaction(t)
}

func (t *memoryTransaction) Rollback() error {
	t.store.rollbackTransaction(t)

	return nil
}

func (s *memoryStore) BeginTransaction(ctx context.Context) (context.Context, badge.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return ctx, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTransaction{store: s, staged: newMemoryStorage()}
	s.transactions[tx] = struct{}{}

	return context.WithValue(ctx, memoryTxKey{}, tx), tx, nil
}

func (s *memoryStore) commitTransaction(tx *memoryTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transactions[tx]; !exists {
		return ErrTransactionDone
	}

	// Projects are unique per account and project name. A project staged concurrently by two
	// transactions keeps the first committed row and the badges of the later one move to it.
	remapped := make(map[string]string)
	for key, row := range tx.staged.projects {
		committed, exists := s.committed.projects[key]
		if !exists {
			s.committed.projects[key] = row
			continue
		}
		if committed.id != row.id {
			remapped[row.id] = committed.id
		}
	}
	for id, dateTime := range tx.staged.requests {
		s.committed.requests[id] = dateTime
	}
	for identifier, row := range tx.staged.badges {
		if projectID, ok := remapped[row.projectID]; ok {
			row.projectID = projectID
		}
		s.committed.badges[identifier] = row
	}

	delete(s.transactions, tx)

	return nil
}

func (s *memoryStore) rollbackTransaction(tx *memoryTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.transactions, tx)
}

// transactionFromContext returns the active transaction of this store carried by ctx, if any.
// The caller must hold s.mu.
func (s *memoryStore) transactionFromContext(ctx context.Context) (*memoryTransaction, error) {
	tx, ok := ctx.Value(memoryTxKey{}).(*memoryTransaction)
	if !ok || tx.store != s {
		return nil, nil
	}
	if _, active := s.transactions[tx]; !active {
		return nil, ErrTransactionDone
	}

	return tx, nil
}

// target returns the storage writes should go to: the staged rows of the context's transaction or
// the committed rows. The caller must hold s.mu.
func (s *memoryStore) target(ctx context.Context) (*memoryStorage, error) {
	tx, err := s.transactionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		return tx.staged, nil
	}

	return s.committed, nil
}

func (s *memoryStore) AddRequestEntry(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	storage, err := s.target(ctx)
	if err != nil {
		return err
	}
	storage.requests[uuid.New().String()] = now()

	return nil
}

func (s *memoryStore) RegisterBadge(ctx context.Context, accountName, projectName string) (Registration, error) {
	if err := validateProject(accountName, projectName); err != nil {
		return Registration{}, err
	}

	var reg Registration
	err := WithTransaction(ctx, s, func(ctx context.Context) error {
		var err error
		reg, err = s.stageBadge(ctx, accountName, projectName)

		return err
	})
	if err != nil {
		return Registration{}, err
	}

	return reg, nil
}

// stageBadge writes a new badge, and its project when unknown, to the storage targeted by ctx.
func (s *memoryStore) stageBadge(ctx context.Context, accountName, projectName string) (Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	storage, err := s.target(ctx)
	if err != nil {
		return Registration{}, err
	}

	key := projectKey{accountName: accountName, projectName: projectName}
	project, exists := s.committed.projects[key]
	if !exists {
		project, exists = storage.projects[key]
	}
	if !exists {
		project = projectRow{id: uuid.New().String(), dateTime: now()}
		storage.projects[key] = project
	}

	reg := Registration{
		BadgeIdentifier: newBadgeIdentifier(),
		AccountName:     accountName,
		ProjectName:     projectName,
		Created:         now(),
	}
	storage.badges[reg.BadgeIdentifier] = badgeRow{projectID: project.id, created: reg.Created}

	return reg, nil
}

func (s *memoryStore) Summary(ctx context.Context) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Summary{
		Requests: len(s.committed.requests),
		Badges:   len(s.committed.badges),
		Projects: len(s.committed.projects),
	}, nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.transactions) > 0 {
		return errors.New("statistics store closed with open transactions")
	}

	return nil
}
