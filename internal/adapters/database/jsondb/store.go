package jsondb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// document is the full persisted schema. Every mutation rewrites it in one
// piece, so the file is always a complete snapshot.
type document struct {
	Users         []domain.User         `json:"users"`
	Income        []domain.Income       `json:"income"`
	Expenses      []domain.Expense      `json:"expenses"`
	Savings       []domain.Savings      `json:"savings"`
	Loans         []domain.Loan         `json:"loans"`
	Notifications []domain.Notification `json:"notifications"`
}

func emptyDocument() *document {
	return &document{
		Users:         []domain.User{},
		Income:        []domain.Income{},
		Expenses:      []domain.Expense{},
		Savings:       []domain.Savings{},
		Loans:         []domain.Loan{},
		Notifications: []domain.Notification{},
	}
}

// Store is the file-backed record store shared by all repositories. It is
// constructed with an explicit path so tests can point it at a temp file.
type Store struct {
	mu     sync.RWMutex
	path   string
	doc    *document
	logger *slog.Logger
}

// Open loads the store at path, creating it with an empty seed schema when the
// file is missing. A file that fails to parse is renamed aside and replaced
// with the seed schema; callers see the same empty store as on first run.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &Store{path: path, logger: slog.Default()}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) || (err == nil && len(raw) == 0) {
		s.doc = emptyDocument()
		return s.flushLocked()
	}
	if err != nil {
		return fmt.Errorf("failed to read store file: %w", err)
	}

	doc := emptyDocument()
	if uerr := json.Unmarshal(raw, doc); uerr != nil {
		aside := fmt.Sprintf("%s.corrupt.%d", s.path, time.Now().Unix())
		if rerr := os.Rename(s.path, aside); rerr != nil {
			return fmt.Errorf("failed to move corrupt store file aside: %w", rerr)
		}
		s.logger.Warn("Store file failed to parse, moved aside and reseeded",
			slog.String("path", s.path),
			slog.String("moved_to", aside),
			slog.String("error", uerr.Error()))
		s.doc = emptyDocument()
		return s.flushLocked()
	}
	s.doc = doc
	return nil
}

// flushLocked persists the whole document. Callers must hold the write lock
// (or be inside Open, before the store is shared).
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// write runs fn against the document under the write lock and persists the
// result synchronously before returning.
func (s *Store) write(ctx context.Context, fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.flushLocked()
}

// read runs fn against the document under the read lock.
func (s *Store) read(fn func(*document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// Collection names accepted by Clear.
const (
	CollectionUsers         = "users"
	CollectionIncome        = "income"
	CollectionExpenses      = "expenses"
	CollectionSavings       = "savings"
	CollectionLoans         = "loans"
	CollectionNotifications = "notifications"
)

// Clear empties one collection. Unknown names are a no-op.
func (s *Store) Clear(ctx context.Context, collection string) error {
	return s.write(ctx, func(d *document) error {
		switch collection {
		case CollectionUsers:
			d.Users = []domain.User{}
		case CollectionIncome:
			d.Income = []domain.Income{}
		case CollectionExpenses:
			d.Expenses = []domain.Expense{}
		case CollectionSavings:
			d.Savings = []domain.Savings{}
		case CollectionLoans:
			d.Loans = []domain.Loan{}
		case CollectionNotifications:
			d.Notifications = []domain.Notification{}
		}
		return nil
	})
}

// ClearAll resets the store to the empty seed schema.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.write(ctx, func(d *document) error {
		*d = *emptyDocument()
		return nil
	})
}
