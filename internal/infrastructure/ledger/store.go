// Package ledger implements the process-wide ledger store: products,
// customers, invoices and stock movements held in memory and persisted as
// local JSON snapshot partitions.
//
// Mutations run against a clone of the state that is swapped in only when
// the whole operation succeeds, so a failing multi-step commit (for example
// an invoice that runs out of stock on its third line) leaves nothing
// applied. Readers always observe either the state before a mutation or the
// state after it, never an intermediate one.
//
// Durability is explicit: mutations return once memory is updated and mark
// the affected partition dirty; Flush writes dirty partitions to disk. The
// caller decides when to pay for the write.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// Store is the single authoritative holder of ledger state.
type Store struct {
	mu        sync.RWMutex
	st        *state
	dir       string
	dirtyData bool
	dirtyAuth bool
}

// Open loads the snapshot partitions from dir (missing files mean an empty
// ledger) and returns a ready store.
func Open(dir string) (*Store, error) {
	st, err := loadState(dir)
	if err != nil {
		return nil, fmt.Errorf("ledger: load snapshots: %w", err)
	}
	return &Store{st: st, dir: dir}, nil
}

// update clones the current state, applies fn to the clone and swaps it in
// when fn succeeds. On error the clone is discarded untouched.
func (s *Store) update(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.st.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.st = next
	s.dirtyData = true
	return nil
}

// updateAuth is update for the auth partition.
func (s *Store) updateAuth(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.st.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.st = next
	s.dirtyAuth = true
	return nil
}

// view runs fn with read access to the current state.
func (s *Store) view(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// Run executes fn as one all-or-nothing inventory transaction. The context
// is checked once up front; once the mutation starts it runs to completion.
func (s *Store) Run(
	ctx context.Context,
	fn func(products repository.ProductRepository, movements repository.StockMovementRepository) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.update(func(st *state) error {
		return fn(txProducts{st}, txMovements{st})
	})
}

// RunBilling executes fn as one all-or-nothing billing transaction covering
// stock, customers and invoices.
func (s *Store) RunBilling(
	ctx context.Context,
	fn func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		customers repository.CustomerRepository,
		invoices repository.InvoiceRepository,
	) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.update(func(st *state) error {
		return fn(txProducts{st}, txMovements{st}, txCustomers{st}, txInvoices{st})
	})
}

// Products returns the live product repository.
func (s *Store) Products() repository.ProductRepository { return storeProducts{s} }

// Customers returns the live customer repository.
func (s *Store) Customers() repository.CustomerRepository { return storeCustomers{s} }

// Invoices returns the live invoice repository.
func (s *Store) Invoices() repository.InvoiceRepository { return storeInvoices{s} }

// Movements returns the live stock movement repository.
func (s *Store) Movements() repository.StockMovementRepository { return storeMovements{s} }

// Users returns the live user repository (auth partition).
func (s *Store) Users() repository.UserRepository { return storeUsers{s} }

// Analytics returns the read-only aggregation queries.
func (s *Store) Analytics() repository.AnalyticsRepository { return storeAnalytics{s} }

// Dirty reports whether any partition has unflushed changes.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirtyData || s.dirtyAuth
}

// Flush writes dirty partitions to disk. A partition stays dirty if its
// write fails, so the next Flush retries it.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirtyData {
		if err := writeDataSnapshot(s.dir, s.st); err != nil {
			return fmt.Errorf("ledger: flush data partition: %w", err)
		}
		s.dirtyData = false
	}
	if s.dirtyAuth {
		if err := writeAuthSnapshot(s.dir, s.st); err != nil {
			return fmt.Errorf("ledger: flush auth partition: %w", err)
		}
		s.dirtyAuth = false
	}
	return nil
}

// NextInvoiceNumberPreview returns the number the next commit in the month
// of now would receive, without reserving it.
func (s *Store) NextInvoiceNumberPreview(now time.Time) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := now.Format(invoicePeriodLayout)
	return formatInvoiceNumber(key, s.st.counters[key]+1)
}
