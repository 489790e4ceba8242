package store

import (
	"sync"
	"time"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/granaflow/granaflow/aggregation"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

// dateKey orders the transaction index by calendar position, ties broken
// by row id so the key stays unique.
type dateKey struct {
	unix int64
	id   uint64
}

// Comparator orders dateKeys ascending.
func Comparator(a, b interface{}) int {
	ka := a.(dateKey)
	kb := b.(dateKey)

	switch {
	case ka.unix < kb.unix:
		return -1
	case ka.unix > kb.unix:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

// Store holds the current snapshot for one session. Transitions go
// through Apply; reads take the snapshot by value. The red-black tree
// keeps transactions date-ordered so every derived view reads them
// ascending without re-sorting.
type Store struct {
	mu sync.RWMutex

	loc *time.Location
	now func() time.Time

	index *rbt.Tree
	keys  map[uint64]dateKey

	snapshot Snapshot
}

func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}

	return &Store{
		loc:   loc,
		now:   time.Now,
		index: rbt.NewWith(Comparator),
		keys:  make(map[uint64]dateKey),
		snapshot: Snapshot{
			Transactions:          []models.Transaction{},
			Categories:            []models.Category{},
			Goals:                 []models.Goal{},
			ScheduledTransactions: []models.ScheduledTransaction{},
			FilteredTransactions:  []models.Transaction{},
			TimeRange:             types.RangeMonth,
			IsLoading:             true,
		},
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

func (s *Store) Location() *time.Location {
	return s.loc
}

// Apply runs one reducer transition and returns the new snapshot.
// Actions are applied in arrival order with no version check: the most
// recently applied action wins, even when a stale refetch lands after a
// fresher direct update.
func (s *Store) Apply(action Action) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := reduce(s.snapshot, action)

	switch action.Type {
	case ActionLoadTransactions:
		s.reindex(action.Transactions)
	case ActionAddTransaction, ActionUpdateTransaction:
		if action.Transaction != nil {
			s.reinsert(*action.Transaction)
		}
	case ActionDeleteTransaction:
		s.remove(action.ID)
	}

	if touchesTransactions(action.Type) {
		next.Transactions = s.ordered()
	}

	next.FilteredTransactions = aggregation.FilterByTimeRange(
		next.Transactions, next.TimeRange, s.now(), s.loc, next.CustomStart, next.CustomEnd)

	next.Version = s.snapshot.Version + 1
	s.snapshot = next

	return next
}

func touchesTransactions(t ActionType) bool {
	switch t {
	case ActionLoadTransactions, ActionAddTransaction, ActionUpdateTransaction, ActionDeleteTransaction:
		return true
	default:
		return false
	}
}

func (s *Store) reindex(transactions []models.Transaction) {
	s.index.Clear()
	s.keys = make(map[uint64]dateKey, len(transactions))

	for _, transaction := range transactions {
		s.reinsert(transaction)
	}
}

func (s *Store) reinsert(transaction models.Transaction) {
	if old, found := s.keys[transaction.ID]; found {
		s.index.Remove(old)
	}

	key := dateKey{unix: transaction.Date.Unix(), id: transaction.ID}
	s.keys[transaction.ID] = key
	s.index.Put(key, transaction)
}

func (s *Store) remove(id uint64) {
	if key, found := s.keys[id]; found {
		s.index.Remove(key)
		delete(s.keys, id)
	}
}

func (s *Store) ordered() []models.Transaction {
	transactions := make([]models.Transaction, 0, s.index.Size())
	for it := s.index.Iterator(); it.Next(); {
		transactions = append(transactions, it.Value().(models.Transaction))
	}

	return transactions
}
