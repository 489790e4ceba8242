package recurrence

import (
	"sort"

	"gorm.io/gorm"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

// AllocateReferenceCode draws the next series-linking code from the
// store's sequence. The sequence is the race-safety boundary: concurrent
// clients never observe the same value.
func AllocateReferenceCode(db *gorm.DB) (int64, error) {
	var code int64

	err := db.Raw("SELECT nextval('reference_codes')").Scan(&code).Error
	if err != nil {
		return 0, &types.RemoteError{Op: "nextval reference_codes", Err: err}
	}

	return code, nil
}

// FindScheduledSeries returns every scheduled transaction sharing the
// reference code, ascending by date.
func FindScheduledSeries(db *gorm.DB, userID uint64, code int64) ([]models.ScheduledTransaction, error) {
	var series []models.ScheduledTransaction

	err := db.Where("user_id = ? AND reference_code = ?", userID, code).
		Order("scheduled_date asc, id asc").
		Find(&series).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select series", Err: err}
	}

	return series, nil
}

// FindTransactionSeries returns every transaction sharing the reference
// code, ascending by date.
func FindTransactionSeries(db *gorm.DB, userID uint64, code int64) ([]models.Transaction, error) {
	var series []models.Transaction

	err := db.Where("user_id = ? AND reference_code = ?", userID, code).
		Order("date asc, id asc").
		Find(&series).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select series", Err: err}
	}

	return series, nil
}

// Record is one member of a series, as seen by scope resolution.
type Record interface {
	RecordID() uint64
	RecordDate() int64
}

// ResolveScope turns a scope selector into the concrete, deduplicated set
// of affected records, ascending by date. "current" and "single" touch
// only the edited record; "future" adds every sibling dated on or after
// it; "all" takes the whole series.
func ResolveScope(scope string, current Record, series []Record) []Record {
	var resolved []Record

	switch scope {
	case types.ScopeFuture:
		resolved = append(resolved, current)
		for _, record := range series {
			if record.RecordDate() >= current.RecordDate() {
				resolved = append(resolved, record)
			}
		}
	case types.ScopeAll, types.DeleteAll:
		resolved = append(resolved, series...)
		resolved = append(resolved, current)
	default:
		// current / single
		return []Record{current}
	}

	return dedupSorted(resolved)
}

func dedupSorted(records []Record) []Record {
	seen := make(map[uint64]bool, len(records))
	unique := records[:0]
	for _, record := range records {
		if seen[record.RecordID()] {
			continue
		}
		seen[record.RecordID()] = true
		unique = append(unique, record)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].RecordDate() != unique[j].RecordDate() {
			return unique[i].RecordDate() < unique[j].RecordDate()
		}
		return unique[i].RecordID() < unique[j].RecordID()
	})

	return unique
}

func ScheduledRecords(items []models.ScheduledTransaction) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, item)
	}

	return records
}

func TransactionRecords(items []models.Transaction) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, item)
	}

	return records
}
