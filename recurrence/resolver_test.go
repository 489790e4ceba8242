package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

func member(id uint64, date time.Time) models.ScheduledTransaction {
	code := int64(42)
	return models.ScheduledTransaction{
		ID:            id,
		ScheduledDate: date,
		ReferenceCode: &code,
	}
}

func TestResolveScopeFuture(t *testing.T) {
	first := member(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	second := member(2, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	third := member(3, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	series := ScheduledRecords([]models.ScheduledTransaction{first, second, third})

	resolved := ResolveScope(types.ScopeFuture, second, series)

	// The edited member and everything dated on or after it; the January
	// member stays untouched.
	assert.Len(t, resolved, 2)
	assert.Equal(t, uint64(2), resolved[0].RecordID())
	assert.Equal(t, uint64(3), resolved[1].RecordID())
}

func TestResolveScopeAllDeduplicates(t *testing.T) {
	first := member(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	second := member(2, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	series := ScheduledRecords([]models.ScheduledTransaction{first, second})

	resolved := ResolveScope(types.ScopeAll, first, series)

	assert.Len(t, resolved, 2)
	assert.Equal(t, uint64(1), resolved[0].RecordID())
	assert.Equal(t, uint64(2), resolved[1].RecordID())
}

func TestResolveScopeCurrent(t *testing.T) {
	first := member(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	second := member(2, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	series := ScheduledRecords([]models.ScheduledTransaction{first, second})

	resolved := ResolveScope(types.ScopeCurrent, second, series)

	assert.Len(t, resolved, 1)
	assert.Equal(t, uint64(2), resolved[0].RecordID())
}

func TestResolveScopeFutureOrderedAscending(t *testing.T) {
	// Series handed over in arbitrary order still resolves ascending.
	march := member(3, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	january := member(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	february := member(2, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	series := ScheduledRecords([]models.ScheduledTransaction{march, january, february})

	resolved := ResolveScope(types.ScopeFuture, january, series)

	assert.Len(t, resolved, 3)
	assert.Equal(t, uint64(1), resolved[0].RecordID())
	assert.Equal(t, uint64(2), resolved[1].RecordID())
	assert.Equal(t, uint64(3), resolved[2].RecordID())
}
