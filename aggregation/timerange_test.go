package aggregation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

func tx(id uint64, txType string, amount int64, date time.Time) models.Transaction {
	return models.Transaction{
		ID:     id,
		Type:   txType,
		Amount: decimal.NewFromInt(amount),
		Date:   date,
	}
}

func TestFilterByTimeRangeSevenDays(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(1, types.TypeExpense, 10, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)),
		tx(2, types.TypeExpense, 10, time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC)),
		tx(3, types.TypeIncome, 10, time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)),
		tx(4, types.TypeIncome, 10, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)),
	}

	filtered := FilterByTimeRange(transactions, types.Range7Days, now, time.UTC, nil, nil)

	// [D-6, D] inclusive: 03-09 through 03-15, independent of time of day.
	assert.Len(t, filtered, 2)
	assert.Equal(t, uint64(2), filtered[0].ID)
	assert.Equal(t, uint64(3), filtered[1].ID)
}

func TestFilterByTimeRangeToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(1, types.TypeExpense, 10, time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)),
		tx(2, types.TypeExpense, 10, time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)),
	}

	filtered := FilterByTimeRange(transactions, types.RangeToday, now, time.UTC, nil, nil)
	assert.Len(t, filtered, 1)
	assert.Equal(t, uint64(1), filtered[0].ID)

	filtered = FilterByTimeRange(transactions, types.RangeYesterday, now, time.UTC, nil, nil)
	assert.Len(t, filtered, 1)
	assert.Equal(t, uint64(2), filtered[0].ID)
}

func TestFilterByTimeRangeCustomInclusive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 2, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(1, types.TypeExpense, 10, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		tx(2, types.TypeExpense, 10, time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)),
		tx(3, types.TypeExpense, 10, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	filtered := FilterByTimeRange(transactions, types.RangeCustom, now, time.UTC, &start, &end)

	// Bounds are calendar dates; time-of-day on both sides is stripped.
	assert.Len(t, filtered, 2)
}

func TestFilterByTimeRangeIsPure(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		tx(1, types.TypeExpense, 10, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	first := FilterByTimeRange(transactions, types.Range30Days, now, time.UTC, nil, nil)
	second := FilterByTimeRange(transactions, types.Range30Days, now, time.UTC, nil, nil)

	assert.Equal(t, first, second)
	assert.Len(t, transactions, 1)
}
