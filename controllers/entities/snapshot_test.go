package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

func TestTransactionToEntityHidesValues(t *testing.T) {
	transaction := models.Transaction{
		ID:     1,
		Type:   types.TypeExpense,
		Amount: decimal.NewFromInt(120),
		Date:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	visible := TransactionToEntity(transaction, false)
	assert.Equal(t, "120", visible.Amount.String())
	assert.Equal(t, "2024-03-10", visible.Date)

	masked := TransactionToEntity(transaction, true)
	assert.True(t, masked.Amount.IsZero())
}

func TestScheduledToEntityHidesValues(t *testing.T) {
	item := models.ScheduledTransaction{
		ID:            5,
		Type:          types.TypeExpense,
		Amount:        decimal.NewFromInt(80),
		ScheduledDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Recurrence:    types.RecurrenceMonthly,
		Status:        types.StatusPending,
		Situacao:      types.SituacaoAtivo,
	}

	visible := ScheduledToEntity(item, false)
	assert.Equal(t, "80", visible.Amount.String())
	assert.Equal(t, "2024-05-01", visible.ScheduledDate)

	masked := ScheduledToEntity(item, true)
	assert.True(t, masked.Amount.IsZero())
	assert.Equal(t, types.StatusPending, masked.Status)
}

func TestScheduledListToEntityMasksEveryRow(t *testing.T) {
	items := []models.ScheduledTransaction{
		{ID: 1, Type: types.TypeExpense, Amount: decimal.NewFromInt(10), ScheduledDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Type: types.TypeIncome, Amount: decimal.NewFromInt(20), ScheduledDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
	}

	masked := ScheduledListToEntity(items, true)

	assert.Len(t, masked, 2)
	for _, entity := range masked {
		assert.True(t, entity.Amount.IsZero())
	}
}
