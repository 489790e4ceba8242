package gateway

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

func TestTransactionParamsValidation(t *testing.T) {
	categoryID := uint64(1)
	params := TransactionParams{
		Type:       types.TypeExpense,
		Amount:     decimal.NewFromInt(50),
		CategoryID: &categoryID,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Empty(t, Validate(params))
}

func TestTransactionParamsRejectsMissingCategory(t *testing.T) {
	params := TransactionParams{
		Type:   types.TypeExpense,
		Amount: decimal.NewFromInt(50),
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	fields := Validate(params)
	assert.Contains(t, fields, "transaction.missing_category")
}

func TestTransactionParamsAcceptsCategoryOverride(t *testing.T) {
	params := TransactionParams{
		Type:         types.TypeIncome,
		Amount:       decimal.NewFromInt(50),
		CategoryName: "Freelance",
		Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Empty(t, Validate(params))
}

func TestTransactionParamsRejectsNonPositiveAmount(t *testing.T) {
	categoryID := uint64(1)
	params := TransactionParams{
		Type:       types.TypeExpense,
		Amount:     decimal.NewFromInt(-10),
		CategoryID: &categoryID,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	fields := Validate(params)
	assert.Contains(t, fields, "transaction.non_positive_amount")
}

func TestTransactionParamsRejectsBadType(t *testing.T) {
	categoryID := uint64(1)
	params := TransactionParams{
		Type:       "transfer",
		Amount:     decimal.NewFromInt(10),
		CategoryID: &categoryID,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	fields := Validate(params)
	assert.NotEmpty(t, fields)
}

func TestScheduledParamsReminderForcesZeroAmount(t *testing.T) {
	member := &models.Member{ID: 1, UID: "U1"}

	params := ScheduledParams{
		Type:          types.TypeReminder,
		Amount:        decimal.NewFromInt(999),
		Description:   "pagar aluguel",
		ScheduledDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Empty(t, Validate(params))

	scheduled := params.BuildScheduledTransaction(member)

	// Caller input is ignored for reminders.
	assert.True(t, scheduled.Amount.IsZero())
	assert.Equal(t, types.RecurrenceOnce, scheduled.Recurrence)
	assert.Equal(t, types.StatusPending, scheduled.Status)
	assert.Equal(t, types.SituacaoAtivo, scheduled.Situacao)
}

func TestScheduledParamsRejectsMissingAmount(t *testing.T) {
	// An omitted amount must not slip through as an implicit zero for
	// anything but a reminder.
	params := ScheduledParams{
		Type:          types.TypeExpense,
		ScheduledDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	fields := Validate(params)
	assert.Contains(t, fields, "scheduled_transaction.non_positive_amount")
}

func TestScheduledParamsRejectsBadRecurrence(t *testing.T) {
	params := ScheduledParams{
		Type:          types.TypeExpense,
		Amount:        decimal.NewFromInt(10),
		ScheduledDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Recurrence:    "fortnightly",
	}

	fields := Validate(params)
	assert.Contains(t, fields, "scheduled_transaction.invalid_recurrence")
}

func TestBuildTransactionCarriesMemberScope(t *testing.T) {
	member := &models.Member{ID: 77, UID: "U77"}
	categoryID := uint64(3)

	params := TransactionParams{
		Type:        types.TypeExpense,
		Amount:      decimal.NewFromInt(10),
		CategoryID:  &categoryID,
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatorName: "Maria",
	}

	transaction := params.BuildTransaction(member)

	assert.Equal(t, uint64(77), transaction.UserID)
	assert.Equal(t, "Maria", transaction.CreatorName)
	assert.Nil(t, transaction.ReferenceCode)
}
