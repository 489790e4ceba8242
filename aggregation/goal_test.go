package aggregation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

func catTx(id uint64, txType string, amount int64, categoryID uint64, date time.Time) models.Transaction {
	transaction := tx(id, txType, amount, date)
	transaction.CategoryID = &categoryID
	return transaction
}

func TestComputeGoalProgressExpenseExceeded(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Food", Type: types.TypeExpense},
		{ID: 2, Name: "Transport", Type: types.TypeExpense},
	}

	goal := models.Goal{
		Name:         "Food - Janeiro",
		Type:         types.TypeExpense,
		TargetAmount: decimal.NewFromInt(500),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	transactions := []models.Transaction{
		catTx(1, types.TypeExpense, 100, 1, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		catTx(2, types.TypeExpense, 450, 1, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		catTx(3, types.TypeExpense, 50, 2, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
	}

	progress := ComputeGoalProgress(goal, transactions, categories, time.UTC)

	assert.Equal(t, "550", progress.ActualAmount.String())
	assert.True(t, progress.IsExceeded)
	assert.False(t, progress.IsAchieved)
	assert.Equal(t, int64(100), progress.ProgressPercent)
}

func TestComputeGoalProgressIncomeAchieved(t *testing.T) {
	categories := []models.Category{
		{ID: 3, Name: "Salary", Type: types.TypeIncome},
	}

	categoryID := uint64(3)
	goal := models.Goal{
		Name:         "Salary - Q1",
		Type:         types.TypeIncome,
		CategoryID:   &categoryID,
		TargetAmount: decimal.NewFromInt(1000),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	transactions := []models.Transaction{
		catTx(1, types.TypeIncome, 600, 3, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		catTx(2, types.TypeIncome, 500, 3, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)),
	}

	progress := ComputeGoalProgress(goal, transactions, categories, time.UTC)

	assert.Equal(t, "1100", progress.ActualAmount.String())
	assert.True(t, progress.IsAchieved)
	assert.False(t, progress.IsExceeded)
	assert.Equal(t, int64(100), progress.ProgressPercent)
}

func TestComputeGoalProgressWindowInclusive(t *testing.T) {
	categories := []models.Category{{ID: 1, Name: "Food"}}

	goal := models.Goal{
		Name:         "Food - Janeiro",
		Type:         types.TypeExpense,
		TargetAmount: decimal.NewFromInt(500),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	transactions := []models.Transaction{
		catTx(1, types.TypeExpense, 10, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		catTx(2, types.TypeExpense, 20, 1, time.Date(2024, 1, 31, 22, 0, 0, 0, time.UTC)),
		catTx(3, types.TypeExpense, 40, 1, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	progress := ComputeGoalProgress(goal, transactions, categories, time.UTC)

	assert.Equal(t, "30", progress.ActualAmount.String())
}

func TestComputeGoalProgressAccountBalance(t *testing.T) {
	accountID := uint64(7)
	goal := models.Goal{
		Name:         "Reserva",
		Type:         types.TypeIncome,
		AccountID:    &accountID,
		TargetAmount: decimal.NewFromInt(200),
	}

	other := uint64(8)
	transactions := []models.Transaction{
		tx(1, types.TypeIncome, 300, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		tx(2, types.TypeExpense, 50, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	}
	transactions[0].AccountID = &accountID
	transactions[1].AccountID = &accountID
	transactions = append(transactions, tx(3, types.TypeIncome, 999, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))
	transactions[2].AccountID = &other

	progress := ComputeGoalProgress(goal, transactions, nil, time.UTC)

	// Account goals report the raw account balance.
	assert.Equal(t, "250", progress.ActualAmount.String())
	assert.True(t, progress.IsAchieved)
	assert.Equal(t, int64(100), progress.ProgressPercent)
}

func TestComputeGoalProgressUnknownCategory(t *testing.T) {
	goal := models.Goal{
		Name:         "Viagem - Julho",
		Type:         types.TypeExpense,
		TargetAmount: decimal.NewFromInt(100),
	}

	progress := ComputeGoalProgress(goal, nil, nil, time.UTC)

	assert.True(t, progress.ActualAmount.IsZero())
	assert.False(t, progress.IsExceeded)
	assert.Equal(t, int64(0), progress.ProgressPercent)
}
