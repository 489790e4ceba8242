package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

func TestComputeMonthlyFinancials(t *testing.T) {
	transactions := []models.Transaction{
		tx(1, types.TypeIncome, 1000, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		tx(2, types.TypeExpense, 300, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		tx(3, types.TypeIncome, 500, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)),
		tx(4, types.TypeExpense, 200, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		tx(5, types.TypeExpense, 100, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	february := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	result := ComputeMonthlyFinancials(transactions, february, time.UTC)

	assert.Len(t, result.MonthTransactions, 2)
	assert.Equal(t, "500", result.Income.String())
	assert.Equal(t, "200", result.Expenses.String())
	// Prior balance 1000-300=700, plus February net 300.
	assert.Equal(t, "1000", result.AccumulatedBalance.String())
}

func TestComputeMonthlyFinancialsEmptyMonth(t *testing.T) {
	transactions := []models.Transaction{
		tx(1, types.TypeIncome, 50, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
	}

	january := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	result := ComputeMonthlyFinancials(transactions, january, time.UTC)

	assert.Len(t, result.MonthTransactions, 0)
	assert.True(t, result.Income.IsZero())
	assert.True(t, result.Expenses.IsZero())
	assert.Equal(t, "50", result.AccumulatedBalance.String())
}

func TestComputeMonthlyFinancialsIsPure(t *testing.T) {
	transactions := []models.Transaction{
		tx(1, types.TypeIncome, 10, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		tx(2, types.TypeExpense, 4, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	}

	january := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := ComputeMonthlyFinancials(transactions, january, time.UTC)
	second := ComputeMonthlyFinancials(transactions, january, time.UTC)

	assert.Equal(t, first.Income.String(), second.Income.String())
	assert.Equal(t, first.Expenses.String(), second.Expenses.String())
	assert.Equal(t, first.AccumulatedBalance.String(), second.AccumulatedBalance.String())
}

func TestSignedContribution(t *testing.T) {
	expense := tx(1, types.TypeExpense, 25, time.Now())
	income := tx(2, types.TypeIncome, 25, time.Now())

	assert.Equal(t, "-25", expense.SignedAmount().String())
	assert.Equal(t, "25", income.SignedAmount().String())
}
