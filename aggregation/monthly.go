package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

type MonthlyFinancials struct {
	MonthTransactions  []models.Transaction `json:"month_transactions"`
	Income             decimal.Decimal      `json:"income"`
	Expenses           decimal.Decimal      `json:"expenses"`
	AccumulatedBalance decimal.Decimal      `json:"accumulated_balance"`
}

// ComputeMonthlyFinancials sums the given month's income and expenses and
// carries the signed balance of everything dated strictly before the
// month's first day into AccumulatedBalance, plus the month's own net.
// Recomputed from the full list on every call; no incremental cache.
func ComputeMonthlyFinancials(transactions []models.Transaction, month time.Time, loc *time.Location) MonthlyFinancials {
	first := time.Date(month.In(loc).Year(), month.In(loc).Month(), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	result := MonthlyFinancials{
		MonthTransactions:  []models.Transaction{},
		Income:             decimal.Zero,
		Expenses:           decimal.Zero,
		AccumulatedBalance: decimal.Zero,
	}

	for _, transaction := range transactions {
		date := DateOnly(transaction.Date, loc)

		if date.Before(first) {
			result.AccumulatedBalance = result.AccumulatedBalance.Add(transaction.SignedAmount())
			continue
		}

		if !date.Before(next) {
			continue
		}

		result.MonthTransactions = append(result.MonthTransactions, transaction)

		if transaction.Type == types.TypeIncome {
			result.Income = result.Income.Add(transaction.Amount)
		} else {
			result.Expenses = result.Expenses.Add(transaction.Amount)
		}
	}

	result.AccumulatedBalance = result.AccumulatedBalance.
		Add(result.Income).
		Sub(result.Expenses)

	return result
}
