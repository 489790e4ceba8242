package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

type GoalProgress struct {
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	ProgressPercent int64           `json:"progress_percent"`
	IsExceeded      bool            `json:"is_exceeded"`
	IsAchieved      bool            `json:"is_achieved"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeGoalProgress measures a goal against the transactions that match
// it. Category goals match by FK when present and otherwise by the
// category name embedded in the goal title, scoped to the goal's
// [start_date, end_date] window, both bounds inclusive. Account goals
// ignore the category and window entirely: the actual amount is the raw
// signed balance of the account.
func ComputeGoalProgress(goal models.Goal, transactions []models.Transaction, categories []models.Category, loc *time.Location) GoalProgress {
	var sum decimal.Decimal

	if goal.AccountID != nil {
		sum = accountBalance(*goal.AccountID, transactions)
	} else {
		sum = categorySum(goal, transactions, categories, loc)
	}

	effective := sum
	if goal.Type == types.TypeExpense {
		effective = sum.Abs()
	}

	progress := GoalProgress{ActualAmount: effective}
	if goal.AccountID != nil {
		progress.ActualAmount = sum
	}

	if goal.TargetAmount.IsPositive() {
		percent := effective.Div(goal.TargetAmount).Mul(oneHundred).Round(0).IntPart()
		if percent > 100 {
			percent = 100
		}
		if percent < 0 {
			percent = 0
		}
		progress.ProgressPercent = percent
	}

	switch goal.Type {
	case types.TypeExpense:
		progress.IsExceeded = sum.Abs().GreaterThan(goal.TargetAmount)
	case types.TypeIncome:
		progress.IsAchieved = sum.GreaterThanOrEqual(goal.TargetAmount)
	}

	return progress
}

func accountBalance(accountID uint64, transactions []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, transaction := range transactions {
		if transaction.AccountID == nil || *transaction.AccountID != accountID {
			continue
		}

		balance = balance.Add(transaction.SignedAmount())
	}

	return balance
}

func categorySum(goal models.Goal, transactions []models.Transaction, categories []models.Category, loc *time.Location) decimal.Decimal {
	categoryID := resolveGoalCategory(goal, categories)
	if categoryID == nil {
		return decimal.Zero
	}

	start := DateOnly(goal.StartDate, loc)
	end := DateOnly(goal.EndDate, loc)

	sum := decimal.Zero
	for _, transaction := range transactions {
		if transaction.CategoryID == nil || *transaction.CategoryID != *categoryID {
			continue
		}

		date := DateOnly(transaction.Date, loc)
		if date.Before(start) || date.After(end) {
			continue
		}

		sum = sum.Add(transaction.SignedAmount())
	}

	return sum
}

func resolveGoalCategory(goal models.Goal, categories []models.Category) *uint64 {
	if goal.CategoryID != nil {
		return goal.CategoryID
	}

	// Title parsing is the legacy linkage ("<Category> - <Period>").
	name := goal.CategoryNameFromTitle()
	for _, category := range categories {
		if category.Name == name {
			id := category.ID
			return &id
		}
	}

	return nil
}
