package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/granaflow/granaflow/aggregation"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/store"
)

// hidden replaces amounts when the session has hide-values switched on.
var hidden = decimal.Zero

// TransactionEntity is a transaction as served to consumers, honoring
// the hide-values flag.
type TransactionEntity struct {
	ID            uint64                  `json:"id"`
	Type          string                  `json:"type"`
	Amount        decimal.Decimal         `json:"amount"`
	CategoryID    *uint64                 `json:"category_id"`
	Category      models.CategorySnapshot `json:"category"`
	Date          string                  `json:"date"`
	Description   string                  `json:"description"`
	GoalID        *uint64                 `json:"goal_id"`
	AccountID     *uint64                 `json:"account_id"`
	CreatorName   string                  `json:"creator_name"`
	ReferenceCode *int64                  `json:"reference_code"`
	CreatedAt     time.Time               `json:"created_at"`
}

func TransactionToEntity(transaction models.Transaction, hideValues bool) TransactionEntity {
	amount := transaction.Amount
	if hideValues {
		amount = hidden
	}

	return TransactionEntity{
		ID:            transaction.ID,
		Type:          transaction.Type,
		Amount:        amount,
		CategoryID:    transaction.CategoryID,
		Category:      transaction.Category,
		Date:          transaction.Date.Format("2006-01-02"),
		Description:   transaction.Description,
		GoalID:        transaction.GoalID,
		AccountID:     transaction.AccountID,
		CreatorName:   transaction.CreatorName,
		ReferenceCode: transaction.ReferenceCode,
		CreatedAt:     transaction.CreatedAt,
	}
}

func TransactionsToEntity(transactions []models.Transaction, hideValues bool) []TransactionEntity {
	result := make([]TransactionEntity, 0, len(transactions))
	for _, transaction := range transactions {
		result = append(result, TransactionToEntity(transaction, hideValues))
	}

	return result
}

type ScheduledEntity struct {
	ID            uint64                  `json:"id"`
	Type          string                  `json:"type"`
	Amount        decimal.Decimal         `json:"amount"`
	CategoryID    *uint64                 `json:"category_id"`
	Category      models.CategorySnapshot `json:"category"`
	Description   string                  `json:"description"`
	ScheduledDate string                  `json:"scheduled_date"`
	Recurrence    string                  `json:"recurrence"`
	Status        string                  `json:"status"`
	Situacao      string                  `json:"situacao"`
	ReferenceCode *int64                  `json:"reference_code"`
	GoalID        *uint64                 `json:"goal_id"`
	CreatedAt     time.Time               `json:"created_at"`
}

func ScheduledToEntity(item models.ScheduledTransaction, hideValues bool) ScheduledEntity {
	amount := item.Amount
	if hideValues {
		amount = hidden
	}

	return ScheduledEntity{
		ID:            item.ID,
		Type:          item.Type,
		Amount:        amount,
		CategoryID:    item.CategoryID,
		Category:      item.Category,
		Description:   item.Description,
		ScheduledDate: item.ScheduledDate.Format("2006-01-02"),
		Recurrence:    item.Recurrence,
		Status:        item.Status,
		Situacao:      item.Situacao,
		ReferenceCode: item.ReferenceCode,
		GoalID:        item.GoalID,
		CreatedAt:     item.CreatedAt,
	}
}

func ScheduledListToEntity(items []models.ScheduledTransaction, hideValues bool) []ScheduledEntity {
	result := make([]ScheduledEntity, 0, len(items))
	for _, item := range items {
		result = append(result, ScheduledToEntity(item, hideValues))
	}

	return result
}

type GoalEntity struct {
	ID              uint64          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	CategoryID      *uint64         `json:"category_id"`
	AccountID       *uint64         `json:"account_id"`
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	ProgressPercent int64           `json:"progress_percent"`
	IsExceeded      bool            `json:"is_exceeded"`
	IsAchieved      bool            `json:"is_achieved"`
}

func GoalToEntity(goal models.Goal, progress aggregation.GoalProgress, hideValues bool) GoalEntity {
	entity := GoalEntity{
		ID:              goal.ID,
		Name:            goal.Name,
		Type:            goal.Type,
		TargetAmount:    goal.TargetAmount,
		CurrentAmount:   goal.CurrentAmount,
		StartDate:       goal.StartDate.Format("2006-01-02"),
		EndDate:         goal.EndDate.Format("2006-01-02"),
		CategoryID:      goal.CategoryID,
		AccountID:       goal.AccountID,
		ActualAmount:    progress.ActualAmount,
		ProgressPercent: progress.ProgressPercent,
		IsExceeded:      progress.IsExceeded,
		IsAchieved:      progress.IsAchieved,
	}

	if hideValues {
		entity.TargetAmount = hidden
		entity.CurrentAmount = hidden
		entity.ActualAmount = hidden
	}

	return entity
}

type SnapshotEntity struct {
	TimeRange            string              `json:"time_range"`
	CustomStart          *time.Time          `json:"custom_start"`
	CustomEnd            *time.Time          `json:"custom_end"`
	HideValues           bool                `json:"hide_values"`
	Version              uint64              `json:"version"`
	IsLoading            bool                `json:"is_loading"`
	Error                string              `json:"error"`
	Transactions         []TransactionEntity `json:"transactions"`
	FilteredTransactions []TransactionEntity `json:"filtered_transactions"`
}

func SnapshotToEntity(snapshot store.Snapshot) SnapshotEntity {
	return SnapshotEntity{
		TimeRange:            snapshot.TimeRange,
		CustomStart:          snapshot.CustomStart,
		CustomEnd:            snapshot.CustomEnd,
		HideValues:           snapshot.HideValues,
		Version:              snapshot.Version,
		IsLoading:            snapshot.IsLoading,
		Error:                snapshot.Error,
		Transactions:         TransactionsToEntity(snapshot.Transactions, snapshot.HideValues),
		FilteredTransactions: TransactionsToEntity(snapshot.FilteredTransactions, snapshot.HideValues),
	}
}
