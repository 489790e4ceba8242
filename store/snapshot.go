package store

import (
	"time"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

// Snapshot is the immutable view of one session's state. Apply never
// mutates a snapshot in place; consumers detect change by Version.
type Snapshot struct {
	Transactions          []models.Transaction          `json:"transactions"`
	Categories            []models.Category             `json:"categories"`
	Goals                 []models.Goal                 `json:"goals"`
	ScheduledTransactions []models.ScheduledTransaction `json:"scheduled_transactions"`
	TimeRange             types.TimeRange               `json:"time_range"`
	CustomStart           *time.Time                    `json:"custom_start"`
	CustomEnd             *time.Time                    `json:"custom_end"`
	HideValues            bool                          `json:"hide_values"`
	FilteredTransactions  []models.Transaction          `json:"filtered_transactions"`
	IsLoading             bool                          `json:"is_loading"`
	Error                 string                        `json:"error"`
	Version               uint64                        `json:"version"`
}

type ActionType = string

var (
	ActionLoadTransactions        ActionType = "load_transactions"
	ActionAddTransaction          ActionType = "add_transaction"
	ActionUpdateTransaction       ActionType = "update_transaction"
	ActionDeleteTransaction       ActionType = "delete_transaction"
	ActionLoadCategories          ActionType = "load_categories"
	ActionAddCategory             ActionType = "add_category"
	ActionUpdateCategory          ActionType = "update_category"
	ActionDeleteCategory          ActionType = "delete_category"
	ActionLoadGoals               ActionType = "load_goals"
	ActionAddGoal                 ActionType = "add_goal"
	ActionUpdateGoal              ActionType = "update_goal"
	ActionDeleteGoal              ActionType = "delete_goal"
	ActionLoadScheduled           ActionType = "load_scheduled_transactions"
	ActionAddScheduled            ActionType = "add_scheduled_transaction"
	ActionUpdateScheduled         ActionType = "update_scheduled_transaction"
	ActionDeleteScheduled         ActionType = "delete_scheduled_transaction"
	ActionSetTimeRange            ActionType = "set_time_range"
	ActionSetCustomRange          ActionType = "set_custom_range"
	ActionToggleHideValues        ActionType = "toggle_hide_values"
	ActionSetLoading              ActionType = "set_loading"
	ActionSetError                ActionType = "set_error"
)

// Action is one reducer transition. Only the fields the action type
// reads are ever set.
type Action struct {
	Type ActionType

	Transactions []models.Transaction
	Transaction  *models.Transaction

	Categories []models.Category
	Category   *models.Category

	Goals []models.Goal
	Goal  *models.Goal

	Scheduled     []models.ScheduledTransaction
	ScheduledItem *models.ScheduledTransaction

	ID uint64

	TimeRange   types.TimeRange
	CustomStart *time.Time
	CustomEnd   *time.Time

	Loading bool
	Error   string
}
