package store

import (
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

// reduce is the pure transition: it copies what changes and shares the
// rest. The transaction collection itself is rebuilt from the date index
// by the caller, so transaction actions only touch bookkeeping here.
func reduce(prev Snapshot, action Action) Snapshot {
	next := prev
	next.IsLoading = false
	next.Error = ""

	switch action.Type {
	case ActionLoadCategories:
		next.Categories = copyCategories(action.Categories)
	case ActionAddCategory:
		if action.Category != nil {
			next.Categories = append(copyCategories(prev.Categories), *action.Category)
		}
	case ActionUpdateCategory:
		if action.Category != nil {
			categories := copyCategories(prev.Categories)
			for i := range categories {
				if categories[i].ID == action.Category.ID {
					categories[i] = *action.Category
				}
			}
			next.Categories = categories
		}
	case ActionDeleteCategory:
		categories := make([]models.Category, 0, len(prev.Categories))
		for _, category := range prev.Categories {
			if category.ID != action.ID {
				categories = append(categories, category)
			}
		}
		next.Categories = categories

	case ActionLoadGoals:
		next.Goals = copyGoals(action.Goals)
	case ActionAddGoal:
		if action.Goal != nil {
			next.Goals = append(copyGoals(prev.Goals), *action.Goal)
		}
	case ActionUpdateGoal:
		if action.Goal != nil {
			goals := copyGoals(prev.Goals)
			for i := range goals {
				if goals[i].ID == action.Goal.ID {
					goals[i] = *action.Goal
				}
			}
			next.Goals = goals
		}
	case ActionDeleteGoal:
		goals := make([]models.Goal, 0, len(prev.Goals))
		for _, goal := range prev.Goals {
			if goal.ID != action.ID {
				goals = append(goals, goal)
			}
		}
		next.Goals = goals

	case ActionLoadScheduled:
		next.ScheduledTransactions = copyScheduled(action.Scheduled)
	case ActionAddScheduled:
		if action.ScheduledItem != nil {
			next.ScheduledTransactions = append(copyScheduled(prev.ScheduledTransactions), *action.ScheduledItem)
		}
	case ActionUpdateScheduled:
		if action.ScheduledItem != nil {
			scheduled := copyScheduled(prev.ScheduledTransactions)
			for i := range scheduled {
				if scheduled[i].ID == action.ScheduledItem.ID {
					scheduled[i] = *action.ScheduledItem
				}
			}
			next.ScheduledTransactions = scheduled
		}
	case ActionDeleteScheduled:
		scheduled := make([]models.ScheduledTransaction, 0, len(prev.ScheduledTransactions))
		for _, item := range prev.ScheduledTransactions {
			if item.ID != action.ID {
				scheduled = append(scheduled, item)
			}
		}
		next.ScheduledTransactions = scheduled

	case ActionSetTimeRange:
		next.TimeRange = action.TimeRange
		if action.TimeRange != types.RangeCustom {
			next.CustomStart = nil
			next.CustomEnd = nil
		}
	case ActionSetCustomRange:
		next.TimeRange = types.RangeCustom
		next.CustomStart = action.CustomStart
		next.CustomEnd = action.CustomEnd
	case ActionToggleHideValues:
		next.HideValues = !prev.HideValues
	case ActionSetLoading:
		next.IsLoading = action.Loading
	case ActionSetError:
		next.Error = action.Error
	}

	return next
}

func copyCategories(src []models.Category) []models.Category {
	dst := make([]models.Category, len(src))
	copy(dst, src)
	return dst
}

func copyGoals(src []models.Goal) []models.Goal {
	dst := make([]models.Goal, len(src))
	copy(dst, src)
	return dst
}

func copyScheduled(src []models.ScheduledTransaction) []models.ScheduledTransaction {
	dst := make([]models.ScheduledTransaction, len(src))
	copy(dst, src)
	return dst
}
