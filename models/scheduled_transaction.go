package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/granaflow/granaflow/types"
)

type ScheduledTransaction struct {
	ID            uint64                `json:"id" gorm:"primaryKey"`
	UserID        uint64                `json:"user_id"`
	Type          types.TransactionType `json:"type" validate:"ValidateType"`
	Amount        decimal.Decimal       `json:"amount" validate:"ValidateAmount"`
	CategoryID    *uint64               `json:"category_id"`
	Category      CategorySnapshot      `json:"category" gorm:"-"`
	Description   string                `json:"description"`
	ScheduledDate time.Time             `json:"scheduled_date"`
	Recurrence    types.Recurrence      `json:"recurrence" gorm:"default:once"`
	Status        types.ScheduleStatus  `json:"status" gorm:"default:pending"`
	Situacao      types.Situacao        `json:"situacao" gorm:"default:ativo"`
	ReferenceCode *int64                `json:"reference_code"`
	GoalID        *uint64               `json:"goal_id"`
	Phone         string                `json:"phone"`
	CreatedAt     time.Time             `json:"created_at"`
}

func (s ScheduledTransaction) ValidateType(val types.TransactionType) bool {
	return val == types.TypeIncome || val == types.TypeExpense ||
		val == types.TypeReminder || val == types.TypeOutros
}

// Reminders carry no amount; everything else must be positive.
func (s ScheduledTransaction) ValidateAmount(amount decimal.Decimal) bool {
	if s.Type == types.TypeReminder {
		return amount.IsZero()
	}

	return amount.IsPositive()
}

func (s ScheduledTransaction) RecordID() uint64 {
	return s.ID
}

func (s ScheduledTransaction) RecordDate() int64 {
	return s.ScheduledDate.Unix()
}

func (s *ScheduledTransaction) AttachCategory(categories map[uint64]Category) {
	if s.CategoryID == nil {
		return
	}

	if category, found := categories[*s.CategoryID]; found {
		s.Category = CategorySnapshot{
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
		}
	}
}

// NextDate advances a scheduled date by one recurrence step.
func (s *ScheduledTransaction) NextDate(from time.Time) time.Time {
	switch s.Recurrence {
	case types.RecurrenceDaily:
		return from.AddDate(0, 0, 1)
	case types.RecurrenceWeekly:
		return from.AddDate(0, 0, 7)
	case types.RecurrenceMonthly:
		return from.AddDate(0, 1, 0)
	case types.RecurrenceYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from
	}
}
