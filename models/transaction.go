package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/granaflow/granaflow/types"
)

type Transaction struct {
	ID            uint64                `json:"id" gorm:"primaryKey"`
	UserID        uint64                `json:"user_id"`
	Type          types.TransactionType `json:"type" validate:"ValidateType"`
	Amount        decimal.Decimal       `json:"amount" validate:"ValidateAmount"`
	CategoryID    *uint64               `json:"category_id"`
	Category      CategorySnapshot      `json:"category" gorm:"-"`
	Date          time.Time             `json:"date"`
	Description   string                `json:"description"`
	GoalID        *uint64               `json:"goal_id"`
	AccountID     *uint64               `json:"account_id"`
	CreatorName   string                `json:"creator_name"`
	Phone         string                `json:"phone"`
	ReferenceCode *int64                `json:"reference_code"`
	CreatedAt     time.Time             `json:"created_at"`
}

func (t Transaction) ValidateType(val types.TransactionType) bool {
	return val == types.TypeIncome || val == types.TypeExpense
}

// Amounts are stored positive; the sign is implied by the type.
func (t Transaction) ValidateAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// SignedAmount is the transaction's contribution to any balance:
// +amount for income, -amount for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == types.TypeExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

func (t Transaction) RecordID() uint64 {
	return t.ID
}

func (t Transaction) RecordDate() int64 {
	return t.Date.Unix()
}

// AttachCategory fills the denormalized category snapshot from the given
// category set, keyed by the FK.
func (t *Transaction) AttachCategory(categories map[uint64]Category) {
	if t.CategoryID == nil {
		return
	}

	if category, found := categories[*t.CategoryID]; found {
		t.Category = CategorySnapshot{
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
		}
	}
}
