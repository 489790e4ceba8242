package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/granaflow/granaflow/types"
)

type Goal struct {
	ID           uint64                `json:"id" gorm:"primaryKey"`
	UserID       uint64                `json:"user_id"`
	Name         string                `json:"name"`
	Type         types.TransactionType `json:"type"`
	TargetAmount decimal.Decimal       `json:"target_amount" validate:"ValidateTargetAmount"`
	// CurrentAmount is a cache. It is never authored directly after
	// creation; the aggregation engine recomputes it on every write that
	// touches the goal. Stale between writes, never authoritative.
	CurrentAmount decimal.Decimal `json:"current_amount"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Deadline      *time.Time      `json:"deadline"`
	CategoryID    *uint64         `json:"category_id"`
	AccountID     *uint64         `json:"account_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (g Goal) ValidateTargetAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// CategoryNameFromTitle extracts the target category from a goal named
// "<Category> - <Period>". Legacy linkage kept for rows that carry no
// category_id; the FK wins when present.
func (g *Goal) CategoryNameFromTitle() string {
	name, _, found := strings.Cut(g.Name, " - ")
	if !found {
		return g.Name
	}

	return strings.TrimSpace(name)
}
