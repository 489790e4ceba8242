package gateway

import (
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

type TransactionParams struct {
	Type         types.TransactionType `json:"type" form:"type" validate:"required|ValidateType|ValidateCategory"`
	Amount       decimal.Decimal       `json:"amount" form:"amount" validate:"required|ValidateAmount"`
	CategoryID   *uint64               `json:"category_id" form:"category_id"`
	CategoryName string                `json:"category_name" form:"category_name"`
	Date         time.Time             `json:"date" form:"date" validate:"required"`
	Description  string                `json:"description" form:"description"`
	GoalID       *uint64               `json:"goal_id" form:"goal_id"`
	AccountID    *uint64               `json:"account_id" form:"account_id"`
	CreatorName  string                `json:"creator_name" form:"creator_name"`
	Phone        string                `json:"phone" form:"phone"`
}

func (p TransactionParams) Messages() map[string]string {
	invalid_message := "transaction.invalid_{field}"

	return validate.MS{
		"required":         invalid_message,
		"ValidateType":     "transaction.invalid_type",
		"ValidateAmount":   "transaction.non_positive_amount",
		"ValidateCategory": "transaction.missing_category",
	}
}

func (p TransactionParams) ValidateType(val types.TransactionType) bool {
	return val == types.TypeIncome || val == types.TypeExpense
}

func (p TransactionParams) ValidateAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// A category FK or an explicit name override must be present. Attached to
// the Type field so it runs even when CategoryID is nil.
func (p TransactionParams) ValidateCategory(val types.TransactionType) bool {
	return p.CategoryID != nil || p.CategoryName != ""
}

func (p TransactionParams) BuildTransaction(member *models.Member) *models.Transaction {
	return &models.Transaction{
		UserID:      member.ID,
		Type:        p.Type,
		Amount:      p.Amount,
		CategoryID:  p.CategoryID,
		Date:        p.Date,
		Description: p.Description,
		GoalID:      p.GoalID,
		AccountID:   p.AccountID,
		CreatorName: p.CreatorName,
		Phone:       p.Phone,
	}
}

type ScheduledParams struct {
	Type          types.TransactionType `json:"type" form:"type" validate:"required|ValidateType|ValidateAmount"`
	Amount        decimal.Decimal       `json:"amount" form:"amount"`
	CategoryID    *uint64               `json:"category_id" form:"category_id"`
	Description   string                `json:"description" form:"description"`
	ScheduledDate time.Time             `json:"scheduled_date" form:"scheduled_date" validate:"required"`
	Recurrence    types.Recurrence      `json:"recurrence" form:"recurrence" validate:"ValidateRecurrence"`
	Status        types.ScheduleStatus  `json:"status" form:"status" validate:"ValidateStatus"`
	GoalID        *uint64               `json:"goal_id" form:"goal_id"`
	CreatorName   string                `json:"creator_name" form:"creator_name"`
	Phone         string                `json:"phone" form:"phone"`
}

func (p ScheduledParams) Messages() map[string]string {
	invalid_message := "scheduled_transaction.invalid_{field}"

	return validate.MS{
		"required":           invalid_message,
		"ValidateType":       "scheduled_transaction.invalid_type",
		"ValidateAmount":     "scheduled_transaction.non_positive_amount",
		"ValidateRecurrence": "scheduled_transaction.invalid_recurrence",
		"ValidateStatus":     "scheduled_transaction.invalid_status",
	}
}

func (p ScheduledParams) ValidateType(val types.TransactionType) bool {
	return val == types.TypeIncome || val == types.TypeExpense ||
		val == types.TypeReminder || val == types.TypeOutros
}

// Reminders carry no amount; everything else must be positive. Attached
// to the Type field so it runs even when the amount is left out of the
// payload entirely.
func (p ScheduledParams) ValidateAmount(val types.TransactionType) bool {
	if val == types.TypeReminder {
		return true
	}

	return p.Amount.IsPositive()
}

func (p ScheduledParams) ValidateRecurrence(val types.Recurrence) bool {
	switch val {
	case "", types.RecurrenceOnce, types.RecurrenceDaily, types.RecurrenceWeekly,
		types.RecurrenceMonthly, types.RecurrenceYearly:
		return true
	default:
		return false
	}
}

func (p ScheduledParams) ValidateStatus(val types.ScheduleStatus) bool {
	switch val {
	case "", types.StatusPending, types.StatusPaid, types.StatusOverdue, types.StatusUpcoming:
		return true
	default:
		return false
	}
}

func (p ScheduledParams) BuildScheduledTransaction(member *models.Member) *models.ScheduledTransaction {
	amount := p.Amount
	if p.Type == types.TypeReminder {
		amount = decimal.Zero
	}

	recurrence := p.Recurrence
	if recurrence == "" {
		recurrence = types.RecurrenceOnce
	}

	status := p.Status
	if status == "" {
		status = types.StatusPending
	}

	return &models.ScheduledTransaction{
		UserID:        member.ID,
		Type:          p.Type,
		Amount:        amount,
		CategoryID:    p.CategoryID,
		Description:   p.Description,
		ScheduledDate: p.ScheduledDate,
		Recurrence:    recurrence,
		Status:        status,
		Situacao:      types.SituacaoAtivo,
		GoalID:        p.GoalID,
		Phone:         p.Phone,
	}
}

// Validate runs gookit validation and flattens the error map.
func Validate(payload interface{}) []string {
	v := validate.Struct(payload)
	if v.Validate() {
		return nil
	}

	var fields []string
	for _, errs := range v.Errors.All() {
		for _, err := range errs {
			fields = append(fields, err)
		}
	}

	return fields
}
