package types

type TransactionType = string

var (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeReminder TransactionType = "reminder"
	TypeOutros   TransactionType = "outros"
)

type Recurrence = string

var (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

type ScheduleStatus = string

var (
	StatusPending  ScheduleStatus = "pending"
	StatusPaid     ScheduleStatus = "paid"
	StatusOverdue  ScheduleStatus = "overdue"
	StatusUpcoming ScheduleStatus = "upcoming"
)

type Situacao = string

var (
	SituacaoAtivo   Situacao = "ativo"
	SituacaoAvisado Situacao = "avisado"
)

type TimeRange = string

var (
	RangeToday     TimeRange = "today"
	RangeYesterday TimeRange = "yesterday"
	Range7Days     TimeRange = "7days"
	Range14Days    TimeRange = "14days"
	Range30Days    TimeRange = "30days"
	RangeMonth     TimeRange = "month"
	RangeCustom    TimeRange = "custom"
)

type EditScope = string

var (
	ScopeCurrent EditScope = "current"
	ScopeFuture  EditScope = "future"
	ScopeAll     EditScope = "all"
)

type DeleteScope = string

var (
	DeleteSingle DeleteScope = "single"
	DeleteAll    DeleteScope = "all"
)

type ChangeKind = string

var (
	EventInsert ChangeKind = "INSERT"
	EventUpdate ChangeKind = "UPDATE"
	EventDelete ChangeKind = "DELETE"
)

var (
	TableTransactions          = "transactions"
	TableCategories            = "categories"
	TableGoals                 = "goals"
	TableScheduledTransactions = "scheduled_transactions"
)

// ChangeEvent is the payload published on the per-user realtime channel
// after every confirmed write.
type ChangeEvent struct {
	ID     string     `json:"id"`
	Event  ChangeKind `json:"event"`
	Table  string     `json:"table"`
	UserID uint64     `json:"user_id"`
}
