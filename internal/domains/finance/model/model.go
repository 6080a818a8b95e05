package model

import "time"

const (
	CollectionTransactions = "transactions"
	CollectionResolutions  = "resolutions"

	TypeIncome         = "income"
	TypeExpense        = "expense"
	TypeBranchTransfer = "branch_transfer"

	CategoryCongregation  = "congregation"
	CategoryWorldwideWork = "worldwide_work"
	CategoryRenovation    = "renovation"

	StatusCompleted   = "completed"
	StatusPendingSend = "pending_send"
	StatusSent        = "sent"
)

// Transaction is one ledger entry. Category is only meaningful for income
// rows; expenses and branch transfers carry none.
type Transaction struct {
	ID          string    `bson:"_id"`
	Type        string    `bson:"type"`
	Amount      float64   `bson:"amount"`
	Date        time.Time `bson:"date"`
	Description string    `bson:"description"`
	Category    string    `bson:"category,omitempty"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	CreatedBy   string    `bson:"created_by"`
	ModifiedAt  time.Time `bson:"modified_at"`
	ModifiedBy  string    `bson:"modified_by"`
}

// Resolution is a standing spending resolution voted by the congregation.
type Resolution struct {
	ID          string    `bson:"_id"`
	Description string    `bson:"description"`
	Amount      float64   `bson:"amount"`
	StartDate   time.Time `bson:"start_date"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
	CreatedBy   string    `bson:"created_by"`
	ModifiedAt  time.Time `bson:"modified_at"`
	ModifiedBy  string    `bson:"modified_by"`
}

// IncomeStatus derives the status of an income row from its category:
// congregation income is kept locally and is complete on entry, everything
// else waits to be forwarded to the branch.
func IncomeStatus(category string) string {
	if category == CategoryCongregation {
		return StatusCompleted
	}

	return StatusPendingSend
}
