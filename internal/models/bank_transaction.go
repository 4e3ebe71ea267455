package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction of money movement on a bank statement line.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// Source formats a bank transaction can be imported from.
const (
	SourceOFX       = "ofx"
	SourceDelimited = "csv"
	SourceXLSX      = "xlsx"
)

// BankTransaction is the canonical statement line. Amount is never negative;
// the sign of the source value lives in Direction.
type BankTransaction struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	OwnerID     uuid.UUID        `json:"owner_id" db:"owner_id"`
	BatchID     uuid.UUID        `json:"batch_id" db:"batch_id"`
	Date        time.Time        `json:"date" db:"date"`
	Description string           `json:"description" db:"description"`
	Amount      decimal.Decimal  `json:"amount" db:"amount"`
	Direction   Direction        `json:"direction" db:"direction"`
	Counterpart *string          `json:"counterpart" db:"counterpart"`
	Balance     *decimal.Decimal `json:"balance" db:"balance"`
	ExternalID  *string          `json:"external_id" db:"external_id"` // OFX FITID, the only de-duplication key
	Category    *string          `json:"category" db:"category"`
	Source      string           `json:"source" db:"source"`
	BankProfile string           `json:"bank_profile" db:"bank_profile"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

// BankTransactionFilter narrows a transaction listing. Nil fields are ignored.
type BankTransactionFilter struct {
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
	Category  *string    `json:"category,omitempty"`
}

// TransactionSummary totals a set of transactions by direction.
type TransactionSummary struct {
	Count   int             `json:"count"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}
