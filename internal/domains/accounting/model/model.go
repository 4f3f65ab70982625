package model

import "westwood/shared/model"

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID       = "id"
	FieldDate     = "transaction_date"
	FieldKind     = "kind"
	FieldCategory = "category"

	KindCredit = "credit"
	KindDebit  = "debit"
)

// Transaction is a single ledger entry. Credits are money coming in
// (booking revenue, advances), debits are property expenses.
type Transaction struct {
	ID       string  `db:"id"`
	Date     string  `db:"transaction_date"`
	Kind     string  `db:"kind"`
	Category string  `db:"category"`
	Amount   float64 `db:"amount"`
	PaidTo   string  `db:"paid_to"`
	Notes    string  `db:"notes"`
	model.Metadata
}

// Summary aggregates a ledger period.
type Summary struct {
	TotalCredit float64 `db:"total_credit"`
	TotalDebit  float64 `db:"total_debit"`
}

// Net is credit minus debit for the period.
func (s Summary) Net() float64 {
	return s.TotalCredit - s.TotalDebit
}
