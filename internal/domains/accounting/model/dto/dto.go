package dto

import (
	"github.com/google/uuid"

	"westwood/internal/domains/accounting/model"
	"westwood/shared"
	gDto "westwood/shared/dto"
	gModel "westwood/shared/model"
	"westwood/shared/timezone"
)

type CreateTransactionRequest struct {
	Date     string  `json:"date"     validate:"required,datetime=2006-01-02"`
	Kind     string  `json:"kind"     validate:"required,oneof=credit debit"`
	Category string  `json:"category" validate:"required,max=50"`
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	PaidTo   string  `json:"paid_to"  validate:"omitempty,max=100"`
	Notes    string  `json:"notes"    validate:"omitempty"`
}

func (c *CreateTransactionRequest) ToModel(user string) model.Transaction {
	return model.Transaction{
		ID:       uuid.NewString(),
		Date:     c.Date,
		Kind:     c.Kind,
		Category: c.Category,
		Amount:   c.Amount,
		PaidTo:   c.PaidTo,
		Notes:    c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TransactionResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Kind     string  `json:"kind"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	PaidTo   string  `json:"paid_to"`
	Notes    string  `json:"notes"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(model model.Transaction) {
	r.ID = model.ID
	r.Date = model.Date
	r.Kind = model.Kind
	r.Category = model.Category
	r.Amount = model.Amount
	r.PaidTo = model.PaidTo
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.Transaction, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromModel(mod)
	}
}

type SummaryResponse struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	TotalCredit float64 `json:"total_credit"`
	TotalDebit  float64 `json:"total_debit"`
	Net         float64 `json:"net"`
}

func (r *SummaryResponse) FromModel(from, to string, summary model.Summary) {
	r.From = from
	r.To = to
	r.TotalCredit = summary.TotalCredit
	r.TotalDebit = summary.TotalDebit
	r.Net = summary.Net()
}
