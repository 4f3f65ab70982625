package model

import "westwood/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID      = "id"
	FieldName    = "name"
	FieldContact = "contact_number"
	FieldEmail   = "email"
)

// Customer is an entry in the staff-managed guest directory.
type Customer struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	ContactNumber string `db:"contact_number"`
	Email         string `db:"email"`
	Remarks       string `db:"remarks"`
	model.Metadata
}
