package model

import "westwood/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldBaseRate = "base_rate"
	FieldActive   = "active"
)

// Room is one of the property's five cottages. The registry seeds the
// availability chart's room axis and carries pricing defaults.
type Room struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Capacity int     `db:"capacity"`
	BaseRate float64 `db:"base_rate"`
	Active   bool    `db:"active"`
	model.Metadata
}
