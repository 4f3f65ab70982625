package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"westwood/internal/domains/booking/model"
)

// Store is the booking persistence boundary. Two implementations exist: the
// Postgres store and the legacy Google Sheets store. Both speak whole
// model.Booking records; which one is wired is a deployment choice, and the
// service layer cannot tell them apart.
type Store interface {
	// List returns every booking the store holds, unfiltered and unsorted.
	List(ctx context.Context) ([]model.Booking, error)
	// Get resolves a booking by its legacy room-dates identity. When the
	// identity occurs more than once the most recently written record wins.
	// A zero booking with no error means not found.
	Get(ctx context.Context, bookingID string) (model.Booking, error)
	// Insert appends a new booking.
	Insert(ctx context.Context, booking model.Booking) error
	// Update overwrites the stored record the booking's identity resolves
	// to, or appends when no record matches.
	Update(ctx context.Context, booking model.Booking) error
}
