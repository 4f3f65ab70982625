package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"westwood/infras/otel"
	"westwood/infras/sheets"
	"westwood/internal/domains/booking/model"
	"westwood/internal/domains/booking/sheet"
	"westwood/shared/constant"
)

// sheetsStore keeps bookings in the legacy spreadsheet. Every operation works
// on full decoded rows; the sheet itself is the source of truth and no state
// is held between calls.
type sheetsStore struct {
	client *sheets.Client
	otel   otel.Otel
}

func NewSheetsStore(client *sheets.Client, otl otel.Otel) Store {
	return &sheetsStore{
		client: client,
		otel:   otl,
	}
}

func (s *sheetsStore) List(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.List")
	defer scope.End()

	rows, err := s.client.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]model.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, sheet.RowToBooking(row))
	}

	return bookings, nil
}

func (s *sheetsStore) Get(ctx context.Context, bookingID string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Get")
	defer scope.End()

	bookings, err := s.List(ctx)
	if err != nil {
		return model.Booking{}, err
	}

	// Duplicate identities exist on the sheet after a cancel-and-rebook; the
	// bottom-most row is the live one.
	var found model.Booking

	for _, booking := range bookings {
		if booking.BookingID == bookingID {
			found = booking
		}
	}

	return found, nil
}

func (s *sheetsStore) Insert(ctx context.Context, booking model.Booking) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()

	if err := s.client.AppendRow(ctx, sheet.BookingToRow(booking)); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (s *sheetsStore) Update(ctx context.Context, booking model.Booking) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Update")
	defer scope.End()

	existing, err := s.List(ctx)
	if err != nil {
		return err
	}

	row := sheet.BookingToRow(booking)

	index := sheet.FindMatchingRowIndex(existing, booking)
	if index < 0 {
		log.Info().Str("bookingID", booking.BookingID).Msg("no sheet row matches, appending instead")

		if err := s.client.AppendRow(ctx, row); err != nil {
			return fmt.Errorf("failed to append booking row: %w", err)
		}

		return nil
	}

	if err := s.client.UpdateRow(ctx, index, row); err != nil {
		return fmt.Errorf("failed to update booking row: %w", err)
	}

	return nil
}
