package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"westwood/infras/otel"
	"westwood/infras/postgres"
	"westwood/internal/domains/booking/model"
	"westwood/shared"
	"westwood/shared/constant"
	gDto "westwood/shared/dto"
	gRepo "westwood/shared/repository"
)

type postgresStore struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

// NewPostgresStore builds the booking store over the bookings table using the
// generic sqlx repository.
func NewPostgresStore(db *postgres.Connection, otl otel.Otel) Store {
	return &postgresStore{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (s *postgresStore) List(ctx context.Context) ([]model.Booking, error) {
	return s.Repository.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (s *postgresStore) Get(ctx context.Context, bookingID string) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Get")
	defer scope.End()

	// The legacy identity is not unique across a cancel-and-rebook; the
	// newest record is the live one.
	models, err := s.Repository.GetAll(
		ctx,
		gDto.QueryParams{Limit: 1, SortBy: constant.FieldCreatedAt, SortDir: "DESC"},
		shared.FilterByID(bookingID, model.FieldBookingID, model.TableName),
	)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if len(models) == 0 {
		return model.Booking{}, nil
	}

	return models[0], nil
}

func (s *postgresStore) Insert(ctx context.Context, booking model.Booking) error {
	return s.Repository.Insert(ctx, booking) //nolint:wrapcheck
}

func (s *postgresStore) Update(ctx context.Context, booking model.Booking) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Update")
	defer scope.End()

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)

	exist, err := s.Repository.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		log.Info().Str("bookingID", booking.BookingID).Msg("no stored booking matches, inserting instead")

		return s.Repository.Insert(ctx, booking) //nolint:wrapcheck
	}

	return s.Repository.Update(ctx, columnMap(booking), filter) //nolint:wrapcheck
}

// columnMap lays the booking out for the generic named UPDATE. The id column
// is the filter, never an update target.
func columnMap(b model.Booking) map[string]any {
	return map[string]any{
		model.FieldBookingID:     b.BookingID,
		model.FieldRoomName:      b.RoomName,
		model.FieldCustomerName:  b.CustomerName,
		model.FieldContact:       b.ContactNumber,
		"customer_email":         b.CustomerEmail,
		"number_of_people":       b.NumberOfPeople,
		model.FieldCheckInDate:   b.CheckInDate,
		model.FieldCheckOutDate:  b.CheckOutDate,
		"number_of_nights":       b.NumberOfNights,
		model.FieldStatus:        b.Status,
		"booking_date":           b.BookingDate,
		model.FieldSource:        b.SourceOfBooking,
		"room_amount":            b.RoomAmount,
		"food":                   b.Food,
		"camp_fire":              b.CampFire,
		"other_services":         b.OtherServices,
		"advance_paid":           b.AdvancePaid,
		"advance_paid_to":        b.AdvancePaidTo,
		"balance_to_pay":         b.BalanceToPay,
		"balance_paid_to":        b.BalancePaidTo,
		"commission":             b.Commission,
		"tww_revenue":            b.TWWRevenue,
		"refund":                 b.Refund,
		"remarks":                b.Remarks,
		constant.FieldModifiedAt: b.ModifiedAt,
		constant.FieldModifiedBy: b.ModifiedBy,
	}
}
