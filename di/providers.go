package di

import (
	"westwood/config"
	"westwood/infras/otel"
	"westwood/infras/postgres"
	"westwood/infras/sheets"
	bookingRepository "westwood/internal/domains/booking/repository"
)

// ProvideBookingStore picks the booking backend configured for this
// deployment. The sheets client is nil unless the sheets backend is active.
func ProvideBookingStore(cfg *config.Config, db *postgres.Connection, sheetsClient *sheets.Client, otl otel.Otel) bookingRepository.Store {
	if cfg.Booking.Backend == config.BookingBackendSheets {
		return bookingRepository.NewSheetsStore(sheetsClient, otl)
	}

	return bookingRepository.NewPostgresStore(db, otl)
}
