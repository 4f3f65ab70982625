package collection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"westwood/internal/domains/booking/collection"
	"westwood/internal/domains/booking/model"
)

func booking(name, room, checkIn, checkOut, status string) model.Booking {
	return model.Booking{
		BookingID:    model.DeriveBookingID(room, checkIn, checkOut),
		RoomName:     room,
		CustomerName: name,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	}
}

func TestSortBookings(t *testing.T) {
	john := booking("John", model.RoomCedar, "2025-08-10", "2025-08-12", model.StatusConfirmed)
	jane := booking("Jane", model.RoomMaple, "2025-08-15", "2025-08-16", model.StatusConfirmed)
	alice := booking("Alice", model.RoomPine, "2025-08-05", "2025-08-07", model.StatusConfirmed)

	input := []model.Booking{john, jane, alice}

	sorted := collection.SortBookings(input)

	assert.Equal(t, []string{"Alice", "John", "Jane"}, names(sorted))

	// The input slice is left untouched.
	assert.Equal(t, []string{"John", "Jane", "Alice"}, names(input))
}

func TestSortBookingsUnparseableDateFirst(t *testing.T) {
	broken := booking("Broken", model.RoomOak, "someday", "2025-08-12", model.StatusConfirmed)
	early := booking("Early", model.RoomCedar, "2025-01-01", "2025-01-02", model.StatusConfirmed)

	sorted := collection.SortBookings([]model.Booking{early, broken})

	assert.Equal(t, []string{"Broken", "Early"}, names(sorted))
}

func TestSortBookingsTieBreaksOnCustomerName(t *testing.T) {
	zoe := booking("Zoe", model.RoomCedar, "2025-08-10", "2025-08-11", model.StatusConfirmed)
	amy := booking("Amy", model.RoomMaple, "2025-08-10", "2025-08-11", model.StatusConfirmed)

	sorted := collection.SortBookings([]model.Booking{zoe, amy})

	assert.Equal(t, []string{"Amy", "Zoe"}, names(sorted))
}

func TestSearchDefaultView(t *testing.T) {
	today := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)

	current := booking("Current", model.RoomCedar, "2025-08-09", "2025-08-11", model.StatusConfirmed)
	endsToday := booking("Ends Today", model.RoomMaple, "2025-08-08", "2025-08-10", model.StatusConfirmed)
	past := booking("Past", model.RoomPine, "2025-08-01", "2025-08-03", model.StatusConfirmed)
	cancelled := booking("Cancelled", model.RoomOak, "2025-08-12", "2025-08-14", model.StatusCancelled)

	results := collection.Search(
		[]model.Booking{current, endsToday, past, cancelled},
		collection.Criteria{},
		today,
	)

	assert.Equal(t, []string{"Current", "Ends Today"}, names(results))
}

func TestSearch(t *testing.T) {
	list := []model.Booking{
		booking("John Doe", model.RoomCedar, "2025-08-10", "2025-08-12", model.StatusConfirmed),
		booking("Jane Smith", model.RoomMaple, "2025-08-15", "2025-08-16", model.StatusTentative),
		booking("Johnny Walker", model.RoomPine, "2025-08-01", "2025-08-03", model.StatusCancelled),
	}
	list[0].ContactNumber = "9876543210"
	list[1].ContactNumber = "9123456789"
	list[2].ContactNumber = "9870001111"

	today := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		criteria collection.Criteria
		want     []string
	}{
		{
			name:     "customer name substring is case-insensitive",
			criteria: collection.Criteria{CustomerName: "john"},
			want:     []string{"John Doe", "Johnny Walker"},
		},
		{
			name:     "contact number fragment",
			criteria: collection.Criteria{ContactNumber: "987"},
			want:     []string{"John Doe", "Johnny Walker"},
		},
		{
			name:     "booking id fragment",
			criteria: collection.Criteria{BookingID: "maple"},
			want:     []string{"Jane Smith"},
		},
		{
			name:     "check-in month prefix",
			criteria: collection.Criteria{CheckInDate: "2025-08"},
			want:     []string{"John Doe", "Jane Smith", "Johnny Walker"},
		},
		{
			name:     "exact check-in date",
			criteria: collection.Criteria{CheckInDate: "2025-08-15", ExactDate: true},
			want:     []string{"Jane Smith"},
		},
		{
			name:     "exact rejects prefix",
			criteria: collection.Criteria{CheckInDate: "2025-08", ExactDate: true},
			want:     []string{},
		},
		{
			name: "criteria combine with and",
			criteria: collection.Criteria{
				CustomerName: "john",
				CheckInDate:  "2025-08-10",
			},
			want: []string{"John Doe"},
		},
		{
			name:     "cancelled bookings are searchable",
			criteria: collection.Criteria{CustomerName: "walker"},
			want:     []string{"Johnny Walker"},
		},
		{
			name:     "no match",
			criteria: collection.Criteria{CustomerName: "nobody"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := collection.Search(list, tt.criteria, today)

			assert.Equal(t, tt.want, names(results))
		})
	}
}

func names(list []model.Booking) []string {
	out := []string{}
	for _, b := range list {
		out = append(out, b.CustomerName)
	}

	return out
}
