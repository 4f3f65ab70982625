package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"westwood/internal/domains/booking/finance"
	"westwood/internal/domains/booking/model"
)

func TestCommissionPercent(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   float64
	}{
		{name: "negotiated partner", source: "Sangeetha", want: 8},
		{name: "agent", source: "Agent", want: 10},
		{name: "local agent", source: "Local Agent", want: 10},
		{name: "ota", source: "MMT", want: 30},
		{name: "walk-in", source: "Walkin", want: 0},
		{name: "owner", source: "Owner", want: 0},
		{name: "case and whitespace insensitive", source: "  mmt  ", want: 30},
		{name: "unknown source defaults to zero", source: "totally-unknown-source", want: 0},
		{name: "empty source", source: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finance.CommissionPercent(tt.source))
		})
	}
}

func TestCommissionAmount(t *testing.T) {
	assert.Equal(t, 1500.0, finance.CommissionAmount("MMT", 5000))
	assert.Equal(t, 400.0, finance.CommissionAmount("Sangeetha", 5000))
	assert.Equal(t, 0.0, finance.CommissionAmount("Walkin", 5000))
	assert.Equal(t, 0.0, finance.CommissionAmount("unheard-of", 5000))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{name: "thousands separator", value: "1,234", want: 1234},
		{name: "multiple separators", value: "1,234,567", want: 1234567},
		{name: "decimal with separator", value: " 2,500.50 ", want: 2500.50},
		{name: "empty string", value: "", want: 0},
		{name: "nil", value: nil, want: 0},
		{name: "already numeric", value: 500, want: 500},
		{name: "float", value: 500.25, want: 500.25},
		{name: "garbage", value: "twelve", want: 0},
		{name: "unsupported type", value: []string{"1"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finance.ParseNumber(tt.value))
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "four nights", checkIn: "2025-08-01", checkOut: "2025-08-05", want: 4},
		{name: "one night", checkIn: "2025-08-01", checkOut: "2025-08-02", want: 1},
		{name: "same day", checkIn: "2025-08-01", checkOut: "2025-08-01", want: 0},
		{name: "reversed dates clamp to zero", checkIn: "2025-08-05", checkOut: "2025-08-01", want: 0},
		{name: "unparseable check-in", checkIn: "soon", checkOut: "2025-08-05", want: 0},
		{name: "missing check-out", checkIn: "2025-08-01", checkOut: "", want: 0},
		{name: "across month boundary", checkIn: "2025-08-30", checkOut: "2025-09-02", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finance.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestRecalculate(t *testing.T) {
	booking := model.Booking{
		RoomName:        model.RoomCedar,
		CheckInDate:     "2025-08-01",
		CheckOutDate:    "2025-08-05",
		RoomAmount:      5000,
		SourceOfBooking: "MMT",
		AdvancePaid:     1000,
	}

	finance.Recalculate(&booking)

	assert.Equal(t, 4, booking.NumberOfNights)
	assert.Equal(t, 1500.0, booking.Commission)
	assert.Equal(t, 3500.0, booking.TWWRevenue)
	assert.Equal(t, 4000.0, booking.BalanceToPay)
	assert.Equal(t, "Cedar-2025-08-01-2025-08-05", booking.BookingID)
}

func TestRecalculateWithAncillaries(t *testing.T) {
	booking := model.Booking{
		BookingID:       "Pine-2025-09-10-2025-09-12",
		RoomName:        model.RoomPine,
		CheckInDate:     "2025-09-10",
		CheckOutDate:    "2025-09-12",
		RoomAmount:      4000,
		Food:            1200,
		CampFire:        300,
		OtherServices:   500,
		AdvancePaid:     2000,
		SourceOfBooking: "Sangeetha",
	}

	finance.Recalculate(&booking)

	assert.Equal(t, 2, booking.NumberOfNights)
	assert.Equal(t, 320.0, booking.Commission)
	assert.Equal(t, 4000.0, booking.BalanceToPay)
	assert.Equal(t, 5680.0, booking.TWWRevenue)
	// An existing booking id is preserved across recalculation.
	assert.Equal(t, "Pine-2025-09-10-2025-09-12", booking.BookingID)
}
