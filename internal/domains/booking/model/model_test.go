package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"westwood/internal/domains/booking/model"
)

func validBooking() model.Booking {
	return model.Booking{
		BookingID:     "Cedar-2025-08-01-2025-08-05",
		RoomName:      model.RoomCedar,
		CustomerName:  "Jane Smith",
		ContactNumber: "9876543210",
		CheckInDate:   "2025-08-01",
		CheckOutDate:  "2025-08-05",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Booking)
		want   []string
	}{
		{
			name:   "valid booking passes",
			mutate: func(*model.Booking) {},
			want:   nil,
		},
		{
			name:   "missing customer name",
			mutate: func(b *model.Booking) { b.CustomerName = "" },
			want:   []string{"Customer name is required"},
		},
		{
			name:   "missing check-in date",
			mutate: func(b *model.Booking) { b.CheckInDate = "" },
			want:   []string{"Check-in date is required"},
		},
		{
			name:   "missing check-out date",
			mutate: func(b *model.Booking) { b.CheckOutDate = "" },
			want:   []string{"Check-out date is required"},
		},
		{
			name:   "missing contact number",
			mutate: func(b *model.Booking) { b.ContactNumber = "" },
			want:   []string{"Contact number is required"},
		},
		{
			name:   "equal dates fail the order check",
			mutate: func(b *model.Booking) { b.CheckOutDate = b.CheckInDate },
			want:   []string{"Check-out date must be after check-in date"},
		},
		{
			name:   "check-out before check-in",
			mutate: func(b *model.Booking) { b.CheckOutDate = "2025-07-30" },
			want:   []string{"Check-out date must be after check-in date"},
		},
		{
			name: "all errors reported in check order",
			mutate: func(b *model.Booking) {
				b.CustomerName = ""
				b.ContactNumber = ""
				b.CheckOutDate = "2025-07-30"
			},
			want: []string{
				"Customer name is required",
				"Contact number is required",
				"Check-out date must be after check-in date",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(&booking)

			assert.Equal(t, tt.want, booking.Validate())
		})
	}
}

func TestDeriveBookingID(t *testing.T) {
	assert.Equal(t, "Oak-2025-12-24-2025-12-26", model.DeriveBookingID(model.RoomOak, "2025-12-24", "2025-12-26"))
}

func TestRoomNames(t *testing.T) {
	assert.Len(t, model.RoomNames(), 5)
}
