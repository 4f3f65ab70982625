package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"westwood/internal/domains/booking/model"
	"westwood/internal/domains/booking/sheet"
)

func fullyPopulated() model.Booking {
	return model.Booking{
		BookingID:       "Cedar-2025-08-01-2025-08-05",
		RoomName:        model.RoomCedar,
		CustomerName:    "Jane Smith",
		ContactNumber:   "9876543210",
		CustomerEmail:   "jane@example.com",
		NumberOfPeople:  2,
		CheckInDate:     "2025-08-01",
		CheckOutDate:    "2025-08-05",
		NumberOfNights:  4,
		Status:          model.StatusConfirmed,
		BookingDate:     "2025-07-20",
		SourceOfBooking: "MMT",
		RoomAmount:      5000,
		Food:            1200,
		CampFire:        300,
		OtherServices:   500,
		AdvancePaid:     1000,
		AdvancePaidTo:   "Ramesh",
		BalanceToPay:    6000,
		BalancePaidTo:   "Front Desk",
		Commission:      1500,
		TWWRevenue:      5500,
		Refund:          250,
		Remarks:         "late arrival",
	}
}

func TestBookingToRowShape(t *testing.T) {
	row := sheet.BookingToRow(fullyPopulated())

	assert.Len(t, row, sheet.RowWidth)

	// The two legacy reserved columns are always written as literal zero,
	// whatever the booking holds.
	assert.Equal(t, 0, row[13])
	assert.Equal(t, 0, row[17])
}

func TestBookingToRowUnsetFieldsStayBlank(t *testing.T) {
	row := sheet.BookingToRow(model.Booking{RoomName: model.RoomOak})

	assert.Equal(t, model.RoomOak, row[1])
	assert.Nil(t, row[2])  // customer name
	assert.Nil(t, row[12]) // room amount
	assert.Equal(t, 0, row[13])
	assert.Equal(t, 0, row[17])
	assert.Nil(t, row[25]) // refund
}

func TestRoundTrip(t *testing.T) {
	want := fullyPopulated()

	encoded := sheet.BookingToRow(want)

	cells := make([]string, len(encoded))
	for i, value := range encoded {
		if value == nil {
			continue
		}

		switch v := value.(type) {
		case string:
			cells[i] = v
		case int:
			cells[i] = "0"
		}
	}

	got := sheet.RowToBooking(cells)

	assert.Equal(t, want.BookingID, got.BookingID)
	assert.Equal(t, want.RoomName, got.RoomName)
	assert.Equal(t, want.CustomerName, got.CustomerName)
	assert.Equal(t, want.ContactNumber, got.ContactNumber)
	assert.Equal(t, want.CustomerEmail, got.CustomerEmail)
	assert.Equal(t, want.NumberOfPeople, got.NumberOfPeople)
	assert.Equal(t, want.CheckInDate, got.CheckInDate)
	assert.Equal(t, want.CheckOutDate, got.CheckOutDate)
	assert.Equal(t, want.NumberOfNights, got.NumberOfNights)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.BookingDate, got.BookingDate)
	assert.Equal(t, want.SourceOfBooking, got.SourceOfBooking)
	assert.Equal(t, want.RoomAmount, got.RoomAmount)
	assert.Equal(t, want.Food, got.Food)
	assert.Equal(t, want.CampFire, got.CampFire)
	assert.Equal(t, want.OtherServices, got.OtherServices)
	assert.Equal(t, want.AdvancePaid, got.AdvancePaid)
	assert.Equal(t, want.AdvancePaidTo, got.AdvancePaidTo)
	assert.Equal(t, want.BalanceToPay, got.BalanceToPay)
	assert.Equal(t, want.BalancePaidTo, got.BalancePaidTo)
	assert.Equal(t, want.Commission, got.Commission)
	assert.Equal(t, want.TWWRevenue, got.TWWRevenue)
	assert.Equal(t, want.Refund, got.Refund)
	assert.Equal(t, want.Remarks, got.Remarks)
}

func TestRowToBookingShortRow(t *testing.T) {
	// Trailing cells are routinely absent on rows the sheet API returns.
	got := sheet.RowToBooking([]string{
		"Cedar-2025-08-01-2025-08-05", "Cedar", "Jane Smith", "9876543210",
	})

	assert.Equal(t, "Jane Smith", got.CustomerName)
	assert.Equal(t, "", got.CheckInDate)
	assert.Equal(t, 0.0, got.RoomAmount)
	assert.Equal(t, 0, got.NumberOfNights)
}

func TestRowToBookingCommaFormattedAmounts(t *testing.T) {
	row := make([]string, sheet.RowWidth)
	row[1] = "Maple"
	row[12] = "12,500"
	row[18] = "2,000"

	got := sheet.RowToBooking(row)

	assert.Equal(t, 12500.0, got.RoomAmount)
	assert.Equal(t, 2000.0, got.AdvancePaid)
}

func TestFindMatchingRowIndex(t *testing.T) {
	base := fullyPopulated()

	duplicate := base
	duplicate.Status = model.StatusCancelled

	other := base
	other.BookingID = "Oak-2025-08-01-2025-08-05"
	other.RoomName = model.RoomOak

	tests := []struct {
		name      string
		rows      []model.Booking
		candidate model.Booking
		want      int
	}{
		{
			name:      "empty rows",
			rows:      []model.Booking{},
			candidate: base,
			want:      -1,
		},
		{
			name: "candidate missing booking id",
			rows: []model.Booking{base},
			candidate: model.Booking{
				RoomName:     base.RoomName,
				CheckInDate:  base.CheckInDate,
				CheckOutDate: base.CheckOutDate,
			},
			want: -1,
		},
		{
			name:      "single match",
			rows:      []model.Booking{other, base},
			candidate: base,
			want:      1,
		},
		{
			name:      "last of duplicate identities wins",
			rows:      []model.Booking{base, other, duplicate},
			candidate: base,
			want:      2,
		},
		{
			name:      "no match",
			rows:      []model.Booking{other},
			candidate: base,
			want:      -1,
		},
		{
			name: "same id different room does not match",
			rows: []model.Booking{
				func() model.Booking {
					b := base
					b.RoomName = model.RoomJuniper
					return b
				}(),
			},
			candidate: base,
			want:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sheet.FindMatchingRowIndex(tt.rows, tt.candidate))
		})
	}
}
