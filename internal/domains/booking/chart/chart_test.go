package chart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"westwood/internal/domains/booking/chart"
	"westwood/internal/domains/booking/model"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "inclusive range",
			from: "2025-08-01",
			to:   "2025-08-03",
			want: []string{"2025-08-01", "2025-08-02", "2025-08-03"},
		},
		{
			name: "single day",
			from: "2025-08-01",
			to:   "2025-08-01",
			want: []string{"2025-08-01"},
		},
		{
			name: "crosses month boundary",
			from: "2025-08-30",
			to:   "2025-09-01",
			want: []string{"2025-08-30", "2025-08-31", "2025-09-01"},
		},
		{
			name: "unparseable bound",
			from: "not-a-date",
			to:   "2025-08-01",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chart.DateRange(tt.from, tt.to))
		})
	}
}

func TestPrepareChartDataShape(t *testing.T) {
	today := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	dates := chart.DateRange("2025-08-08", "2025-08-12")

	booking := model.Booking{
		BookingID:    "Cedar-2025-08-10-2025-08-12",
		RoomName:     model.RoomCedar,
		CustomerName: "Jane Smith",
		CheckInDate:  "2025-08-10",
		CheckOutDate: "2025-08-12",
		Status:       model.StatusConfirmed,
	}

	cells := chart.PrepareChartData([]model.Booking{booking}, dates, today)

	assert.Len(t, cells, len(dates)*len(model.RoomNames()))

	// Exactly one cell per (date, room) pair.
	seen := map[string]bool{}
	for _, cell := range cells {
		key := cell.Date + "|" + cell.RoomName
		assert.False(t, seen[key], "duplicate cell for %s", key)
		seen[key] = true
	}
}

func TestPrepareChartDataOccupancy(t *testing.T) {
	today := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	dates := chart.DateRange("2025-08-01", "2025-08-05")

	booking := model.Booking{
		BookingID:    "Maple-2025-08-02-2025-08-04",
		RoomName:     model.RoomMaple,
		CustomerName: "John Doe",
		CheckInDate:  "2025-08-02",
		CheckOutDate: "2025-08-04",
		Status:       model.StatusTentative,
	}

	cells := chart.PrepareChartData([]model.Booking{booking}, dates, today)

	byKey := map[string]chart.Cell{}
	for _, cell := range cells {
		byKey[cell.Date+"|"+cell.RoomName] = cell
	}

	// Stay nights are check-in inclusive, check-out exclusive.
	for _, date := range []string{"2025-08-02", "2025-08-03"} {
		cell := byKey[date+"|"+model.RoomMaple]
		assert.Equal(t, chart.KindActual, cell.Kind)
		assert.Equal(t, model.StatusTentative, cell.ChartStatus)
		assert.Equal(t, "John Doe", cell.Booking.CustomerName)
	}

	checkout := byKey["2025-08-04|"+model.RoomMaple]
	assert.Equal(t, chart.KindInjected, checkout.Kind)
	assert.Equal(t, model.StatusAvailable, checkout.ChartStatus)
	assert.Nil(t, checkout.Booking)

	otherRoom := byKey["2025-08-02|"+model.RoomCedar]
	assert.Equal(t, chart.KindInjected, otherRoom.Kind)
	assert.Equal(t, model.StatusAvailable, otherRoom.ChartStatus)
}

func TestPrepareChartDataPastDatesCloseOut(t *testing.T) {
	today := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	dates := chart.DateRange("2025-08-08", "2025-08-10")

	booking := model.Booking{
		BookingID:    "Pine-2025-08-08-2025-08-09",
		RoomName:     model.RoomPine,
		CheckInDate:  "2025-08-08",
		CheckOutDate: "2025-08-09",
		Status:       model.StatusConfirmed,
	}

	cells := chart.PrepareChartData([]model.Booking{booking}, dates, today)

	for _, cell := range cells {
		if cell.Date >= "2025-08-10" {
			continue
		}

		assert.Equal(t, model.StatusClosed, cell.ChartStatus, "%s %s", cell.Date, cell.RoomName)
	}
}

func TestPrepareChartDataLaterBookingWins(t *testing.T) {
	today := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	dates := []string{"2025-08-02"}

	first := model.Booking{
		RoomName:     model.RoomOak,
		CustomerName: "First",
		CheckInDate:  "2025-08-02",
		CheckOutDate: "2025-08-03",
		Status:       model.StatusTentative,
	}
	second := first
	second.CustomerName = "Second"
	second.Status = model.StatusConfirmed

	cells := chart.PrepareChartData([]model.Booking{first, second}, dates, today)

	for _, cell := range cells {
		if cell.RoomName != model.RoomOak {
			continue
		}

		assert.Equal(t, "Second", cell.Booking.CustomerName)
		assert.Equal(t, model.StatusConfirmed, cell.ChartStatus)
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#2e7d32", chart.StatusColor(false, model.StatusConfirmed))
	assert.Equal(t, "#a5d6a7", chart.StatusColor(true, model.StatusConfirmed))
	assert.Equal(t, "#eceff1", chart.StatusColor(false, "unknown"))
	assert.Equal(t, "#eceff1", chart.StatusColor(true, model.StatusAvailable))
}
