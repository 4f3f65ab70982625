// Package finance holds the pure money math behind a booking: commission by
// source, numeric parsing of display strings, and the derived balance and
// revenue fields. Every function is total; malformed input resolves to a
// safe default, never an error.
package finance

import (
	"strconv"
	"strings"
	"time"
	"westwood/internal/domains/booking/model"
	"westwood/shared/constant"
)

// Commission rates by booking source, percent of the room amount. Lookup is
// case and whitespace insensitive. An unrecognized source earns no
// commission; the legacy flat-agent fallback overcharged direct guests.
var commissionRates = map[string]float64{
	"sangeetha":   8,
	"agent":       10,
	"local agent": 10,
	"mmt":         30,
	"walkin":      0,
	"direct":      0,
	"owner":       0,
	"instagram":   0,
}

// CommissionPercent returns the commission rate for a booking source.
func CommissionPercent(source string) float64 {
	return commissionRates[strings.ToLower(strings.TrimSpace(source))]
}

// CommissionAmount computes the commission owed on an already-normalized
// amount for the given source.
func CommissionAmount(source string, amount float64) float64 {
	return amount * CommissionPercent(source) / 100
}

// ParseNumber coerces a display value to a number. Thousands separators are
// stripped; empty, nil and non-numeric input yield 0. Never NaN.
func ParseNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if cleaned == "" {
			return 0
		}

		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}

		return parsed
	default:
		return 0
	}
}

// Nights returns the stay length in nights: max(0, checkOut-checkIn). When
// either date fails to parse the result is 0.
func Nights(checkInDate, checkOutDate string) int {
	checkIn, err := time.Parse(constant.CalendarDateFormat, checkInDate)
	if err != nil {
		return 0
	}

	checkOut, err := time.Parse(constant.CalendarDateFormat, checkOutDate)
	if err != nil {
		return 0
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		return 0
	}

	return nights
}

// Recalculate rewrites every derived field of the booking from its raw
// fields: nights, commission, balance to pay and property revenue. Callers
// invoke it after any edit to dates, amounts or the booking source.
func Recalculate(b *model.Booking) {
	b.NumberOfNights = Nights(b.CheckInDate, b.CheckOutDate)
	b.Commission = CommissionAmount(b.SourceOfBooking, b.RoomAmount)

	gross := b.RoomAmount + b.Food + b.CampFire + b.OtherServices
	b.BalanceToPay = gross - b.AdvancePaid
	b.TWWRevenue = gross - b.Commission

	if b.BookingID == "" {
		b.BookingID = model.DeriveBookingID(b.RoomName, b.CheckInDate, b.CheckOutDate)
	}
}
