package model

import (
	"fmt"
	"time"
	"westwood/shared/constant"
	"westwood/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldRoomName     = "room_name"
	FieldCustomerName = "customer_name"
	FieldContact      = "contact_number"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldSource       = "source_of_booking"
)

// The five rooms of the property. The chart's room axis and the sheet rows
// both use these exact names.
const (
	RoomCedar   = "Cedar"
	RoomMaple   = "Maple"
	RoomPine    = "Pine"
	RoomOak     = "Oak"
	RoomJuniper = "Juniper"
)

const (
	StatusConfirmed = "Confirmed"
	StatusTentative = "Tentative"
	StatusCancelled = "Cancelled"
	StatusAvailable = "Available"
	StatusClosed    = "Closed"
)

// RoomNames returns the rooms in chart display order.
func RoomNames() []string {
	return []string{RoomCedar, RoomMaple, RoomPine, RoomOak, RoomJuniper}
}

// Booking is the canonical in-memory shape both stores produce and consume.
// The snake_case REST fields and the spreadsheet columns of the two legacy
// generations collapse into this one schema; adapters live at the store
// boundary.
type Booking struct {
	// ID is a uuid assigned by the Postgres store. The sheet store carries no
	// ID column; BookingID remains the legacy room-dates identity there.
	ID              string  `db:"id"`
	BookingID       string  `db:"booking_id"`
	RoomName        string  `db:"room_name"`
	CustomerName    string  `db:"customer_name"`
	ContactNumber   string  `db:"contact_number"`
	CustomerEmail   string  `db:"customer_email"`
	NumberOfPeople  int     `db:"number_of_people"`
	CheckInDate     string  `db:"check_in_date"`
	CheckOutDate    string  `db:"check_out_date"`
	NumberOfNights  int     `db:"number_of_nights"`
	Status          string  `db:"status"`
	BookingDate     string  `db:"booking_date"`
	SourceOfBooking string  `db:"source_of_booking"`
	RoomAmount      float64 `db:"room_amount"`
	Food            float64 `db:"food"`
	CampFire        float64 `db:"camp_fire"`
	OtherServices   float64 `db:"other_services"`
	AdvancePaid     float64 `db:"advance_paid"`
	AdvancePaidTo   string  `db:"advance_paid_to"`
	BalanceToPay    float64 `db:"balance_to_pay"`
	BalancePaidTo   string  `db:"balance_paid_to"`
	Commission      float64 `db:"commission"`
	TWWRevenue      float64 `db:"tww_revenue"`
	Refund          float64 `db:"refund"`
	Remarks         string  `db:"remarks"`
	model.Metadata
}

// DeriveBookingID builds the legacy room-dates identity. It is not unique
// across a cancel-and-rebook of the same room and dates; the Postgres store
// therefore adds a uuid primary key on top.
func DeriveBookingID(roomName, checkInDate, checkOutDate string) string {
	return fmt.Sprintf("%s-%s-%s", roomName, checkInDate, checkOutDate)
}

// Validate runs the persistence-gate checks and returns every applicable
// error as a user-facing phrase, in check order. A nil result means the
// booking may be persisted.
func (b *Booking) Validate() []string {
	var errs []string

	if b.CustomerName == "" {
		errs = append(errs, "Customer name is required")
	}

	if b.CheckInDate == "" {
		errs = append(errs, "Check-in date is required")
	}

	if b.CheckOutDate == "" {
		errs = append(errs, "Check-out date is required")
	}

	if b.ContactNumber == "" {
		errs = append(errs, "Contact number is required")
	}

	if b.CheckInDate != "" && b.CheckOutDate != "" {
		checkIn, inErr := time.Parse(constant.CalendarDateFormat, b.CheckInDate)
		checkOut, outErr := time.Parse(constant.CalendarDateFormat, b.CheckOutDate)

		if inErr == nil && outErr == nil && !checkOut.After(checkIn) {
			errs = append(errs, "Check-out date must be after check-in date")
		}
	}

	return errs
}
