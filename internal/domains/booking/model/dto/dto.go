package dto

import (
	"github.com/google/uuid"

	"westwood/internal/domains/booking/chart"
	"westwood/internal/domains/booking/collection"
	"westwood/internal/domains/booking/model"
	gDto "westwood/shared/dto"
	gModel "westwood/shared/model"
	"westwood/shared/timezone"
)

type CreateBookingRequest struct {
	RoomName        string  `json:"room_name"         validate:"required,oneof=Cedar Maple Pine Oak Juniper"`
	CustomerName    string  `json:"customer_name"     validate:"omitempty,max=100"`
	ContactNumber   string  `json:"contact_number"    validate:"omitempty,max=20"`
	CustomerEmail   string  `json:"customer_email"    validate:"omitempty,email,max=100"`
	NumberOfPeople  int     `json:"number_of_people"  validate:"omitempty,min=1"`
	CheckInDate     string  `json:"check_in_date"     validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    string  `json:"check_out_date"    validate:"omitempty,datetime=2006-01-02"`
	Status          string  `json:"status"            validate:"omitempty,oneof=Confirmed Tentative Cancelled"`
	BookingDate     string  `json:"booking_date"      validate:"omitempty,datetime=2006-01-02"`
	SourceOfBooking string  `json:"source_of_booking" validate:"omitempty,max=50"`
	RoomAmount      float64 `json:"room_amount"       validate:"omitempty,min=0"`
	Food            float64 `json:"food"              validate:"omitempty,min=0"`
	CampFire        float64 `json:"camp_fire"         validate:"omitempty,min=0"`
	OtherServices   float64 `json:"other_services"    validate:"omitempty,min=0"`
	AdvancePaid     float64 `json:"advance_paid"      validate:"omitempty,min=0"`
	AdvancePaidTo   string  `json:"advance_paid_to"   validate:"omitempty,max=100"`
	BalancePaidTo   string  `json:"balance_paid_to"   validate:"omitempty,max=100"`
	Refund          float64 `json:"refund"            validate:"omitempty,min=0"`
	Remarks         string  `json:"remarks"           validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	status := model.StatusConfirmed
	if c.Status != "" {
		status = c.Status
	}

	bookingDate := c.BookingDate
	if bookingDate == "" {
		bookingDate = timezone.Now().Format("2006-01-02")
	}

	return model.Booking{
		ID:              uuid.NewString(),
		RoomName:        c.RoomName,
		CustomerName:    c.CustomerName,
		ContactNumber:   c.ContactNumber,
		CustomerEmail:   c.CustomerEmail,
		NumberOfPeople:  c.NumberOfPeople,
		CheckInDate:     c.CheckInDate,
		CheckOutDate:    c.CheckOutDate,
		Status:          status,
		BookingDate:     bookingDate,
		SourceOfBooking: c.SourceOfBooking,
		RoomAmount:      c.RoomAmount,
		Food:            c.Food,
		CampFire:        c.CampFire,
		OtherServices:   c.OtherServices,
		AdvancePaid:     c.AdvancePaid,
		AdvancePaidTo:   c.AdvancePaidTo,
		BalancePaidTo:   c.BalancePaidTo,
		Refund:          c.Refund,
		Remarks:         c.Remarks,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest carries a partial edit. Only non-zero fields land on
// the stored booking; the derived money fields are always recomputed after
// the merge, never taken from the client.
type UpdateBookingRequest struct {
	RoomName        string   `json:"room_name"         validate:"omitempty,oneof=Cedar Maple Pine Oak Juniper"`
	CustomerName    string   `json:"customer_name"     validate:"omitempty,max=100"`
	ContactNumber   string   `json:"contact_number"    validate:"omitempty,max=20"`
	CustomerEmail   string   `json:"customer_email"    validate:"omitempty,email,max=100"`
	NumberOfPeople  int      `json:"number_of_people"  validate:"omitempty,min=1"`
	CheckInDate     string   `json:"check_in_date"     validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    string   `json:"check_out_date"    validate:"omitempty,datetime=2006-01-02"`
	Status          string   `json:"status"            validate:"omitempty,oneof=Confirmed Tentative Cancelled"`
	SourceOfBooking string   `json:"source_of_booking" validate:"omitempty,max=50"`
	RoomAmount      *float64 `json:"room_amount"       validate:"omitempty"`
	Food            *float64 `json:"food"              validate:"omitempty"`
	CampFire        *float64 `json:"camp_fire"         validate:"omitempty"`
	OtherServices   *float64 `json:"other_services"    validate:"omitempty"`
	AdvancePaid     *float64 `json:"advance_paid"      validate:"omitempty"`
	AdvancePaidTo   string   `json:"advance_paid_to"   validate:"omitempty,max=100"`
	BalancePaidTo   string   `json:"balance_paid_to"   validate:"omitempty,max=100"`
	Refund          *float64 `json:"refund"            validate:"omitempty"`
	Remarks         string   `json:"remarks"           validate:"omitempty"`
}

// ApplyTo merges the edit onto an existing booking. Money amounts use
// pointers so an explicit 0 clears the field while absence keeps it.
func (u *UpdateBookingRequest) ApplyTo(booking *model.Booking, user string) {
	if u.RoomName != "" {
		booking.RoomName = u.RoomName
	}

	if u.CustomerName != "" {
		booking.CustomerName = u.CustomerName
	}

	if u.ContactNumber != "" {
		booking.ContactNumber = u.ContactNumber
	}

	if u.CustomerEmail != "" {
		booking.CustomerEmail = u.CustomerEmail
	}

	if u.NumberOfPeople != 0 {
		booking.NumberOfPeople = u.NumberOfPeople
	}

	if u.CheckInDate != "" {
		booking.CheckInDate = u.CheckInDate
	}

	if u.CheckOutDate != "" {
		booking.CheckOutDate = u.CheckOutDate
	}

	if u.Status != "" {
		booking.Status = u.Status
	}

	if u.SourceOfBooking != "" {
		booking.SourceOfBooking = u.SourceOfBooking
	}

	if u.RoomAmount != nil {
		booking.RoomAmount = *u.RoomAmount
	}

	if u.Food != nil {
		booking.Food = *u.Food
	}

	if u.CampFire != nil {
		booking.CampFire = *u.CampFire
	}

	if u.OtherServices != nil {
		booking.OtherServices = *u.OtherServices
	}

	if u.AdvancePaid != nil {
		booking.AdvancePaid = *u.AdvancePaid
	}

	if u.AdvancePaidTo != "" {
		booking.AdvancePaidTo = u.AdvancePaidTo
	}

	if u.BalancePaidTo != "" {
		booking.BalancePaidTo = u.BalancePaidTo
	}

	if u.Refund != nil {
		booking.Refund = *u.Refund
	}

	if u.Remarks != "" {
		booking.Remarks = u.Remarks
	}

	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user
}

// SearchBookingsRequest mirrors the query parameters of the list endpoint.
// Empty criteria select the default view: current and upcoming stays,
// cancellations excluded.
type SearchBookingsRequest struct {
	CustomerName  string `json:"customer_name"  validate:"omitempty,max=100"`
	BookingID     string `json:"booking_id"     validate:"omitempty,max=100"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
	CheckInDate   string `json:"check_in_date"  validate:"omitempty,max=10"`
	CheckOutDate  string `json:"check_out_date" validate:"omitempty,max=10"`
	ExactDate     bool   `json:"exact_date"`
}

func (s *SearchBookingsRequest) ToCriteria() collection.Criteria {
	return collection.Criteria{
		CustomerName:  s.CustomerName,
		BookingID:     s.BookingID,
		ContactNumber: s.ContactNumber,
		CheckInDate:   s.CheckInDate,
		CheckOutDate:  s.CheckOutDate,
		ExactDate:     s.ExactDate,
	}
}

type BookingResponse struct {
	ID              string  `json:"id,omitempty"`
	BookingID       string  `json:"booking_id"`
	RoomName        string  `json:"room_name"`
	CustomerName    string  `json:"customer_name"`
	ContactNumber   string  `json:"contact_number"`
	CustomerEmail   string  `json:"customer_email"`
	NumberOfPeople  int     `json:"number_of_people"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	NumberOfNights  int     `json:"number_of_nights"`
	Status          string  `json:"status"`
	BookingDate     string  `json:"booking_date"`
	SourceOfBooking string  `json:"source_of_booking"`
	RoomAmount      float64 `json:"room_amount"`
	Food            float64 `json:"food"`
	CampFire        float64 `json:"camp_fire"`
	OtherServices   float64 `json:"other_services"`
	AdvancePaid     float64 `json:"advance_paid"`
	AdvancePaidTo   string  `json:"advance_paid_to"`
	BalanceToPay    float64 `json:"balance_to_pay"`
	BalancePaidTo   string  `json:"balance_paid_to"`
	Commission      float64 `json:"commission"`
	TWWRevenue      float64 `json:"tww_revenue"`
	Refund          float64 `json:"refund"`
	Remarks         string  `json:"remarks"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingID = booking.BookingID
	r.RoomName = booking.RoomName
	r.CustomerName = booking.CustomerName
	r.ContactNumber = booking.ContactNumber
	r.CustomerEmail = booking.CustomerEmail
	r.NumberOfPeople = booking.NumberOfPeople
	r.CheckInDate = booking.CheckInDate
	r.CheckOutDate = booking.CheckOutDate
	r.NumberOfNights = booking.NumberOfNights
	r.Status = booking.Status
	r.BookingDate = booking.BookingDate
	r.SourceOfBooking = booking.SourceOfBooking
	r.RoomAmount = booking.RoomAmount
	r.Food = booking.Food
	r.CampFire = booking.CampFire
	r.OtherServices = booking.OtherServices
	r.AdvancePaid = booking.AdvancePaid
	r.AdvancePaidTo = booking.AdvancePaidTo
	r.BalanceToPay = booking.BalanceToPay
	r.BalancePaidTo = booking.BalancePaidTo
	r.Commission = booking.Commission
	r.TWWRevenue = booking.TWWRevenue
	r.Refund = booking.Refund
	r.Remarks = booking.Remarks
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, booking := range models {
		r.Bookings[i].FromModel(booking)
	}
}

type ChartResponse struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Cells []chart.Cell `json:"cells"`
}
