// Package sheet converts between the flat 26-column spreadsheet rows of the
// legacy booking sheet and the canonical Booking record, and resolves which
// existing row an edited booking should overwrite.
package sheet

import (
	"strconv"
	"westwood/internal/domains/booking/finance"
	"westwood/internal/domains/booking/model"
)

// Column positions in the booking sheet. The layout is fixed; columns 13 and
// 17 are legacy discount and extra-bed slots that are always written as 0.
const (
	colBookingID = iota
	colRoomName
	colCustomerName
	colContactNumber
	colCustomerEmail
	colNumberOfPeople
	colCheckInDate
	colCheckOutDate
	colNumberOfNights
	colStatus
	colBookingDate
	colSource
	colRoomAmount
	colReservedDiscount
	colFood
	colCampFire
	colOtherServices
	colReservedExtraBed
	colAdvancePaid
	colAdvancePaidTo
	colBalanceToPay
	colBalancePaidTo
	colCommission
	colTWWRevenue
	colRemarks
	colRefund

	// RowWidth is the full column count of the booking sheet.
	RowWidth
)

// RowToBooking maps one sheet row onto a Booking. Rows shorter than RowWidth
// are tolerated; missing cells default to the field's zero value.
func RowToBooking(row []string) model.Booking {
	return model.Booking{
		BookingID:       cell(row, colBookingID),
		RoomName:        cell(row, colRoomName),
		CustomerName:    cell(row, colCustomerName),
		ContactNumber:   cell(row, colContactNumber),
		CustomerEmail:   cell(row, colCustomerEmail),
		NumberOfPeople:  int(finance.ParseNumber(cell(row, colNumberOfPeople))),
		CheckInDate:     cell(row, colCheckInDate),
		CheckOutDate:    cell(row, colCheckOutDate),
		NumberOfNights:  int(finance.ParseNumber(cell(row, colNumberOfNights))),
		Status:          cell(row, colStatus),
		BookingDate:     cell(row, colBookingDate),
		SourceOfBooking: cell(row, colSource),
		RoomAmount:      finance.ParseNumber(cell(row, colRoomAmount)),
		Food:            finance.ParseNumber(cell(row, colFood)),
		CampFire:        finance.ParseNumber(cell(row, colCampFire)),
		OtherServices:   finance.ParseNumber(cell(row, colOtherServices)),
		AdvancePaid:     finance.ParseNumber(cell(row, colAdvancePaid)),
		AdvancePaidTo:   cell(row, colAdvancePaidTo),
		BalanceToPay:    finance.ParseNumber(cell(row, colBalanceToPay)),
		BalancePaidTo:   cell(row, colBalancePaidTo),
		Commission:      finance.ParseNumber(cell(row, colCommission)),
		TWWRevenue:      finance.ParseNumber(cell(row, colTWWRevenue)),
		Remarks:         cell(row, colRemarks),
		Refund:          finance.ParseNumber(cell(row, colRefund)),
	}
}

// BookingToRow produces the fixed-width row the sheet expects. Rows are never
// mutated in place upstream; every write regenerates the full row from the
// booking. Unset fields pass through as nil so the sheet cell stays blank;
// the two reserved columns are always literal 0.
func BookingToRow(b model.Booking) []any {
	row := make([]any, RowWidth)

	row[colBookingID] = stringCell(b.BookingID)
	row[colRoomName] = stringCell(b.RoomName)
	row[colCustomerName] = stringCell(b.CustomerName)
	row[colContactNumber] = stringCell(b.ContactNumber)
	row[colCustomerEmail] = stringCell(b.CustomerEmail)
	row[colNumberOfPeople] = intCell(b.NumberOfPeople)
	row[colCheckInDate] = stringCell(b.CheckInDate)
	row[colCheckOutDate] = stringCell(b.CheckOutDate)
	row[colNumberOfNights] = intCell(b.NumberOfNights)
	row[colStatus] = stringCell(b.Status)
	row[colBookingDate] = stringCell(b.BookingDate)
	row[colSource] = stringCell(b.SourceOfBooking)
	row[colRoomAmount] = numberCell(b.RoomAmount)
	row[colReservedDiscount] = 0
	row[colFood] = numberCell(b.Food)
	row[colCampFire] = numberCell(b.CampFire)
	row[colOtherServices] = numberCell(b.OtherServices)
	row[colReservedExtraBed] = 0
	row[colAdvancePaid] = numberCell(b.AdvancePaid)
	row[colAdvancePaidTo] = stringCell(b.AdvancePaidTo)
	row[colBalanceToPay] = numberCell(b.BalanceToPay)
	row[colBalancePaidTo] = stringCell(b.BalancePaidTo)
	row[colCommission] = numberCell(b.Commission)
	row[colTWWRevenue] = numberCell(b.TWWRevenue)
	row[colRemarks] = stringCell(b.Remarks)
	row[colRefund] = numberCell(b.Refund)

	return row
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}

	return row[index]
}

func stringCell(value string) any {
	if value == "" {
		return nil
	}

	return value
}

func intCell(value int) any {
	if value == 0 {
		return nil
	}

	return strconv.Itoa(value)
}

func numberCell(value float64) any {
	if value == 0 {
		return nil
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}
