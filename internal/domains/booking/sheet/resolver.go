package sheet

import "westwood/internal/domains/booking/model"

// FindMatchingRowIndex returns the index of the row an update should
// overwrite, or -1 when the booking must be appended as new.
//
// BookingIDs are derived from room and dates and are not unique across a
// cancel-and-rebook, so the match is exact on all four identity fields and
// ties go to the last occurrence, which reflects the most recent edit.
func FindMatchingRowIndex(rows []model.Booking, candidate model.Booking) int {
	if candidate.BookingID == "" || candidate.RoomName == "" ||
		candidate.CheckInDate == "" || candidate.CheckOutDate == "" {
		return -1
	}

	match := -1

	for i, row := range rows {
		if row.BookingID == candidate.BookingID &&
			row.RoomName == candidate.RoomName &&
			row.CheckInDate == candidate.CheckInDate &&
			row.CheckOutDate == candidate.CheckOutDate {
			match = i
		}
	}

	return match
}
