// Package collection holds the in-memory list operations the console views
// run over already-fetched bookings: display ordering and field search.
package collection

import (
	"sort"
	"strings"
	"time"
	"westwood/internal/domains/booking/model"
	"westwood/shared/constant"
)

// SortBookings orders a copy of the list ascending by check-in date, ties
// broken by customer name. A missing or unparseable check-in sorts earliest.
// The input slice is not mutated.
func SortBookings(list []model.Booking) []model.Booking {
	sorted := make([]model.Booking, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		left := checkInTime(sorted[i])
		right := checkInTime(sorted[j])

		if left.Equal(right) {
			return sorted[i].CustomerName < sorted[j].CustomerName
		}

		return left.Before(right)
	})

	return sorted
}

func checkInTime(b model.Booking) time.Time {
	t, err := time.Parse(constant.CalendarDateFormat, b.CheckInDate)
	if err != nil {
		return time.Time{}
	}

	return t
}

// Criteria is a search request over the booking list. String fields match as
// case-insensitive substrings; dates match exactly or by prefix depending on
// ExactDate. An empty criteria set selects the default view.
type Criteria struct {
	CustomerName  string
	BookingID     string
	ContactNumber string
	CheckInDate   string
	CheckOutDate  string
	ExactDate     bool
}

func (c Criteria) empty() bool {
	return c.CustomerName == "" && c.BookingID == "" && c.ContactNumber == "" &&
		c.CheckInDate == "" && c.CheckOutDate == ""
}

// Search filters the list by the criteria. With no criteria it returns the
// default view: stays that have not yet ended, excluding cancellations.
// today anchors the default view so callers control the clock.
func Search(list []model.Booking, criteria Criteria, today time.Time) []model.Booking {
	results := []model.Booking{}

	if criteria.empty() {
		cutoff := today.Format(constant.CalendarDateFormat)

		for _, b := range list {
			if b.Status != model.StatusCancelled && b.CheckOutDate >= cutoff {
				results = append(results, b)
			}
		}

		return results
	}

	for _, b := range list {
		if matches(b, criteria) {
			results = append(results, b)
		}
	}

	return results
}

func matches(b model.Booking, criteria Criteria) bool {
	if !containsFold(b.CustomerName, criteria.CustomerName) {
		return false
	}

	if !containsFold(b.BookingID, criteria.BookingID) {
		return false
	}

	if !containsFold(b.ContactNumber, criteria.ContactNumber) {
		return false
	}

	if !dateMatches(b.CheckInDate, criteria.CheckInDate, criteria.ExactDate) {
		return false
	}

	return dateMatches(b.CheckOutDate, criteria.CheckOutDate, criteria.ExactDate)
}

func containsFold(value, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

func dateMatches(value, query string, exact bool) bool {
	if query == "" {
		return true
	}

	if exact {
		return value == query
	}

	return strings.HasPrefix(value, query)
}
