// Package chart derives the per-day, per-room availability grid the console
// renders. Cells are ephemeral: recomputed for every view, never persisted.
package chart

import (
	"time"
	"westwood/internal/domains/booking/model"
	"westwood/shared/constant"
)

// Cell kinds: ACTUAL cells back a real booking, INJECTED cells are
// synthesized placeholders for empty slots.
const (
	KindActual   = "ACTUAL"
	KindInjected = "INJECTED"
)

// Cell is one (date, room) entry of the availability grid.
type Cell struct {
	Date        string         `json:"date"`
	RoomName    string         `json:"room_name"`
	Kind        string         `json:"kind"`
	ChartStatus string         `json:"chart_status"`
	Color       string         `json:"color"`
	Booking     *model.Booking `json:"booking,omitempty"`
}

// Fixed display palette keyed by (past, status).
var presentColors = map[string]string{
	model.StatusConfirmed: "#2e7d32",
	model.StatusTentative: "#f9a825",
	model.StatusCancelled: "#c62828",
	model.StatusAvailable: "#e8f5e9",
	model.StatusClosed:    "#9e9e9e",
}

var pastColors = map[string]string{
	model.StatusConfirmed: "#a5d6a7",
	model.StatusTentative: "#ffe082",
	model.StatusCancelled: "#ef9a9a",
	model.StatusClosed:    "#bdbdbd",
}

const defaultColor = "#eceff1"

// StatusColor resolves the display color for a cell status.
func StatusColor(past bool, status string) string {
	palette := presentColors
	if past {
		palette = pastColors
	}

	if color, ok := palette[status]; ok {
		return color
	}

	return defaultColor
}

// PrepareChartData emits exactly one cell per (date, room) pair: an ACTUAL
// cell when a booking occupies that room on that night, an INJECTED
// placeholder otherwise. Past dates chart as Closed regardless of the
// booking's own status. Output length is always len(dates) x room count.
func PrepareChartData(bookings []model.Booking, dates []string, today time.Time) []Cell {
	occupancy := buildOccupancy(bookings)
	cutoff := today.Format(constant.CalendarDateFormat)
	rooms := model.RoomNames()

	cells := make([]Cell, 0, len(dates)*len(rooms))

	for _, date := range dates {
		past := date < cutoff

		for _, room := range rooms {
			cells = append(cells, buildCell(occupancy, date, room, past))
		}
	}

	return cells
}

func buildCell(occupancy map[string]*model.Booking, date, room string, past bool) Cell {
	if booking, ok := occupancy[date+"|"+room]; ok {
		status := booking.Status
		if past {
			status = model.StatusClosed
		}

		return Cell{
			Date:        date,
			RoomName:    room,
			Kind:        KindActual,
			ChartStatus: status,
			Color:       StatusColor(past, status),
			Booking:     booking,
		}
	}

	status := model.StatusAvailable
	if past {
		status = model.StatusClosed
	}

	return Cell{
		Date:        date,
		RoomName:    room,
		Kind:        KindInjected,
		ChartStatus: status,
		Color:       StatusColor(past, status),
	}
}

// buildOccupancy maps every stay night of every booking to its room. A stay
// covers check-in inclusive to check-out exclusive; on collisions the later
// list entry wins, matching the last-match-wins update semantics.
func buildOccupancy(bookings []model.Booking) map[string]*model.Booking {
	occupancy := map[string]*model.Booking{}

	for i := range bookings {
		b := &bookings[i]

		checkIn, err := time.Parse(constant.CalendarDateFormat, b.CheckInDate)
		if err != nil {
			continue
		}

		checkOut, err := time.Parse(constant.CalendarDateFormat, b.CheckOutDate)
		if err != nil {
			continue
		}

		for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
			occupancy[night.Format(constant.CalendarDateFormat)+"|"+b.RoomName] = b
		}
	}

	return occupancy
}

// DateRange expands [from, to] into the inclusive list of calendar dates the
// chart spans. An invalid bound yields an empty range.
func DateRange(from, to string) []string {
	start, err := time.Parse(constant.CalendarDateFormat, from)
	if err != nil {
		return nil
	}

	end, err := time.Parse(constant.CalendarDateFormat, to)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constant.CalendarDateFormat))
	}

	return dates
}
