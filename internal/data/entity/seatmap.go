package entity

import "fmt"

// SeatPosition is a derived seat on a bus layout. Seats are not persisted;
// the layout is recomputed from the bus capacity and layout type, so the same
// bus always yields the same numbering.
type SeatPosition struct {
	Number string // e.g. "A1", "C3"
	Row    int    // 1-based
	Column int    // 1-based
}

// BuildSeatLayout derives the ordered seat list for a bus: row letters A..Z
// then AA.., columns numbered from the kerb side. Ordering is row-major,
// matching the seat map the API returns. A capacity that does not fill the
// last row produces a short final row.
func BuildSeatLayout(totalSeats int, layout BusLayout) []SeatPosition {
	if totalSeats <= 0 {
		return nil
	}

	perRow := layout.SeatsPerRow()
	seats := make([]SeatPosition, 0, totalSeats)

	for i := 0; i < totalSeats; i++ {
		row := i/perRow + 1
		col := i%perRow + 1
		seats = append(seats, SeatPosition{
			Number: fmt.Sprintf("%s%d", rowLabel(row), col),
			Row:    row,
			Column: col,
		})
	}

	return seats
}

// LayoutContains reports whether seatNumber addresses a seat on this layout.
func LayoutContains(totalSeats int, layout BusLayout, seatNumber string) bool {
	for _, seat := range BuildSeatLayout(totalSeats, layout) {
		if seat.Number == seatNumber {
			return true
		}
	}
	return false
}

// rowLabel converts a 1-based row index to its letter label: A..Z, AA..AZ, ...
func rowLabel(row int) string {
	label := ""
	for row > 0 {
		row--
		label = string(rune('A'+row%26)) + label
		row /= 26
	}
	return label
}
