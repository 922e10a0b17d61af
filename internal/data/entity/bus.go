package entity

type BusLayout string

const (
	BusLayout2x1 BusLayout = "2x1"
	BusLayout2x2 BusLayout = "2x2"
	BusLayout2x3 BusLayout = "2x3"
)

// SeatsPerRow returns how many seats one row holds for this layout.
func (l BusLayout) SeatsPerRow() int {
	switch l {
	case BusLayout2x1:
		return 3
	case BusLayout2x3:
		return 5
	default:
		return 4
	}
}

type Bus struct {
	Base
	Name        string    `db:"name"`
	PlateNumber string    `db:"plate_number"`
	TotalSeats  int       `db:"total_seats"`
	LayoutType  BusLayout `db:"layout_type"`
	IsActive    bool      `db:"is_active"`
}
