package entity

// RouteSales is an aggregate row for the admin sales report.
type RouteSales struct {
	Origin      string
	Destination string
	Bookings    int64
	Cancelled   int64
	Revenue     float64
}
