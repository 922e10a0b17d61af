package response

type RouteSalesRow struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Bookings     int64   `json:"bookings"`
	Cancelled    int64   `json:"cancelled"`
	TotalRevenue float64 `json:"total_revenue"`
}

type SalesReportResponse struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	TotalBookings int64           `json:"total_bookings"`
	TotalRevenue  float64         `json:"total_revenue"`
	Routes        []RouteSalesRow `json:"routes"`
}
