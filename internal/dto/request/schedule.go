package request

type CreateScheduleRequest struct {
	RouteID       string `json:"route_id" validate:"required,uuid4"`
	BusID         string `json:"bus_id" validate:"required,uuid4"`
	TravelDate    string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	DepartureTime string `json:"departure_time" validate:"required,datetime=15:04"`
	ArrivalTime   string `json:"arrival_time" validate:"required,datetime=15:04"`
}

type UpdateScheduleRequest struct {
	RouteID       *string `json:"route_id,omitempty" validate:"omitempty,uuid4"`
	BusID         *string `json:"bus_id,omitempty" validate:"omitempty,uuid4"`
	TravelDate    *string `json:"travel_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DepartureTime *string `json:"departure_time,omitempty" validate:"omitempty,datetime=15:04"`
	ArrivalTime   *string `json:"arrival_time,omitempty" validate:"omitempty,datetime=15:04"`
}

type CancelScheduleRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=255"`
}
