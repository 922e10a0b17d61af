package request

type CreateBusRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	PlateNumber string `json:"plate_number" validate:"required,min=4,max=20"`
	TotalSeats  int    `json:"total_seats" validate:"required,min=1,max=100"`
	LayoutType  string `json:"layout_type" validate:"required,oneof=2x1 2x2 2x3"`
}

type UpdateBusRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	PlateNumber *string `json:"plate_number,omitempty" validate:"omitempty,min=4,max=20"`
	TotalSeats  *int    `json:"total_seats,omitempty" validate:"omitempty,min=1,max=100"`
	LayoutType  *string `json:"layout_type,omitempty" validate:"omitempty,oneof=2x1 2x2 2x3"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
