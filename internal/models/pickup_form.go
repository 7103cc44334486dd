package models

// PickupFormData is the wizard draft: filled in step by step and only
// turned into an Appointment on final confirmation.
type PickupFormData struct {
	PickupReference string    `json:"pickup_reference"`
	LocationID      string    `json:"location_id"`
	SelectedDate    string    `json:"selected_date"`
	SelectedSlot    *TimeSlot `json:"selected_slot"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	VehicleInfo string `json:"vehicle_info"`
	Notes       string `json:"notes"`
}
