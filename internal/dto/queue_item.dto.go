package dto

import "time"

// QueueItemDTO is one row of the staff queue: the appointment plus the
// read-time urgency bucket and the transitions staff may offer next.
type QueueItemDTO struct {
	ID              string    `json:"id"`
	PickupReference string    `json:"pickup_reference"`
	LocationID      string    `json:"location_id"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	Status          string    `json:"status"`

	CustomerFirstName string `json:"customer_first_name"`
	CustomerLastName  string `json:"customer_last_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone"`

	VehicleInfo   string `json:"vehicle_info,omitempty"`
	CustomerNotes string `json:"customer_notes,omitempty"`
	StaffNotes    string `json:"staff_notes,omitempty"`

	TimeStatus          string   `json:"time_status"`
	AllowedNextStatuses []string `json:"allowed_next_statuses"`
}
