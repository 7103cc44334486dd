package models

type TimeSlot struct {
	ID                string `json:"id"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Available         bool   `json:"available"`
	CapacityRemaining int    `json:"capacity_remaining"`
}

type DayAvailability struct {
	Date         string     `json:"date"`
	Slots        []TimeSlot `json:"slots"`
	IsBlackedOut bool       `json:"is_blacked_out"`
}
