package models

// Pickup location. Reference data, seeded at startup and never mutated.
type Location struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Instructions string `json:"instructions"`
}
