package seed

import (
	"time"

	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	"github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// Appointments loads the demo queue into the store, pinned to today so
// the dashboard has something to show on a fresh process.
func Appointments(store *pickup.Store, clk clock.Clock) {
	now := clk.Now()
	day := clock.StartOfDay(now)

	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	demo := []models.Appointment{
		{
			ID:                "apt-001",
			PickupReference:   "PU-2024-001",
			LocationID:        "loc-1",
			StartAt:           at(10, 0),
			EndAt:             at(10, 30),
			Status:            string(pickup.StatusScheduled),
			CustomerFirstName: "John",
			CustomerLastName:  "Smith",
			CustomerEmail:     "john.smith@email.com",
			CustomerPhone:     "(303) 555-0123",
			VehicleInfo:       "Blue Ford F-150",
			CustomerNotes:     "Large furniture items",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                "apt-002",
			PickupReference:   "PU-2024-002",
			LocationID:        "loc-1",
			StartAt:           at(11, 0),
			EndAt:             at(11, 30),
			Status:            string(pickup.StatusCheckedIn),
			CustomerFirstName: "Sarah",
			CustomerLastName:  "Johnson",
			CustomerEmail:     "sarah.j@email.com",
			CustomerPhone:     "(303) 555-0456",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                "apt-003",
			PickupReference:   "PU-2024-003",
			LocationID:        "loc-1",
			StartAt:           at(11, 30),
			EndAt:             at(12, 0),
			Status:            string(pickup.StatusConfirmed),
			CustomerFirstName: "Michael",
			CustomerLastName:  "Davis",
			CustomerEmail:     "mdavis@email.com",
			CustomerPhone:     "(303) 555-0789",
			VehicleInfo:       "White Chevy Silverado",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                "apt-004",
			PickupReference:   "PU-2024-004",
			LocationID:        "loc-1",
			StartAt:           at(14, 0),
			EndAt:             at(14, 30),
			Status:            string(pickup.StatusScheduled),
			CustomerFirstName: "Emily",
			CustomerLastName:  "Wilson",
			CustomerEmail:     "emily.w@email.com",
			CustomerPhone:     "(303) 555-0321",
			CustomerNotes:     "Will need forklift assistance",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	for _, ap := range demo {
		store.Add(ap)
	}
}
