package pickup

import (
	"context"
	"time"

	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// MaxAvailabilityDays caps how far ahead one request may look.
const MaxAvailabilityDays = 60

type GetAvailability struct {
	gen *domain.Generator
}

func NewGetAvailability(gen *domain.Generator) *GetAvailability {
	return &GetAvailability{gen: gen}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	start time.Time,
	days int,
) []models.DayAvailability {

	if days < 0 {
		days = 0
	}
	if days > MaxAvailabilityDays {
		days = MaxAvailabilityDays
	}

	return uc.gen.Availability(start, days)
}

func (uc *GetAvailability) ExecuteDay(
	ctx context.Context,
	date time.Time,
) []models.TimeSlot {
	return uc.gen.TimeSlots(date)
}
