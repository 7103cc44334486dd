package pickup

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// ======================================================
// CAPACITY SOURCE
// ======================================================

// CapacitySource supplies the remaining capacity for a slot starting at
// the given instant. Capacity is read fresh on every generation pass and
// never decremented by bookings; a real ledger would implement this same
// interface.
type CapacitySource interface {
	Capacity(slotStart time.Time) int
}

type CapacityFunc func(slotStart time.Time) int

func (f CapacityFunc) Capacity(slotStart time.Time) int {
	return f(slotStart)
}

// NewRandomCapacity draws capacities uniformly from [0, max). Safe for
// concurrent use.
func NewRandomCapacity(max int) CapacitySource {
	if max <= 0 {
		max = DefaultSlotCapacity
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var mu sync.Mutex
	return CapacityFunc(func(time.Time) int {
		mu.Lock()
		defer mu.Unlock()
		return rng.Intn(max)
	})
}

// ======================================================
// GENERATOR
// ======================================================

const (
	SlotDuration        = 30 * time.Minute
	OpeningHour         = 9
	ClosingHour         = 17
	SaturdayClosingHour = 14
	DefaultSlotCapacity = 5

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Generator struct {
	source    CapacitySource
	blackouts map[string]struct{}
}

func NewGenerator(source CapacitySource) *Generator {
	if source == nil {
		source = NewRandomCapacity(DefaultSlotCapacity)
	}
	return &Generator{
		source:    source,
		blackouts: map[string]struct{}{},
	}
}

// Blackout marks calendar dates (YYYY-MM-DD) as closed: their slots are
// still enumerated but none is bookable.
func (g *Generator) Blackout(dates ...string) {
	for _, d := range dates {
		g.blackouts[d] = struct{}{}
	}
}

func (g *Generator) IsBlackedOut(date time.Time) bool {
	_, ok := g.blackouts[date.Format(dateLayout)]
	return ok
}

// TimeSlots enumerates the 30-minute slots for one calendar day.
// Sundays are closed; Saturdays close at 14:00, other days at 17:00.
func (g *Generator) TimeSlots(date time.Time) []models.TimeSlot {
	slots := []models.TimeSlot{}

	weekday := date.Weekday()
	if weekday == time.Sunday {
		return slots
	}

	closing := ClosingHour
	if weekday == time.Saturday {
		closing = SaturdayClosingHour
	}

	blackedOut := g.IsBlackedOut(date)

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		OpeningHour, 0, 0, 0,
		date.Location(),
	)
	dayEnd := time.Date(
		date.Year(), date.Month(), date.Day(),
		closing, 0, 0, 0,
		date.Location(),
	)

	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(SlotDuration) {
		capacity := g.source.Capacity(cur)
		if capacity < 0 || blackedOut {
			capacity = 0
		}

		slots = append(slots, models.TimeSlot{
			ID:                "slot-" + cur.Format("1504"),
			StartTime:         cur.Format(timeLayout),
			EndTime:           cur.Add(SlotDuration).Format(timeLayout),
			Available:         capacity > 0,
			CapacityRemaining: capacity,
		})
	}

	return slots
}

// Availability covers days consecutive calendar days starting at start.
// Total over its inputs: any date works, non-positive day counts yield an
// empty sequence.
func (g *Generator) Availability(start time.Time, days int) []models.DayAvailability {
	availability := []models.DayAvailability{}

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		availability = append(availability, models.DayAvailability{
			Date:         date.Format(dateLayout),
			Slots:        g.TimeSlots(date),
			IsBlackedOut: g.IsBlackedOut(date),
		})
	}

	return availability
}
