package pickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCapacity(n int) CapacitySource {
	return CapacityFunc(func(time.Time) int { return n })
}

var (
	// 2024-03-09 was a Saturday, 2024-03-10 a Sunday, 2024-03-11 a Monday.
	saturday = time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
)

func TestTimeSlots_SundayClosed(t *testing.T) {
	g := NewGenerator(fixedCapacity(3))

	require.Equal(t, time.Sunday, sunday.Weekday())
	assert.Empty(t, g.TimeSlots(sunday))
}

func TestTimeSlots_WeekdayCount(t *testing.T) {
	g := NewGenerator(fixedCapacity(3))

	slots := g.TimeSlots(monday)
	require.Len(t, slots, 16)

	assert.Equal(t, "slot-0900", slots[0].ID)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)

	last := slots[len(slots)-1]
	assert.Equal(t, "16:30", last.StartTime)
	assert.Equal(t, "17:00", last.EndTime)
}

func TestTimeSlots_SaturdayShortDay(t *testing.T) {
	g := NewGenerator(fixedCapacity(3))

	slots := g.TimeSlots(saturday)
	require.Len(t, slots, 10)

	last := slots[len(slots)-1]
	assert.Equal(t, "13:30", last.StartTime)
	assert.Equal(t, "14:00", last.EndTime)
}

func TestTimeSlots_AvailableMatchesCapacity(t *testing.T) {
	g := NewGenerator(NewRandomCapacity(DefaultSlotCapacity))

	for _, slot := range g.TimeSlots(monday) {
		assert.GreaterOrEqual(t, slot.CapacityRemaining, 0)
		assert.Less(t, slot.CapacityRemaining, DefaultSlotCapacity)
		assert.Equal(t, slot.CapacityRemaining > 0, slot.Available, "slot %s", slot.ID)
	}
}

func TestTimeSlots_ZeroCapacityUnavailable(t *testing.T) {
	g := NewGenerator(fixedCapacity(0))

	for _, slot := range g.TimeSlots(monday) {
		assert.False(t, slot.Available)
		assert.Zero(t, slot.CapacityRemaining)
	}
}

func TestAvailability_CoversConsecutiveDays(t *testing.T) {
	g := NewGenerator(fixedCapacity(2))

	days := g.Availability(saturday, 4)
	require.Len(t, days, 4)

	assert.Equal(t, "2024-03-09", days[0].Date)
	assert.Equal(t, "2024-03-10", days[1].Date)
	assert.Equal(t, "2024-03-11", days[2].Date)
	assert.Equal(t, "2024-03-12", days[3].Date)

	// The Sunday entry exists but carries no slots.
	assert.Empty(t, days[1].Slots)
	assert.NotEmpty(t, days[2].Slots)
}

func TestAvailability_NonPositiveDayCounts(t *testing.T) {
	g := NewGenerator(fixedCapacity(2))

	assert.Empty(t, g.Availability(monday, 0))
	assert.Empty(t, g.Availability(monday, -3))
}

func TestAvailability_BlackoutForcesUnavailable(t *testing.T) {
	g := NewGenerator(fixedCapacity(4))
	g.Blackout("2024-03-11")

	days := g.Availability(monday, 1)
	require.Len(t, days, 1)
	require.True(t, days[0].IsBlackedOut)

	require.Len(t, days[0].Slots, 16)
	for _, slot := range days[0].Slots {
		assert.False(t, slot.Available)
		assert.Zero(t, slot.CapacityRemaining)
	}
}
