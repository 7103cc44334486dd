package pickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// tickClock advances one second on every read so UpdatedAt stamps are
// strictly increasing.
type tickClock struct {
	t time.Time
}

func (c *tickClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func testAppointment(id, ref string, start time.Time) models.Appointment {
	return models.Appointment{
		ID:                id,
		PickupReference:   ref,
		LocationID:        "loc-1",
		StartAt:           start,
		EndAt:             start.Add(30 * time.Minute),
		Status:            string(StatusScheduled),
		CustomerFirstName: "John",
		CustomerLastName:  "Smith",
		CustomerEmail:     "john.smith@email.com",
		CustomerPhone:     "(303) 555-0123",
		CreatedAt:         start,
		UpdatedAt:         start,
	}
}

func TestStore_AddIsAppendOnly(t *testing.T) {
	base := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)
	store := NewStore(&tickClock{t: base})

	a := testAppointment("apt-001", "PU-2024-001", base)
	b := testAppointment("apt-002", "PU-2024-002", base.Add(time.Hour))

	store.Add(a)
	store.Add(b)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0])
	assert.Equal(t, b, list[1])
}

func TestStore_UpdateStatusStampsUpdatedAt(t *testing.T) {
	base := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)
	store := NewStore(&tickClock{t: base})

	a := testAppointment("apt-001", "PU-2024-001", base)
	b := testAppointment("apt-002", "PU-2024-002", base.Add(time.Hour))
	store.Add(a)
	store.Add(b)

	store.UpdateStatus("apt-001", StatusConfirmed)

	updated, ok := store.Get("apt-001")
	require.True(t, ok)
	assert.Equal(t, string(StatusConfirmed), updated.Status)
	assert.True(t, updated.UpdatedAt.After(a.UpdatedAt))

	// Everything else untouched.
	other, ok := store.Get("apt-002")
	require.True(t, ok)
	assert.Equal(t, b, other)
}

func TestStore_UpdateStatusUnknownIDIsNoop(t *testing.T) {
	base := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)
	store := NewStore(&tickClock{t: base})

	store.Add(testAppointment("apt-001", "PU-2024-001", base))
	before := store.List()

	store.UpdateStatus("nonexistent", StatusCanceled)

	assert.Equal(t, before, store.List())
}

func TestStore_UpdateStatusAcceptsAnyValue(t *testing.T) {
	// The store is deliberately permissive; legality lives in the action
	// layer.
	base := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)
	store := NewStore(&tickClock{t: base})

	store.Add(testAppointment("apt-001", "PU-2024-001", base))
	store.UpdateStatus("apt-001", StatusCompleted)

	updated, _ := store.Get("apt-001")
	assert.Equal(t, string(StatusCompleted), updated.Status)
}

func TestStore_UpdateStaffNotes(t *testing.T) {
	base := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)
	store := NewStore(&tickClock{t: base})

	a := testAppointment("apt-001", "PU-2024-001", base)
	store.Add(a)

	store.UpdateStaffNotes("apt-001", "Pallet staged at dock 3")

	updated, _ := store.Get("apt-001")
	assert.Equal(t, "Pallet staged at dock 3", updated.StaffNotes)
	assert.True(t, updated.UpdatedAt.After(a.UpdatedAt))

	store.UpdateStaffNotes("nonexistent", "ignored")
	assert.Equal(t, 1, store.Len())
}
