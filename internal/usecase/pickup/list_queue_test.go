package pickup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

func TestListQueue_BucketsAndAllowedActions(t *testing.T) {
	now := time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)
	store := domain.NewStore(clock.Fixed(now))

	add := func(id, status string, start time.Time) {
		store.Add(models.Appointment{
			ID:                id,
			PickupReference:   "PU-2024-" + id,
			LocationID:        "loc-1",
			StartAt:           start,
			EndAt:             start.Add(30 * time.Minute),
			Status:            status,
			CustomerFirstName: "Test",
			CustomerLastName:  "Customer",
			CustomerEmail:     "test@email.com",
			CustomerPhone:     "(303) 555-0000",
		})
	}

	add("past", string(domain.StatusCheckedIn), now.Add(-time.Hour))
	add("soon", string(domain.StatusConfirmed), now.Add(10*time.Minute))
	add("later", string(domain.StatusScheduled), now.Add(2*time.Hour))

	uc := NewListQueue(store, clock.Fixed(now))
	out := uc.Execute(context.Background(), "", domain.StatusFilterAll)

	require.Len(t, out, 3)

	// Ascending by start time.
	assert.Equal(t, "past", out[0].ID)
	assert.Equal(t, "soon", out[1].ID)
	assert.Equal(t, "later", out[2].ID)

	assert.Equal(t, "past", out[0].TimeStatus)
	assert.Equal(t, "upcoming", out[1].TimeStatus)
	assert.Equal(t, "future", out[2].TimeStatus)

	assert.Equal(t, []string{"Ready", "Completed", "NoShow"}, out[0].AllowedNextStatuses)
	assert.Equal(t, []string{"CheckedIn", "Canceled"}, out[1].AllowedNextStatuses)
	assert.Equal(t, []string{"Confirmed", "CheckedIn", "Canceled"}, out[2].AllowedNextStatuses)
}

func TestListQueue_StatusFilter(t *testing.T) {
	now := time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)
	store := domain.NewStore(clock.Fixed(now))

	store.Add(models.Appointment{ID: "a", StartAt: now.Add(time.Hour), Status: string(domain.StatusScheduled)})
	store.Add(models.Appointment{ID: "b", StartAt: now.Add(time.Hour), Status: string(domain.StatusConfirmed)})

	uc := NewListQueue(store, clock.Fixed(now))

	out := uc.Execute(context.Background(), "", string(domain.StatusConfirmed))
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}
