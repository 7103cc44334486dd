package pickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

func completeDraft() *Draft {
	d := NewDraft()
	d.SetReference("PU-2024-010")
	d.SetLocation("loc-1")
	d.SetSchedule("2024-03-11", &models.TimeSlot{
		ID:        "slot-1000",
		StartTime: "10:00",
		EndTime:   "10:30",
	})
	d.SetContact("John", "Smith", "john.smith@email.com", "(303) 555-0123")
	d.SetExtras("Blue Ford F-150", "Large furniture items")
	return d
}

func TestDraft_ValidateRequiredFields(t *testing.T) {
	d := NewDraft()

	errs := d.Validate()
	assert.Equal(t, "First name is required", errs["first_name"])
	assert.Equal(t, "Last name is required", errs["last_name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.Contains(t, errs, "pickup_reference")
	assert.Contains(t, errs, "location_id")
	assert.Contains(t, errs, "selected_date")
	assert.Contains(t, errs, "selected_slot")
}

func TestDraft_ValidateEmailShape(t *testing.T) {
	d := completeDraft()

	for _, bad := range []string{"plainaddress", "missing@tld", "spaces in@mail.com", "@no-local.com"} {
		d.SetContact("John", "Smith", bad, "(303) 555-0123")
		errs := d.Validate()
		assert.Equal(t, "Please enter a valid email", errs["email"], "email %q", bad)
	}

	d.SetContact("John", "Smith", "john.smith@email.com", "(303) 555-0123")
	assert.Empty(t, d.Validate())
}

func TestDraft_TrimsInput(t *testing.T) {
	d := completeDraft()
	d.SetContact("  John ", " Smith ", " john.smith@email.com ", " (303) 555-0123 ")

	data := d.Data()
	assert.Equal(t, "John", data.FirstName)
	assert.Equal(t, "Smith", data.LastName)
	assert.Equal(t, "john.smith@email.com", data.Email)
	assert.Equal(t, "(303) 555-0123", data.Phone)
}

func TestDraft_Commit(t *testing.T) {
	d := completeDraft()
	now := time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)

	ap, err := d.Commit("apt-1710082800000", now)
	require.NoError(t, err)

	assert.Equal(t, "apt-1710082800000", ap.ID)
	assert.Equal(t, "PU-2024-010", ap.PickupReference)
	assert.Equal(t, "loc-1", ap.LocationID)
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Equal(t, time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC), ap.StartAt)
	assert.Equal(t, time.Date(2024, time.March, 11, 10, 30, 0, 0, time.UTC), ap.EndAt)
	assert.True(t, ap.StartAt.Before(ap.EndAt))
	assert.Equal(t, now, ap.CreatedAt)
	assert.Equal(t, now, ap.UpdatedAt)
	assert.Equal(t, "Blue Ford F-150", ap.VehicleInfo)
	assert.Equal(t, "Large furniture items", ap.CustomerNotes)
	assert.Empty(t, ap.StaffNotes)
}

func TestDraft_CommitIncomplete(t *testing.T) {
	d := NewDraft()

	_, err := d.Commit("apt-1", time.Now())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "incomplete_draft"))
}

func TestDraft_CommitRejectsInvertedSlot(t *testing.T) {
	d := completeDraft()
	d.SetSchedule("2024-03-11", &models.TimeSlot{StartTime: "10:30", EndTime: "10:00"})

	_, err := d.Commit("apt-1", time.Now())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestDraft_Reset(t *testing.T) {
	d := completeDraft()
	d.Reset()

	assert.Equal(t, models.PickupFormData{}, d.Data())
	assert.NotEmpty(t, d.Validate())
}
