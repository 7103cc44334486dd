package pickup

import (
	"context"
	"fmt"

	"github.com/ridgelinesupply/pickup-scheduler/internal/audit"
	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/locations"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SchedulePickupInput struct {
	PickupReference string
	LocationID      string

	Date string
	Slot *models.TimeSlot

	FirstName string
	LastName  string
	Email     string
	Phone     string

	VehicleInfo string
	Notes       string
}

// ValidationError carries the per-field problems the wizard shows next
// to each input.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	return "validation_failed"
}

// ======================================================
// USE CASE
// ======================================================

type SchedulePickup struct {
	store *domain.Store
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewSchedulePickup(
	store *domain.Store,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *SchedulePickup {
	return &SchedulePickup{
		store: store,
		audit: audit,
		clock: clk,
	}
}

func (uc *SchedulePickup) Execute(
	ctx context.Context,
	in SchedulePickupInput,
) (models.Appointment, error) {

	draft := domain.NewDraft()
	draft.SetReference(in.PickupReference)
	draft.SetLocation(in.LocationID)
	draft.SetSchedule(in.Date, in.Slot)
	draft.SetContact(in.FirstName, in.LastName, in.Email, in.Phone)
	draft.SetExtras(in.VehicleInfo, in.Notes)

	if errs := draft.Validate(); len(errs) > 0 {
		return models.Appointment{}, ValidationError{Fields: errs}
	}

	if !locations.Exists(in.LocationID) {
		return models.Appointment{}, httperr.ErrBusiness("location_not_found")
	}

	now := uc.clock.Now()
	id := fmt.Sprintf("apt-%d", now.UnixMilli())

	ap, err := draft.Commit(id, now)
	if err != nil {
		return models.Appointment{}, err
	}

	uc.store.Add(ap)
	draft.Reset()

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"pickup_reference": ap.PickupReference,
			"location_id":      ap.LocationID,
		},
	})

	return ap, nil
}
