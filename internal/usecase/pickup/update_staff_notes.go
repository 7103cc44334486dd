package pickup

import (
	"context"

	"github.com/ridgelinesupply/pickup-scheduler/internal/audit"
	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

type UpdateStaffNotes struct {
	store *domain.Store
	audit *audit.Dispatcher
}

func NewUpdateStaffNotes(
	store *domain.Store,
	audit *audit.Dispatcher,
) *UpdateStaffNotes {
	return &UpdateStaffNotes{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateStaffNotes) Execute(
	ctx context.Context,
	actor string,
	appointmentID string,
	notes string,
) (models.Appointment, error) {

	if _, ok := uc.store.Get(appointmentID); !ok {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}

	uc.store.UpdateStaffNotes(appointmentID, notes)

	updated, _ := uc.store.Get(appointmentID)

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_staff_notes_updated",
		Entity:   "appointment",
		EntityID: updated.ID,
	})

	return updated, nil
}
