package pickup

import (
	"context"

	"github.com/ridgelinesupply/pickup-scheduler/internal/audit"
	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// UpdateStatus is the action layer for staff transitions: it enforces the
// forward-progress lattice before touching the permissive store.
type UpdateStatus struct {
	store *domain.Store
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	store *domain.Store,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor string,
	appointmentID string,
	next domain.Status,
) (models.Appointment, error) {

	ap, ok := uc.store.Get(appointmentID)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), next); err != nil {
		return models.Appointment{}, err
	}

	uc.store.UpdateStatus(appointmentID, next)

	updated, _ := uc.store.Get(appointmentID)

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: updated.ID,
		Metadata: map[string]string{
			"from": ap.Status,
			"to":   string(next),
		},
	})

	return updated, nil
}
