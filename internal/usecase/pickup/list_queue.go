package pickup

import (
	"context"

	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/dto"
)

type ListQueue struct {
	store *domain.Store
	clock clock.Clock
}

func NewListQueue(store *domain.Store, clk clock.Clock) *ListQueue {
	return &ListQueue{
		store: store,
		clock: clk,
	}
}

func (uc *ListQueue) Execute(
	ctx context.Context,
	query string,
	statusFilter string,
) []dto.QueueItemDTO {

	now := uc.clock.Now()

	matched := domain.BuildQueue(
		uc.store.List(),
		domain.QueueFilter{Query: query, Status: statusFilter},
		now,
	)

	out := make([]dto.QueueItemDTO, 0, len(matched))
	for _, ap := range matched {
		next := domain.AllowedTransitions(domain.Status(ap.Status))
		allowed := make([]string, len(next))
		for i, s := range next {
			allowed[i] = string(s)
		}

		out = append(out, dto.QueueItemDTO{
			ID:                  ap.ID,
			PickupReference:     ap.PickupReference,
			LocationID:          ap.LocationID,
			StartAt:             ap.StartAt,
			EndAt:               ap.EndAt,
			Status:              ap.Status,
			CustomerFirstName:   ap.CustomerFirstName,
			CustomerLastName:    ap.CustomerLastName,
			CustomerEmail:       ap.CustomerEmail,
			CustomerPhone:       ap.CustomerPhone,
			VehicleInfo:         ap.VehicleInfo,
			CustomerNotes:       ap.CustomerNotes,
			StaffNotes:          ap.StaffNotes,
			TimeStatus:          string(domain.Bucket(ap.StartAt, now)),
			AllowedNextStatuses: allowed,
		})
	}

	return out
}
