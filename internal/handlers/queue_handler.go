package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/ridgelinesupply/pickup-scheduler/internal/domain/pickup"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httpresp"
	"github.com/ridgelinesupply/pickup-scheduler/internal/middleware"
	ucPickup "github.com/ridgelinesupply/pickup-scheduler/internal/usecase/pickup"
)

// ======================================================
// HANDLER
// ======================================================

type QueueHandler struct {
	store     *domain.Store
	listQueue *ucPickup.ListQueue
	updStatus *ucPickup.UpdateStatus
	updNotes  *ucPickup.UpdateStaffNotes
}

func NewQueueHandler(
	store *domain.Store,
	listQueue *ucPickup.ListQueue,
	updStatus *ucPickup.UpdateStatus,
	updNotes *ucPickup.UpdateStaffNotes,
) *QueueHandler {
	return &QueueHandler{
		store:     store,
		listQueue: listQueue,
		updStatus: updStatus,
		updNotes:  updNotes,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateStaffNotesRequest struct {
	StaffNotes string `json:"staff_notes"`
}

// ======================================================
// QUEUE
// ======================================================

// List returns today's queue, filtered and sorted for the dashboard.
func (h *QueueHandler) List(c *gin.Context) {
	query := c.Query("query")
	status := c.DefaultQuery("status", domain.StatusFilterAll)

	httpresp.List(c, h.listQueue.Execute(c.Request.Context(), query, status))
}

// ListAll exposes the full collection, unfiltered.
func (h *QueueHandler) ListAll(c *gin.Context) {
	httpresp.List(c, h.store.List())
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *QueueHandler) UpdateStatus(c *gin.Context) {
	actor := c.GetString(middleware.ContextStaffEmail)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.updStatus.Execute(c.Request.Context(), actor, id, domain.Status(req.Status))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "No appointment with that id.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.Conflict(c, "invalid_transition", "That status change is not allowed from the current state.")
		case httperr.IsBusiness(err, "unknown_status"):
			httperr.BadRequest(c, "unknown_status", "Unknown appointment status.")
		default:
			httperr.Internal(c, "update_failed", "Could not update appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STAFF NOTES
// ======================================================

func (h *QueueHandler) UpdateStaffNotes(c *gin.Context) {
	actor := c.GetString(middleware.ContextStaffEmail)
	id := c.Param("id")

	var req UpdateStaffNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	ap, err := h.updNotes.Execute(c.Request.Context(), actor, id, req.StaffNotes)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "No appointment with that id.")
			return
		}
		httperr.Internal(c, "update_failed", "Could not update appointment.")
		return
	}

	httpresp.OK(c, ap)
}
