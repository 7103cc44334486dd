package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httpresp"
	"github.com/ridgelinesupply/pickup-scheduler/internal/locations"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
	ucPickup "github.com/ridgelinesupply/pickup-scheduler/internal/usecase/pickup"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	availability *ucPickup.GetAvailability
	schedule     *ucPickup.SchedulePickup
	clock        clock.Clock
}

func NewPublicHandler(
	availability *ucPickup.GetAvailability,
	schedule *ucPickup.SchedulePickup,
	clk clock.Clock,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		schedule:     schedule,
		clock:        clk,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SlotSelection struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Required-ness is checked by the draft so the wizard gets per-field
// messages instead of a single binding error.
type CreatePickupRequest struct {
	PickupReference string         `json:"pickup_reference"`
	LocationID      string         `json:"location_id"`
	Date            string         `json:"date"`
	Slot            *SlotSelection `json:"slot"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	VehicleInfo string `json:"vehicle_info"`
	Notes       string `json:"notes"`
}

// ======================================================
// LOCATIONS
// ======================================================

func (h *PublicHandler) ListLocations(c *gin.Context) {
	httpresp.List(c, locations.All())
}

// ======================================================
// AVAILABILITY
// ======================================================

const defaultAvailabilityDays = 14

func (h *PublicHandler) Availability(c *gin.Context) {
	start := h.clock.Now()
	if s := c.Query("start"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, start.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		start = parsed
	}

	days := defaultAvailabilityDays
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 0 {
			httperr.BadRequest(c, "invalid_days", "Day count must be a non-negative integer.")
			return
		}
		days = parsed
	}

	httpresp.List(c, h.availability.Execute(c.Request.Context(), start, days))
}

func (h *PublicHandler) DaySlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.clock.Now().Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	httpresp.List(c, h.availability.ExecuteDay(c.Request.Context(), date))
}

// ======================================================
// CREATE
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreatePickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	in := ucPickup.SchedulePickupInput{
		PickupReference: req.PickupReference,
		LocationID:      req.LocationID,
		Date:            req.Date,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		VehicleInfo:     req.VehicleInfo,
		Notes:           req.Notes,
	}
	if req.Slot != nil {
		in.Slot = &models.TimeSlot{
			ID:        req.Slot.ID,
			StartTime: req.Slot.StartTime,
			EndTime:   req.Slot.EndTime,
		}
	}

	ap, err := h.schedule.Execute(c.Request.Context(), in)
	if err != nil {
		var verr ucPickup.ValidationError
		if errors.As(err, &verr) {
			httperr.WriteFields(c, http.StatusBadRequest, "validation_failed", verr.Fields)
			return
		}
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not schedule pickup.")
			return
		}
		httperr.Internal(c, "schedule_failed", "Could not schedule pickup.")
		return
	}

	httpresp.Created(c, ap)
}
