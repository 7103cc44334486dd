package pickup

import (
	"strings"
	"time"

	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
	"github.com/ridgelinesupply/pickup-scheduler/internal/validators"
)

// ======================================================
// WIZARD DRAFT
// ======================================================

// Draft accumulates PickupFormData across the wizard steps. It owns the
// form state until Commit, at which point the derived appointment passes
// to the store and the draft is reset.
type Draft struct {
	data models.PickupFormData
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetReference(pickupReference string) {
	d.data.PickupReference = strings.TrimSpace(pickupReference)
}

func (d *Draft) SetLocation(locationID string) {
	d.data.LocationID = locationID
}

func (d *Draft) SetSchedule(date string, slot *models.TimeSlot) {
	d.data.SelectedDate = date
	d.data.SelectedSlot = slot
}

func (d *Draft) SetContact(firstName, lastName, email, phone string) {
	d.data.FirstName = strings.TrimSpace(firstName)
	d.data.LastName = strings.TrimSpace(lastName)
	d.data.Email = strings.TrimSpace(email)
	d.data.Phone = strings.TrimSpace(phone)
}

func (d *Draft) SetExtras(vehicleInfo, notes string) {
	d.data.VehicleInfo = strings.TrimSpace(vehicleInfo)
	d.data.Notes = strings.TrimSpace(notes)
}

func (d *Draft) Data() models.PickupFormData {
	return d.data
}

func (d *Draft) Reset() {
	d.data = models.PickupFormData{}
}

// ======================================================
// VALIDATION
// ======================================================

// Validate reports per-field problems. An empty map means the draft is
// ready to commit. Violations block advancement; they are never panics.
func (d *Draft) Validate() map[string]string {
	errs := map[string]string{}

	if d.data.PickupReference == "" {
		errs["pickup_reference"] = "Pickup reference is required"
	}
	if d.data.LocationID == "" {
		errs["location_id"] = "Location is required"
	}
	if d.data.SelectedDate == "" {
		errs["selected_date"] = "Date is required"
	}
	if d.data.SelectedSlot == nil {
		errs["selected_slot"] = "Time slot is required"
	}

	if d.data.FirstName == "" {
		errs["first_name"] = "First name is required"
	}
	if d.data.LastName == "" {
		errs["last_name"] = "Last name is required"
	}
	if d.data.Email == "" {
		errs["email"] = "Email is required"
	} else if !validators.IsValidEmail(d.data.Email) {
		errs["email"] = "Please enter a valid email"
	}
	if d.data.Phone == "" {
		errs["phone"] = "Phone number is required"
	}

	return errs
}

// ======================================================
// COMMIT
// ======================================================

// Commit turns a validated draft into a Scheduled appointment. The caller
// supplies the id; timestamps come from now.
func (d *Draft) Commit(id string, now time.Time) (models.Appointment, error) {
	if len(d.Validate()) > 0 {
		return models.Appointment{}, httperr.ErrBusiness("incomplete_draft")
	}

	startAt, err := time.ParseInLocation(
		"2006-01-02 15:04",
		d.data.SelectedDate+" "+d.data.SelectedSlot.StartTime,
		now.Location(),
	)
	if err != nil {
		return models.Appointment{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	endAt, err := time.ParseInLocation(
		"2006-01-02 15:04",
		d.data.SelectedDate+" "+d.data.SelectedSlot.EndTime,
		now.Location(),
	)
	if err != nil || !startAt.Before(endAt) {
		return models.Appointment{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	return models.Appointment{
		ID:                id,
		PickupReference:   d.data.PickupReference,
		LocationID:        d.data.LocationID,
		StartAt:           startAt,
		EndAt:             endAt,
		Status:            string(InitialStatus()),
		CustomerFirstName: d.data.FirstName,
		CustomerLastName:  d.data.LastName,
		CustomerEmail:     d.data.Email,
		CustomerPhone:     d.data.Phone,
		VehicleInfo:       d.data.VehicleInfo,
		CustomerNotes:     d.data.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
