package pickup

import "github.com/ridgelinesupply/pickup-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusCheckedIn Status = "CheckedIn"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
	StatusNoShow    Status = "NoShow"
	StatusCanceled  Status = "Canceled"
)

func InitialStatus() Status {
	return StatusScheduled
}

// transitions is the forward-progress lattice offered to staff. No entry
// ever returns an appointment to a prior state.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCheckedIn, StatusCanceled},
	StatusConfirmed: {StatusCheckedIn, StatusCanceled},
	StatusCheckedIn: {StatusReady, StatusCompleted, StatusNoShow},
	StatusReady:     {StatusCompleted, StatusNoShow},
	StatusCompleted: {},
	StatusNoShow:    {},
	StatusCanceled:  {},
}

func IsValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func IsTerminal(s Status) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// AllowedTransitions returns the statuses reachable from current, in
// presentation order. Unknown statuses have no transitions.
func AllowedTransitions(current Status) []Status {
	next := transitions[current]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition validates a staff-initiated status change against the
// lattice. The store itself stays permissive; this is the action layer.
func CanTransition(current, next Status) error {
	if !IsValidStatus(next) {
		return httperr.ErrBusiness("unknown_status")
	}
	for _, s := range transitions[current] {
		if s == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
