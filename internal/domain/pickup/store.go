package pickup

import (
	"sync"

	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// Store holds every appointment for the process lifetime. Append-only:
// appointments are never deleted, only transitioned and annotated.
//
// The store is deliberately permissive. It accepts any status value and
// silently ignores unknown ids; transition legality belongs to the action
// layer (see CanTransition), mirroring where the enforcement lives in the
// staff UI.
type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	appointments []models.Appointment
}

func NewStore(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.System()
	}
	return &Store{clock: clk}
}

// Add appends the appointment. No uniqueness check is performed on ID or
// pickup reference; callers generate sufficiently unique ids.
func (s *Store) Add(ap models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append(s.appointments, ap)
}

// UpdateStatus replaces the status of the matching appointment and stamps
// UpdatedAt. Unknown ids are a no-op, not an error.
func (s *Store) UpdateStatus(id string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Status = string(status)
			s.appointments[i].UpdatedAt = s.clock.Now()
			return
		}
	}
}

// UpdateStaffNotes replaces the staff notes of the matching appointment
// and stamps UpdatedAt. Unknown ids are a no-op.
func (s *Store) UpdateStaffNotes(id string, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].StaffNotes = notes
			s.appointments[i].UpdatedAt = s.clock.Now()
			return
		}
	}
}

// Get returns a copy of the appointment with the given id.
func (s *Store) Get(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return s.appointments[i], true
		}
	}
	return models.Appointment{}, false
}

// List returns a snapshot of the full collection in insertion order.
func (s *Store) List() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.appointments)
}
