package pickup

import (
	"sort"
	"strings"
	"time"

	"github.com/ridgelinesupply/pickup-scheduler/internal/clock"
	"github.com/ridgelinesupply/pickup-scheduler/internal/models"
)

// ======================================================
// TIME BUCKETS
// ======================================================

type TimeBucket string

const (
	BucketPast     TimeBucket = "past"
	BucketUpcoming TimeBucket = "upcoming"
	BucketFuture   TimeBucket = "future"
)

// upcomingWindow is how far ahead an appointment counts as "up next" on
// the dashboard.
const upcomingWindow = 30 * time.Minute

// Bucket classifies an appointment start relative to now. Derived fresh
// on every read; never stored.
func Bucket(startAt, now time.Time) TimeBucket {
	if startAt.Before(now) {
		return BucketPast
	}
	if startAt.Before(now.Add(upcomingWindow)) {
		return BucketUpcoming
	}
	return BucketFuture
}

// ======================================================
// QUEUE FILTER / SORT
// ======================================================

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

type QueueFilter struct {
	Query  string
	Status string
}

// BuildQueue derives the staff view: today's appointments, optionally
// narrowed by status and free-text search, sorted by ascending start.
//
// The search is a case-insensitive substring match over pickup reference,
// first name, last name and email. Phone is matched case-sensitively,
// since phone numbers are never case-normalized.
func BuildQueue(appointments []models.Appointment, f QueueFilter, now time.Time) []models.Appointment {
	query := strings.ToLower(f.Query)

	out := []models.Appointment{}
	for _, ap := range appointments {
		if !clock.SameDay(ap.StartAt, now) {
			continue
		}
		if f.Status != "" && f.Status != StatusFilterAll && ap.Status != f.Status {
			continue
		}
		if query != "" && !matchesQuery(ap, query, f.Query) {
			continue
		}
		out = append(out, ap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
	})

	return out
}

func matchesQuery(ap models.Appointment, lowered, raw string) bool {
	return strings.Contains(strings.ToLower(ap.PickupReference), lowered) ||
		strings.Contains(strings.ToLower(ap.CustomerFirstName), lowered) ||
		strings.Contains(strings.ToLower(ap.CustomerLastName), lowered) ||
		strings.Contains(strings.ToLower(ap.CustomerEmail), lowered) ||
		strings.Contains(ap.CustomerPhone, raw)
}
