package store

import (
	"sync"

	"github.com/esyang202423/tripboard/pkg/models"
	"github.com/esyang202423/tripboard/pkg/utils"
)

// Defaults for a freshly added activity, matching what the editor shows
// before the owner types anything.
const (
	DefaultNewTime        = "12:00"
	DefaultNewDescription = "✨ 新活動內容"
)

// Store owns the trip days and all activities within them. It is the only
// component allowed to mutate them; every mutation replaces the affected day
// rather than editing it in place, so snapshots handed out earlier stay
// internally consistent. The day list itself is fixed for the lifetime of
// the process, only activities change.
type Store struct {
	mu   sync.RWMutex
	days []models.TripDay
	tips []models.Tip
	meta models.TripMeta
	ids  *utils.IDGenerator
}

// New seeds a store with the built-in trip dataset.
func New() *Store {
	return &Store{
		days: models.CloneDays(seedDays),
		tips: append([]models.Tip(nil), seedTips...),
		meta: seedMeta,
		ids:  utils.NewIDGenerator(),
	}
}

// NewWithDays seeds a store with a caller-supplied day list. Used by tests
// and anywhere the built-in dataset is not wanted.
func NewWithDays(days []models.TripDay) *Store {
	return &Store{
		days: models.CloneDays(days),
		tips: append([]models.Tip(nil), seedTips...),
		meta: seedMeta,
		ids:  utils.NewIDGenerator(),
	}
}

// Days returns a deep-copied snapshot of the current trip. Callers may
// mutate the result freely.
func (s *Store) Days() []models.TripDay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneDays(s.days)
}

// Day returns a deep copy of one day by id.
func (s *Store) Day(dayID string) (models.TripDay, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.days {
		if d.ID == dayID {
			return d.Clone(), true
		}
	}
	return models.TripDay{}, false
}

// Activity returns a copy of one activity by its (day, activity) pair.
func (s *Store) Activity(dayID, activityID string) (models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.days {
		if d.ID != dayID {
			continue
		}
		for _, a := range d.Activities {
			if a.ID == activityID {
				return a, true
			}
		}
	}
	return models.Activity{}, false
}

// UpdateActivity applies the supplied slots of upd to exactly one activity.
// Unknown ids are a silent no-op: the collection is left unchanged and
// false is returned. The UI only calls this with ids it just observed, so
// "not found" is tolerated rather than treated as an error.
func (s *Store) UpdateActivity(dayID, activityID string, upd models.ActivityUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for di, d := range s.days {
		if d.ID != dayID {
			continue
		}
		for ai, a := range d.Activities {
			if a.ID != activityID {
				continue
			}
			next := d.Clone()
			next.Activities[ai] = upd.ApplyTo(a)
			s.days[di] = next
			return true
		}
		return false
	}
	return false
}

// AddActivity appends a freshly generated activity to the named day and
// returns it, so the caller can move edit focus onto it immediately.
// Unknown day ids are a no-op and return ok=false.
func (s *Store) AddActivity(dayID string) (models.Activity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for di, d := range s.days {
		if d.ID != dayID {
			continue
		}
		act := models.Activity{
			ID:          s.ids.NewActivityID(),
			Time:        DefaultNewTime,
			Description: DefaultNewDescription,
		}
		next := d.Clone()
		next.Activities = append(next.Activities, act)
		s.days[di] = next
		return act, true
	}
	return models.Activity{}, false
}

// DeleteActivity removes exactly the activity matching both ids, keeping
// the order of the rest. No-op when the pair does not exist, so a repeated
// delete is harmless. Confirmation of the delete is the interaction
// surface's job; the store performs none.
func (s *Store) DeleteActivity(dayID, activityID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for di, d := range s.days {
		if d.ID != dayID {
			continue
		}
		for ai, a := range d.Activities {
			if a.ID != activityID {
				continue
			}
			next := d.Clone()
			next.Activities = append(next.Activities[:ai], next.Activities[ai+1:]...)
			s.days[di] = next
			return true
		}
		return false
	}
	return false
}

// Tips returns the static tip cards.
func (s *Store) Tips() []models.Tip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Tip(nil), s.tips...)
}

// Meta returns the hero/closing content of the trip.
func (s *Store) Meta() models.TripMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}
