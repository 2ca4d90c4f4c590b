package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"studyspace/models"
)

// probeDuration is the fixed window checked per slot. Availability is a
// conservative single-hour probe regardless of the duration eventually
// chosen; longer durations are capped separately by the duration calculator.
const probeDuration = time.Hour

// Intervals derives half-open [start, end) intervals from persisted
// bookings. Cancelled bookings do not block slots; bookings with unparseable
// timestamps are skipped.
func Intervals(bookings []models.Booking, loc *time.Location) []models.Interval {
	var intervals []models.Interval
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		start, err := time.ParseInLocation(models.TimestampLayout, b.StartTime, loc)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(models.TimestampLayout, b.EndTime, loc)
		if err != nil {
			continue
		}
		intervals = append(intervals, models.Interval{Start: start, End: end})
	}
	return intervals
}

// overlaps is the half-open interval intersection test:
// [aStart, aEnd) intersects [bStart, bEnd) iff aStart < bEnd && aEnd > bStart.
func overlaps(aStart, aEnd time.Time, b models.Interval) bool {
	return aStart.Before(b.End) && aEnd.After(b.Start)
}

// ResolveAvailability marks each slot available or unavailable for the given
// date. A slot is unavailable when its start is strictly before now, or when
// its one-hour probe window overlaps any booking interval. UnavailableTimes
// comes back sorted ascending for duration capping.
func ResolveAvailability(slots []models.TimeSlot, bookings []models.Booking, date, now time.Time) models.Availability {
	intervals := Intervals(bookings, date.Location())

	avail := models.Availability{BySlot: make(map[string]bool, len(slots))}
	for _, slot := range slots {
		minutes, ok := parseClock(slot.Value)
		if !ok {
			avail.BySlot[slot.Value] = false
			continue
		}
		slotStart := at(date, minutes)
		slotEnd := slotStart.Add(probeDuration)

		available := !slotStart.Before(now)
		if available {
			for _, iv := range intervals {
				if overlaps(slotStart, slotEnd, iv) {
					available = false
					break
				}
			}
		}
		avail.BySlot[slot.Value] = available
		if !available {
			avail.UnavailableTimes = append(avail.UnavailableTimes, slotStart)
		}
	}

	sort.Slice(avail.UnavailableTimes, func(i, j int) bool {
		return avail.UnavailableTimes[i].Before(avail.UnavailableTimes[j])
	})
	return avail
}

// AllUnavailable is the failure-mode grid: every slot forced unavailable.
// Shown when the bookings fetch fails, so a false "all available" state is
// never presented.
func AllUnavailable(slots []models.TimeSlot, date time.Time) models.Availability {
	avail := models.Availability{BySlot: make(map[string]bool, len(slots))}
	for _, slot := range slots {
		avail.BySlot[slot.Value] = false
		if minutes, ok := parseClock(slot.Value); ok {
			avail.UnavailableTimes = append(avail.UnavailableTimes, at(date, minutes))
		}
	}
	return avail
}

// BookingsFetcher is the slice of the StudySpace API the dialog needs for
// availability resolution.
type BookingsFetcher interface {
	BookingsForSpaceDate(ctx context.Context, token string, spaceID int, date time.Time) ([]models.Booking, error)
}

// SlotGrid is the fully resolved dialog state for one (space, date) pair.
type SlotGrid struct {
	Slots        []models.AnnotatedSlot
	Availability models.Availability
	Intervals    []models.Interval
	// Stale marks a result that was superseded by a newer request for the
	// same dialog while the fetch was in flight. Callers must discard it.
	Stale bool
}

// SlotService resolves the annotated slot grid for the booking dialog.
type SlotService interface {
	Resolve(ctx context.Context, token, dialogKey string, space *models.Space, date, now time.Time) (*SlotGrid, error)
}

// dialogGenLimit caps the tracked dialogs; beyond it, idle entries are swept
// so the map cannot grow without bound across session lifetimes.
const (
	dialogGenLimit   = 1024
	dialogGenMaxIdle = time.Hour
)

type dialogGen struct {
	n       uint64
	touched time.Time
}

// DefaultSlotService fetches bookings from the remote API and annotates the
// slot grid. A per-dialog generation counter guards against out-of-order
// completion of interleaved fetches overwriting newer state.
type DefaultSlotService struct {
	Fetcher BookingsFetcher
	Logger  *zap.Logger

	mu          sync.Mutex
	generations map[string]*dialogGen
}

// begin records a new fetch generation for the dialog key.
func (s *DefaultSlotService) begin(key string, now time.Time) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations == nil {
		s.generations = make(map[string]*dialogGen)
	}
	g := s.generations[key]
	if g == nil {
		if len(s.generations) >= dialogGenLimit {
			s.evictIdle(now)
		}
		g = &dialogGen{}
		s.generations[key] = g
	}
	g.n++
	g.touched = now
	return g.n
}

// evictIdle drops dialog entries untouched for longer than the idle window.
// Losing an entry only means a fetch for that dialog can no longer be
// flagged stale, which is harmless after an hour of inactivity.
func (s *DefaultSlotService) evictIdle(now time.Time) {
	for key, g := range s.generations {
		if now.Sub(g.touched) > dialogGenMaxIdle {
			delete(s.generations, key)
		}
	}
}

// current reports whether gen is still the latest fetch for the dialog key.
func (s *DefaultSlotService) current(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.generations[key]
	return g != nil && g.n == gen
}

// Resolve builds the slot grid for space on date. On a fetch failure every
// slot is forced unavailable and the error is returned alongside the grid;
// auth failures (401/403) are the caller's cue to tear the session down.
func (s *DefaultSlotService) Resolve(ctx context.Context, token, dialogKey string, space *models.Space, date, now time.Time) (*SlotGrid, error) {
	slots := GenerateTimeSlots(space.OpeningTime, space.ClosingTime, date, now)

	gen := s.begin(dialogKey, now)
	bookings, err := s.Fetcher.BookingsForSpaceDate(ctx, token, space.ID, date)
	stale := !s.current(dialogKey, gen)

	if err != nil {
		s.Logger.Warn("availability fetch failed, forcing all slots unavailable",
			zap.Int("spaceId", space.ID),
			zap.String("date", date.Format(models.DateLayout)),
			zap.Error(err))
		grid := &SlotGrid{
			Availability: AllUnavailable(slots, date),
			Stale:        stale,
		}
		grid.Slots = annotate(slots, grid.Availability, nil, space.ClosingTime, date)
		return grid, err
	}

	avail := ResolveAvailability(slots, bookings, date, now)
	intervals := Intervals(bookings, date.Location())
	grid := &SlotGrid{
		Availability: avail,
		Intervals:    intervals,
		Stale:        stale,
	}
	grid.Slots = annotate(slots, avail, intervals, space.ClosingTime, date)
	return grid, nil
}

// annotate attaches availability and the valid-duration preview to each slot.
func annotate(slots []models.TimeSlot, avail models.Availability, intervals []models.Interval, closing string, date time.Time) []models.AnnotatedSlot {
	annotated := make([]models.AnnotatedSlot, 0, len(slots))
	for _, slot := range slots {
		as := models.AnnotatedSlot{TimeSlot: slot, Available: avail.BySlot[slot.Value]}
		if as.Available {
			if minutes, ok := parseClock(slot.Value); ok {
				start := at(date, minutes)
				as.ValidDurations = ValidDurations(start, closing, avail.UnavailableTimes, intervals)
			}
		}
		annotated = append(annotated, as)
	}
	return annotated
}
