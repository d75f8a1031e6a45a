package schedule

import (
	"time"

	"padelhub/internal/domain/reservation"
)

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusOccupied  SlotStatus = "occupied"
	StatusBlackout  SlotStatus = "blackout"
)

// User-facing reasons. The platform's audience is Spanish-speaking, so the
// canned reasons stay in Spanish; blackout rows carry their own free text.
const (
	ReasonOccupied = "Ocupado"
	ReasonClosed   = "Cerrado"
)

// Slot is one candidate bookable interval. Slots are computed per query and
// never persisted.
type Slot struct {
	Interval
	Status SlotStatus
	Reason string
}

func (s Slot) Available() bool {
	return s.Status == StatusAvailable
}

// Booking is the engine's read-only view of an existing reservation.
type Booking struct {
	Interval
	Status reservation.Status
}

// Blackout is an explicit closure window (maintenance, private event).
type Blackout struct {
	Interval
	Reason string
}

type AnnotateOptions struct {
	// PendingBlocks controls whether pending (unsettled payment) bookings
	// occupy slots. Callers must state the policy explicitly; the HTTP
	// availability path passes true.
	PendingBlocks bool
}

// GenerateSlots expands a resolved rule into the ordered candidate slots for
// one date. Only the open and close boundaries are anchored to wall-clock
// times in loc; the cursor then advances on absolute instants, so every slot
// is exactly SlotMinutes long even when the day contains a DST transition.
// A slot that would run past closing is dropped, not truncated. The buffer is
// idle time inserted after each slot, never subtracted from slot length.
func GenerateSlots(rule WeeklyRule, d Date, loc *time.Location) ([]Slot, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	dayOpen := d.At(rule.OpenMinute, loc)
	dayClose := d.At(rule.CloseMinute, loc)

	slotLen := time.Duration(rule.SlotMinutes) * time.Minute
	step := slotLen + time.Duration(rule.BufferMinutes)*time.Minute

	slots := make([]Slot, 0, (rule.CloseMinute-rule.OpenMinute)/(rule.SlotMinutes+rule.BufferMinutes)+1)
	for cursor := dayOpen; !cursor.Add(slotLen).After(dayClose); cursor = cursor.Add(step) {
		slots = append(slots, Slot{
			Interval: Interval{Start: cursor, End: cursor.Add(slotLen)},
			Status:   StatusAvailable,
		})
	}
	return slots, nil
}

// Annotate marks each candidate slot with its availability status. The first
// overlapping blocking booking wins with ReasonOccupied; otherwise the first
// overlapping blackout wins with its own reason (ReasonClosed when blank);
// otherwise the slot stays available. Linear scan per slot: a single day is
// bounded and small, and callers can swap in an interval index later without
// the output changing.
func Annotate(slots []Slot, bookings []Booking, blackouts []Blackout, opts AnnotateOptions) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = annotateOne(s, bookings, blackouts, opts)
	}
	return out
}

func annotateOne(s Slot, bookings []Booking, blackouts []Blackout, opts AnnotateOptions) Slot {
	for _, b := range bookings {
		if !blocks(b.Status, opts) {
			continue
		}
		if s.Overlaps(b.Interval) {
			s.Status = StatusOccupied
			s.Reason = ReasonOccupied
			return s
		}
	}
	for _, bo := range blackouts {
		if s.Overlaps(bo.Interval) {
			s.Status = StatusBlackout
			if bo.Reason != "" {
				s.Reason = bo.Reason
			} else {
				s.Reason = ReasonClosed
			}
			return s
		}
	}
	s.Status = StatusAvailable
	s.Reason = ""
	return s
}

func blocks(st reservation.Status, opts AnnotateOptions) bool {
	switch st {
	case reservation.StatusConfirmed:
		return true
	case reservation.StatusPending:
		return opts.PendingBlocks
	default:
		return false
	}
}

// ComputeDay is the pure composition the public availability query wraps:
// resolve the day's rule, generate candidates, annotate them. A day with no
// applicable rule yields an empty, non-nil slice.
func ComputeDay(
	rules []WeeklyRule,
	d Date,
	loc *time.Location,
	bookings []Booking,
	blackouts []Blackout,
	opts AnnotateOptions,
) ([]Slot, error) {
	rule, ok := ResolveRule(rules, d, loc)
	if !ok {
		return []Slot{}, nil
	}
	slots, err := GenerateSlots(rule, d, loc)
	if err != nil {
		return nil, err
	}
	return Annotate(slots, bookings, blackouts, opts), nil
}
