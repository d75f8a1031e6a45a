package schedule

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidRule = errors.New("invalid weekly rule")

// Weekday follows the ISO convention: 0 = Monday .. 6 = Sunday. The legacy
// call sites mixed Sunday-based and Monday-based numbering; this type is the
// single convention for the whole platform.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if !w.IsValid() {
		return "Invalid"
	}
	return names[w]
}

// ISOWeekday converts time.Weekday (Sunday-based) to the ISO convention.
func ISOWeekday(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// WeeklyRule is a recurring opening-hours template for one court on one
// weekday. Open and close are wall-clock minutes from local midnight;
// CloseMinute 1440 means midnight of the next day.
type WeeklyRule struct {
	ID            uuid.UUID
	CourtID       uuid.UUID
	Weekday       Weekday
	OpenMinute    int
	CloseMinute   int
	SlotMinutes   int
	BufferMinutes int
	EffectiveFrom *Date // inclusive; nil = unbounded
	EffectiveTo   *Date // inclusive; nil = unbounded
	IsActive      bool
	CreatedAt     time.Time
}

func (r WeeklyRule) Validate() error {
	if !r.Weekday.IsValid() {
		return ErrInvalidRule
	}
	if r.OpenMinute < 0 || r.OpenMinute >= minutesPerDay {
		return ErrInvalidRule
	}
	if r.CloseMinute <= 0 || r.CloseMinute > minutesPerDay {
		return ErrInvalidRule
	}
	if r.OpenMinute >= r.CloseMinute {
		return ErrInvalidRule
	}
	if r.SlotMinutes <= 0 {
		return ErrInvalidRule
	}
	if r.BufferMinutes < 0 {
		return ErrInvalidRule
	}
	if r.EffectiveFrom != nil && r.EffectiveTo != nil && r.EffectiveTo.Before(*r.EffectiveFrom) {
		return ErrInvalidRule
	}
	return nil
}

const minutesPerDay = 24 * 60

func (r WeeklyRule) appliesOn(d Date, loc *time.Location) bool {
	if !r.IsActive {
		return false
	}
	if r.Weekday != d.Weekday(loc) {
		return false
	}
	if r.EffectiveFrom != nil && d.Before(*r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && d.After(*r.EffectiveTo) {
		return false
	}
	return true
}

// boundCount drives the first resolver tie-break: rules with both effective
// bounds set beat half-bounded ones, which beat unbounded ones.
func (r WeeklyRule) boundCount() int {
	n := 0
	if r.EffectiveFrom != nil {
		n++
	}
	if r.EffectiveTo != nil {
		n++
	}
	return n
}

func (r WeeklyRule) rangeDays() int {
	if r.EffectiveFrom == nil || r.EffectiveTo == nil {
		return int(^uint(0) >> 1) // unbounded range, widest possible
	}
	from := r.EffectiveFrom.In(time.UTC)
	to := r.EffectiveTo.In(time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// ResolveRule selects the weekly rule governing the given date. Zero matches
// means the court is closed that day; that is a normal outcome, not an error.
//
// When the store holds several active, date-overlapping rules for the same
// court and weekday, the pick is deterministic:
//  1. the rule with more non-nil effective bounds,
//  2. then the narrowest effective range,
//  3. then the most recently created,
//  4. then lowest ID, purely to make the order total.
func ResolveRule(rules []WeeklyRule, d Date, loc *time.Location) (WeeklyRule, bool) {
	matches := make([]WeeklyRule, 0, len(rules))
	for _, r := range rules {
		if r.appliesOn(d, loc) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return WeeklyRule{}, false
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.boundCount() != b.boundCount() {
			return a.boundCount() > b.boundCount()
		}
		if a.rangeDays() != b.rangeDays() {
			return a.rangeDays() < b.rangeDays()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	return matches[0], true
}
