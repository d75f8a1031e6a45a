package schedule

import "time"

// Interval is a half-open window [Start, End). Every collision check in the
// availability engine goes through Overlaps; nothing else re-derives the
// boundary comparisons.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two half-open intervals share any instant.
// Intervals that only touch at a boundary do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}
