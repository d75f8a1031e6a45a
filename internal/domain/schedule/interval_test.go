package schedule_test

import (
	"testing"
	"time"

	"padelhub/internal/domain/schedule"

	"github.com/stretchr/testify/require"
)

func at(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2025-03-10 "+hhmm)
	require.NoError(t, err)
	return parsed
}

func ival(t *testing.T, start, end string) schedule.Interval {
	t.Helper()
	return schedule.Interval{Start: at(t, start), End: at(t, end)}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    schedule.Interval
		b    schedule.Interval
		want bool
	}{
		{name: "identical", a: ival(t, "10:00", "11:00"), b: ival(t, "10:00", "11:00"), want: true},
		{name: "partial overlap", a: ival(t, "10:00", "11:00"), b: ival(t, "10:30", "11:30"), want: true},
		{name: "containment", a: ival(t, "10:00", "12:00"), b: ival(t, "10:30", "11:00"), want: true},
		{name: "touching boundaries do not overlap", a: ival(t, "10:00", "11:00"), b: ival(t, "11:00", "12:00"), want: false},
		{name: "disjoint", a: ival(t, "08:00", "09:00"), b: ival(t, "11:00", "12:00"), want: false},
		{name: "one minute shared", a: ival(t, "10:00", "11:00"), b: ival(t, "10:59", "12:00"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap is symmetric
			require.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Duration(t *testing.T) {
	require.Equal(t, 90*time.Minute, ival(t, "10:00", "11:30").Duration())
}
