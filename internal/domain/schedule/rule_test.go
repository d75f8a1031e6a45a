package schedule_test

import (
	"testing"
	"time"

	"padelhub/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var madrid = mustLoc("Europe/Madrid")

func mustLoc(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func baseRule(weekday schedule.Weekday) schedule.WeeklyRule {
	return schedule.WeeklyRule{
		ID:          uuid.New(),
		CourtID:     uuid.New(),
		Weekday:     weekday,
		OpenMinute:  8 * 60,
		CloseMinute: 22 * 60,
		SlotMinutes: 60,
		IsActive:    true,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func datePtr(y int, m time.Month, d int) *schedule.Date {
	dt := schedule.Date{Year: y, Month: m, Day: d}
	return &dt
}

func TestISOWeekday(t *testing.T) {
	// 2025-03-10 is a Monday
	require.Equal(t, schedule.Monday, schedule.ISOWeekday(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)))
	// 2025-03-16 is a Sunday
	require.Equal(t, schedule.Sunday, schedule.ISOWeekday(time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)))
}

func TestWeeklyRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *schedule.WeeklyRule)
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *schedule.WeeklyRule) {}},
		{name: "zero slot minutes", mutate: func(r *schedule.WeeklyRule) { r.SlotMinutes = 0 }, wantErr: true},
		{name: "negative slot minutes", mutate: func(r *schedule.WeeklyRule) { r.SlotMinutes = -30 }, wantErr: true},
		{name: "negative buffer", mutate: func(r *schedule.WeeklyRule) { r.BufferMinutes = -1 }, wantErr: true},
		{name: "close before open", mutate: func(r *schedule.WeeklyRule) { r.OpenMinute = 20 * 60; r.CloseMinute = 8 * 60 }, wantErr: true},
		{name: "close equals open", mutate: func(r *schedule.WeeklyRule) { r.CloseMinute = r.OpenMinute }, wantErr: true},
		{name: "close at midnight is allowed", mutate: func(r *schedule.WeeklyRule) { r.CloseMinute = 24 * 60 }},
		{name: "weekday out of range", mutate: func(r *schedule.WeeklyRule) { r.Weekday = 7 }, wantErr: true},
		{name: "inverted effective range", mutate: func(r *schedule.WeeklyRule) {
			r.EffectiveFrom = datePtr(2025, 6, 1)
			r.EffectiveTo = datePtr(2025, 5, 1)
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := baseRule(schedule.Monday)
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidRule)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestResolveRule_Filtering(t *testing.T) {
	monday := schedule.Date{Year: 2025, Month: 3, Day: 10}

	t.Run("weekday mismatch yields no rule", func(t *testing.T) {
		_, ok := schedule.ResolveRule([]schedule.WeeklyRule{baseRule(schedule.Tuesday)}, monday, madrid)
		require.False(t, ok)
	})

	t.Run("inactive rules never apply", func(t *testing.T) {
		r := baseRule(schedule.Monday)
		r.IsActive = false
		_, ok := schedule.ResolveRule([]schedule.WeeklyRule{r}, monday, madrid)
		require.False(t, ok)
	})

	t.Run("effective window bounds are inclusive", func(t *testing.T) {
		r := baseRule(schedule.Monday)
		r.EffectiveFrom = datePtr(2025, 3, 10)
		r.EffectiveTo = datePtr(2025, 3, 10)
		got, ok := schedule.ResolveRule([]schedule.WeeklyRule{r}, monday, madrid)
		require.True(t, ok)
		require.Equal(t, r.ID, got.ID)
	})

	t.Run("date before effective window", func(t *testing.T) {
		r := baseRule(schedule.Monday)
		r.EffectiveFrom = datePtr(2025, 3, 11)
		_, ok := schedule.ResolveRule([]schedule.WeeklyRule{r}, monday, madrid)
		require.False(t, ok)
	})

	t.Run("date after effective window", func(t *testing.T) {
		r := baseRule(schedule.Monday)
		r.EffectiveTo = datePtr(2025, 3, 9)
		_, ok := schedule.ResolveRule([]schedule.WeeklyRule{r}, monday, madrid)
		require.False(t, ok)
	})

	t.Run("nil bounds are unbounded", func(t *testing.T) {
		_, ok := schedule.ResolveRule([]schedule.WeeklyRule{baseRule(schedule.Monday)}, monday, madrid)
		require.True(t, ok)
	})
}

func TestResolveRule_TieBreak(t *testing.T) {
	monday := schedule.Date{Year: 2025, Month: 3, Day: 10}

	t.Run("bounded rule beats unbounded rule", func(t *testing.T) {
		unbounded := baseRule(schedule.Monday)
		bounded := baseRule(schedule.Monday)
		bounded.EffectiveFrom = datePtr(2025, 3, 1)
		bounded.EffectiveTo = datePtr(2025, 3, 31)

		got, ok := schedule.ResolveRule([]schedule.WeeklyRule{unbounded, bounded}, monday, madrid)
		require.True(t, ok)
		require.Equal(t, bounded.ID, got.ID)
	})

	t.Run("narrower range beats wider range", func(t *testing.T) {
		wide := baseRule(schedule.Monday)
		wide.EffectiveFrom = datePtr(2025, 1, 1)
		wide.EffectiveTo = datePtr(2025, 12, 31)
		narrow := baseRule(schedule.Monday)
		narrow.EffectiveFrom = datePtr(2025, 3, 1)
		narrow.EffectiveTo = datePtr(2025, 3, 31)

		got, ok := schedule.ResolveRule([]schedule.WeeklyRule{wide, narrow}, monday, madrid)
		require.True(t, ok)
		require.Equal(t, narrow.ID, got.ID)
	})

	t.Run("newer rule wins between identical ranges", func(t *testing.T) {
		older := baseRule(schedule.Monday)
		older.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		newer := baseRule(schedule.Monday)
		newer.CreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

		got, ok := schedule.ResolveRule([]schedule.WeeklyRule{older, newer}, monday, madrid)
		require.True(t, ok)
		require.Equal(t, newer.ID, got.ID)

		// input order must not matter
		got, ok = schedule.ResolveRule([]schedule.WeeklyRule{newer, older}, monday, madrid)
		require.True(t, ok)
		require.Equal(t, newer.ID, got.ID)
	})

	t.Run("half-bounded beats unbounded", func(t *testing.T) {
		unbounded := baseRule(schedule.Monday)
		half := baseRule(schedule.Monday)
		half.EffectiveFrom = datePtr(2025, 1, 1)

		got, ok := schedule.ResolveRule([]schedule.WeeklyRule{unbounded, half}, monday, madrid)
		require.True(t, ok)
		require.Equal(t, half.ID, got.ID)
	})
}
