package request_test

import (
	"testing"

	"padelhub/internal/domain/schedule"
	"padelhub/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateWeeklyRuleRequest_ToParams(t *testing.T) {
	from := "2025-06-01"
	req := request.CreateWeeklyRuleRequest{
		CourtID:       uuid.New(),
		Weekday:       int(schedule.Saturday),
		OpenTime:      "08:30",
		CloseTime:     "24:00",
		SlotMinutes:   90,
		BufferMinutes: 15,
		EffectiveFrom: &from,
	}

	params, err := req.ToParams()
	require.NoError(t, err)
	require.Equal(t, 8*60+30, params.OpenMinute)
	require.Equal(t, 24*60, params.CloseMinute)
	require.Equal(t, 90, params.SlotMinutes)
	require.Equal(t, 15, params.BufferMinutes)
	require.NotNil(t, params.EffectiveFrom)
	require.Equal(t, schedule.Date{Year: 2025, Month: 6, Day: 1}, *params.EffectiveFrom)
	require.Nil(t, params.EffectiveTo)
}

func TestCreateWeeklyRuleRequest_RejectsBadClockTimes(t *testing.T) {
	cases := []struct {
		name string
		open string
	}{
		{"missing colon", "0830"},
		{"minute out of range", "08:75"},
		{"past midnight", "24:30"},
		{"not a number", "ab:cd"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := request.CreateWeeklyRuleRequest{
				CourtID:     uuid.New(),
				OpenTime:    tc.open,
				CloseTime:   "22:00",
				SlotMinutes: 60,
			}
			_, err := req.ToParams()
			require.Error(t, err)
		})
	}
}

func TestCreateWeeklyRuleRequest_RejectsBadDates(t *testing.T) {
	bad := "01-06-2025"
	req := request.CreateWeeklyRuleRequest{
		CourtID:       uuid.New(),
		OpenTime:      "08:00",
		CloseTime:     "22:00",
		SlotMinutes:   60,
		EffectiveFrom: &bad,
	}
	_, err := req.ToParams()
	require.ErrorIs(t, err, schedule.ErrInvalidDate)
}
