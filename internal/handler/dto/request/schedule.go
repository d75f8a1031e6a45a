package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"padelhub/internal/domain/schedule"
	"padelhub/internal/usecase/commands"

	"github.com/google/uuid"
)

var errInvalidClockTime = errors.New("time must be HH:MM between 00:00 and 24:00")

type CreateWeeklyRuleRequest struct {
	CourtID       uuid.UUID `json:"court_id" binding:"required"`
	Weekday       int       `json:"weekday" binding:"min=0,max=6"`
	OpenTime      string    `json:"open_time" binding:"required"`
	CloseTime     string    `json:"close_time" binding:"required"`
	SlotMinutes   int       `json:"slot_minutes" binding:"required,min=1"`
	BufferMinutes int       `json:"buffer_minutes" binding:"min=0"`
	EffectiveFrom *string   `json:"effective_from,omitempty"`
	EffectiveTo   *string   `json:"effective_to,omitempty"`
}

// ToParams converts the wire shape into command params. Clock times arrive as
// "HH:MM" wall-clock strings; "24:00" is a valid close time.
func (r CreateWeeklyRuleRequest) ToParams() (commands.CreateWeeklyRuleParams, error) {
	openMin, err := parseClockMinute(r.OpenTime)
	if err != nil {
		return commands.CreateWeeklyRuleParams{}, err
	}
	closeMin, err := parseClockMinute(r.CloseTime)
	if err != nil {
		return commands.CreateWeeklyRuleParams{}, err
	}

	from, err := parseDatePtr(r.EffectiveFrom)
	if err != nil {
		return commands.CreateWeeklyRuleParams{}, err
	}
	to, err := parseDatePtr(r.EffectiveTo)
	if err != nil {
		return commands.CreateWeeklyRuleParams{}, err
	}

	return commands.CreateWeeklyRuleParams{
		CourtID:       r.CourtID,
		Weekday:       r.Weekday,
		OpenMinute:    openMin,
		CloseMinute:   closeMin,
		SlotMinutes:   r.SlotMinutes,
		BufferMinutes: r.BufferMinutes,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}, nil
}

func parseClockMinute(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, errInvalidClockTime
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errInvalidClockTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errInvalidClockTime
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, errInvalidClockTime
	}
	minute := h*60 + m
	if minute > 24*60 {
		return 0, errInvalidClockTime
	}
	return minute, nil
}

func parseDatePtr(s *string) (*schedule.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := schedule.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type CreateBlackoutRequest struct {
	CourtID uuid.UUID `json:"court_id" binding:"required"`
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Reason  string    `json:"reason"`
}

func (r CreateBlackoutRequest) ToParams() commands.CreateBlackoutParams {
	return commands.CreateBlackoutParams{
		CourtID: r.CourtID,
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
		Reason:  r.Reason,
	}
}
