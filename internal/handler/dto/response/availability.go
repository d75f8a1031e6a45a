package response

import (
	"padelhub/internal/usecase/queries"
)

// DayAvailabilityResponse wraps the slot list so the payload can grow
// (court metadata, applied rule) without breaking clients.
type DayAvailabilityResponse struct {
	CourtID string             `json:"court_id"`
	Date    string             `json:"date"`
	Slots   []queries.SlotView `json:"slots"`
}
