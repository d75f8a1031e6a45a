package api

import (
	"errors"
	"net/http"

	resdto "padelhub/internal/handler/dto/response"
	"padelhub/internal/infra"
	"padelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Get day availability
// @Description List the bookable slot grid of a court for one calendar day in the club's timezone
// @Tags availability
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/availability [get]
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	slots, err := h.availability.GetDayAvailability(c.Request.Context(), courtID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errors.Is(err, queries.ErrCourtNotFound), infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.DayAvailabilityResponse{
		CourtID: courtID.String(),
		Date:    date,
		Slots:   slots,
	})
}
