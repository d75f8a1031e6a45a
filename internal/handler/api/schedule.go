package api

import (
	"errors"
	"net/http"

	reqdto "padelhub/internal/handler/dto/request"
	resdto "padelhub/internal/handler/dto/response"
	"padelhub/internal/handler/middleware"
	"padelhub/internal/infra"
	"padelhub/internal/usecase/commands"
	"padelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands, scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
	}
}

// @Summary Create weekly rule
// @Description Add a recurring opening-hours rule to a court
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateWeeklyRuleRequest true "Weekly rule request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule/rules [post]
func (h *ScheduleHandler) CreateWeeklyRule(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateWeeklyRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	id, err := h.scheduleCommands.CreateWeeklyRule(c.Request.Context(), actor, params)
	if err != nil {
		h.abortScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Deactivate weekly rule
// @Description Deactivate a recurring rule; history is kept
// @Tags schedule
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule/rules/{id} [delete]
func (h *ScheduleHandler) DeactivateWeeklyRule(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	if err := h.scheduleCommands.DeactivateWeeklyRule(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, commands.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Weekly rule not found",
			})
			return
		}
		h.abortScheduleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List weekly rules
// @Description List the recurring rules of a court
// @Tags schedule
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {array} resdto.WeeklyRuleResponse
// @Failure 400 {object} map[string]string
// @Router /courts/{id}/rules [get]
func (h *ScheduleHandler) ListWeeklyRules(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	views, err := h.scheduleQueries.ListWeeklyRules(c.Request.Context(), courtID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyRuleViews(views))
}

// @Summary Create blackout
// @Description Close a court for an absolute time window
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlackoutRequest true "Blackout request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule/blackouts [post]
func (h *ScheduleHandler) CreateBlackout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.scheduleCommands.CreateBlackout(c.Request.Context(), actor, req.ToParams())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidBlackout) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Blackout window is invalid",
			})
			return
		}
		h.abortScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Delete blackout
// @Description Remove a blackout window
// @Tags schedule
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule/blackouts/{id} [delete]
func (h *ScheduleHandler) DeleteBlackout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid blackout ID format",
		})
		return
	}

	if err := h.scheduleCommands.DeleteBlackout(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, commands.ErrBlackoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blackout not found",
			})
			return
		}
		h.abortScheduleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List blackouts
// @Description List the blackout windows of a court
// @Tags schedule
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {array} resdto.BlackoutResponse
// @Failure 400 {object} map[string]string
// @Router /courts/{id}/blackouts [get]
func (h *ScheduleHandler) ListBlackouts(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	views, err := h.scheduleQueries.ListBlackouts(c.Request.Context(), courtID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutViews(views))
}

func (h *ScheduleHandler) abortScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCourtNotFound), errors.Is(err, commands.ErrClubNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, commands.ErrNotClubOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not the club owner",
		})
	case infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	}
}
