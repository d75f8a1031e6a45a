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

type ClubHandler struct {
	clubCommands commands.ClubCommands
	courtQueries queries.CourtQueries
}

func NewClubHandler(clubCommands commands.ClubCommands, courtQueries queries.CourtQueries) *ClubHandler {
	return &ClubHandler{
		clubCommands: clubCommands,
		courtQueries: courtQueries,
	}
}

// @Summary Create club
// @Description Register a club owned by the current user
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClubRequest true "Club request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.clubCommands.CreateClub(c.Request.Context(), actor, commands.CreateClubParams{
		Name:     req.Name,
		Timezone: req.Timezone,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid club data",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List clubs
// @Description List all registered clubs
// @Tags clubs
// @Produce json
// @Success 200 {array} resdto.ClubResponse
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	views, err := h.courtQueries.ListClubs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromClubViews(views))
}

// @Summary Get club
// @Description Get one club by ID
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} resdto.ClubResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid club ID format",
		})
		return
	}

	view, err := h.courtQueries.GetClub(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Club not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromClubView(view))
}

// @Summary Create court
// @Description Add a court to a club the current user owns
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts [post]
func (h *ClubHandler) CreateCourt(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.clubCommands.CreateCourt(c.Request.Context(), actor, commands.CreateCourtParams{
		ClubID:  req.ClubID,
		Name:    req.Name,
		Surface: req.Surface,
		Indoor:  req.Indoor,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrClubNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Club not found",
			})
		case errors.Is(err, commands.ErrNotClubOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not the club owner",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid court data",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List courts by club
// @Description List the courts of one club
// @Tags courts
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {array} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Router /clubs/{id}/courts [get]
func (h *ClubHandler) ListCourtsByClub(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid club ID format",
		})
		return
	}

	views, err := h.courtQueries.ListCourtsByClub(c.Request.Context(), clubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtViews(views))
}

// @Summary Get court
// @Description Get one court by ID
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *ClubHandler) GetCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	view, err := h.courtQueries.GetCourt(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}
