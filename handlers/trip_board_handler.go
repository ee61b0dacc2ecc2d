package handlers

import (
	"net/http"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/services"
	"github.com/NomadCrew/tripboard/types"
	"github.com/gin-gonic/gin"
)

// TripBoardHandler serves the filtered trip list and the stats panel.
type TripBoardHandler struct {
	boardService BoardServiceInterface
	preferences  PreferenceServiceInterface
}

func NewTripBoardHandler(boardService BoardServiceInterface, preferences PreferenceServiceInterface) *TripBoardHandler {
	return &TripBoardHandler{
		boardService: boardService,
		preferences:  preferences,
	}
}

// GetBoardHandler godoc
// @Summary Get the trip board
// @Description Returns the filtered, sorted trip list and stats over the full collection.
// @Description When view is set, saved preferences for that view fill every filter the query leaves empty.
// @Tags trips
// @Produce json
// @Param search query string false "Case-insensitive match on title or any city"
// @Param status query string false "planned, active, completed or all"
// @Param sortBy query string false "departure-desc, departure-asc, created-desc, created-asc, budget-desc, budget-asc, name-asc, name-desc"
// @Param dateFrom query string false "Earliest start date (YYYY-MM-DD)"
// @Param dateTo query string false "Latest end date (YYYY-MM-DD)"
// @Param budgetMin query string false "Minimum total budget"
// @Param budgetMax query string false "Maximum total budget"
// @Param view query string false "Saved view id"
// @Success 200 {object} types.TripBoard
// @Failure 400 {object} types.ErrorResponse "Invalid view id"
// @Failure 503 {object} types.ErrorResponse "Trip collection did not load in time"
// @Router /trips/board [get]
func (h *TripBoardHandler) GetBoardHandler(c *gin.Context) {
	var query types.TripFilters
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	filters := query
	if viewID := c.Query("view"); viewID != "" {
		saved, found, err := h.preferences.Get(c.Request.Context(), viewID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if found {
			filters = services.Merge(saved, query)
		}
	}
	filters = filters.WithDefaults(types.DefaultTripFilters())

	board, err := h.boardService.Board(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.GetLogger().Debugw("Rendered trip board",
		"matching", board.MatchingTrips,
		"total", board.Stats.TotalTrips,
		"remoteAvailable", board.RemoteAvailable)
	c.JSON(http.StatusOK, board)
}

// GetStatsHandler godoc
// @Summary Get trip statistics
// @Description Aggregates the full trip collection; filters do not apply.
// @Tags trips
// @Produce json
// @Success 200 {object} types.TripStats
// @Failure 503 {object} types.ErrorResponse "Trip collection did not load in time"
// @Router /trips/stats [get]
func (h *TripBoardHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.boardService.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
