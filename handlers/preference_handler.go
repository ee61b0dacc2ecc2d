package handlers

import (
	"net/http"

	apperrors "github.com/NomadCrew/tripboard/errors"
	"github.com/NomadCrew/tripboard/types"
	"github.com/gin-gonic/gin"
)

// PreferenceHandler exposes saved view preferences.
type PreferenceHandler struct {
	preferences PreferenceServiceInterface
}

func NewPreferenceHandler(preferences PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// GetPreferencesHandler godoc
// @Summary Get saved view preferences
// @Tags preferences
// @Produce json
// @Param viewId path string true "View ID"
// @Success 200 {object} types.ViewPreferencesResponse
// @Failure 400 {object} types.ErrorResponse "Invalid view id"
// @Failure 404 {object} types.ErrorResponse "Nothing saved for this view"
// @Router /views/{viewId}/preferences [get]
func (h *PreferenceHandler) GetPreferencesHandler(c *gin.Context) {
	viewID := c.Param("viewId")

	filters, found, err := h.preferences.Get(c.Request.Context(), viewID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !found {
		_ = c.Error(apperrors.NotFound("View preferences", viewID))
		return
	}
	c.JSON(http.StatusOK, types.ViewPreferencesResponse{ViewID: viewID, Filters: filters})
}

// SavePreferencesHandler godoc
// @Summary Save view preferences
// @Description Replaces the saved filter/sort selection of a view.
// @Tags preferences
// @Accept json
// @Produce json
// @Param viewId path string true "View ID"
// @Param request body types.TripFilters true "Filter and sort selection"
// @Success 200 {object} types.ViewPreferencesResponse
// @Failure 400 {object} types.ErrorResponse "Invalid selection"
// @Failure 500 {object} types.ErrorResponse "Storage failure"
// @Router /views/{viewId}/preferences [put]
func (h *PreferenceHandler) SavePreferencesHandler(c *gin.Context) {
	viewID := c.Param("viewId")

	var filters types.TripFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if err := h.preferences.Save(c.Request.Context(), viewID, filters); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.ViewPreferencesResponse{ViewID: viewID, Filters: filters})
}

// DeletePreferencesHandler godoc
// @Summary Delete view preferences
// @Tags preferences
// @Param viewId path string true "View ID"
// @Success 204 "Deleted"
// @Failure 400 {object} types.ErrorResponse "Invalid view id"
// @Router /views/{viewId}/preferences [delete]
func (h *PreferenceHandler) DeletePreferencesHandler(c *gin.Context) {
	if err := h.preferences.Delete(c.Request.Context(), c.Param("viewId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetPreferencesHandler godoc
// @Summary Clear all view preferences
// @Tags preferences
// @Success 204 "Cleared"
// @Failure 500 {object} types.ErrorResponse "Storage failure"
// @Router /views/preferences [delete]
func (h *PreferenceHandler) ResetPreferencesHandler(c *gin.Context) {
	if err := h.preferences.Reset(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
