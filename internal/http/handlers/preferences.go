package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/eerste-dingen/internal/http/response"
	"github.com/yungbote/eerste-dingen/internal/platform/apierr"
	"github.com/yungbote/eerste-dingen/internal/platform/dbctx"
	"github.com/yungbote/eerste-dingen/internal/services"
)

type PreferenceHandler struct {
	prefs services.PreferenceService
}

func NewPreferenceHandler(prefs services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

type preferencesResponse struct {
	LastLessonID *int `json:"lastLessonId"`
}

type setPreferencesRequest struct {
	LastLessonID int `json:"lastLessonId" binding:"required,gt=0"`
}

// GET /api/preferences
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	id, ok, err := h.prefs.LastLesson(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out := preferencesResponse{}
	if ok {
		out.LastLessonID = &id
	}
	response.RespondOK(c, out)
}

// PUT /api/preferences
func (h *PreferenceHandler) SetPreferences(c *gin.Context) {
	var req setPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("invalid_request", err))
		return
	}
	if err := h.prefs.SetLastLesson(dbctx.Context{Ctx: c.Request.Context()}, req.LastLessonID); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, preferencesResponse{LastLessonID: &req.LastLessonID})
}
