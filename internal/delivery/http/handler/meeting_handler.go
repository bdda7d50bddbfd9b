package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"team-portal/internal/middleware"
	"team-portal/internal/usecase/meeting"
	"team-portal/pkg/utils"
)

type MeetingHandler struct {
	service *meeting.Service
}

func NewMeetingHandler(service *meeting.Service) *MeetingHandler {
	return &MeetingHandler{service: service}
}

func (h *MeetingHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/meetings", h.List)
	router.POST("/meetings/accept", h.Accept)
}

func (h *MeetingHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/meetings", h.Create)
	router.DELETE("/meetings/:id", h.Delete)
}

func (h *MeetingHandler) Create(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req meeting.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Title = utils.SanitizeString(req.Title)
	req.Time = utils.SanitizeString(req.Time)
	if req.Description != nil {
		sanitized := utils.SanitizeText(*req.Description)
		req.Description = &sanitized
	}

	meetingID, err := h.service.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Meeting scheduled successfully", gin.H{"id": meetingID})
}

func (h *MeetingHandler) List(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	meetings, err := h.service.List(c.Request.Context(), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Meetings retrieved successfully", meetings)
}

func (h *MeetingHandler) Accept(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req meeting.AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Accept(c.Request.Context(), actorID, &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Meeting accepted successfully", nil)
}

func (h *MeetingHandler) Delete(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid meeting ID")
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, meetingID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Meeting deleted successfully", nil)
}
