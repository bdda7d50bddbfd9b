package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-portal/internal/middleware"
	"team-portal/internal/usecase/progress"
	"team-portal/pkg/utils"
)

type ProgressHandler struct {
	service *progress.Service
}

func NewProgressHandler(service *progress.Service) *ProgressHandler {
	return &ProgressHandler{service: service}
}

func (h *ProgressHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/progress", h.Submit)
}

func (h *ProgressHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/progress/view", h.ListAll)
}

func (h *ProgressHandler) Submit(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req progress.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.ProjectName = utils.SanitizeString(req.ProjectName)
	req.Week = utils.SanitizeString(req.Week)
	req.Status = utils.SanitizeString(req.Status)
	if req.ProjectDescription != nil {
		sanitized := utils.SanitizeText(*req.ProjectDescription)
		req.ProjectDescription = &sanitized
	}
	if req.Notes != nil {
		sanitized := utils.SanitizeText(*req.Notes)
		req.Notes = &sanitized
	}

	if err := h.service.Submit(c.Request.Context(), actorID, middleware.ActorRole(c), &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Progress submitted successfully", nil)
}

func (h *ProgressHandler) ListAll(c *gin.Context) {
	entries, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Progress entries retrieved successfully", entries)
}
