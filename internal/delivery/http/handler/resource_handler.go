package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"team-portal/internal/middleware"
	"team-portal/internal/usecase/resource"
	"team-portal/pkg/utils"
)

type ResourceHandler struct {
	service *resource.Service
}

func NewResourceHandler(service *resource.Service) *ResourceHandler {
	return &ResourceHandler{service: service}
}

func (h *ResourceHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/resources", h.Create)
	router.GET("/resources", h.List)
	router.DELETE("/resources/:id", h.Delete)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req resource.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Title = utils.SanitizeString(req.Title)
	req.Type = utils.SanitizeString(req.Type)
	for i, tag := range req.Tags {
		req.Tags[i] = utils.SanitizeString(tag)
	}
	if req.Description != nil {
		sanitized := utils.SanitizeText(*req.Description)
		req.Description = &sanitized
	}

	resourceID, err := h.service.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Resource added successfully", gin.H{"id": resourceID})
}

func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.service.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resources retrieved successfully", resources)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid resource ID")
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, middleware.ActorRole(c), resourceID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resource deleted successfully", nil)
}
