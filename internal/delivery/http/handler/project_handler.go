package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"team-portal/internal/middleware"
	"team-portal/internal/usecase/project"
	"team-portal/pkg/utils"
)

type ProjectHandler struct {
	service *project.Service
}

func NewProjectHandler(service *project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/projects", h.List)
	router.POST("/projects/like", h.ToggleLike)
	router.POST("/projects/comment", h.Comment)
}

func (h *ProjectHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/projects", h.Create)
	router.DELETE("/projects/:id", h.Delete)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req project.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Title = utils.SanitizeString(req.Title)
	req.Description = utils.SanitizeText(req.Description)
	req.TechStack = utils.SanitizeString(req.TechStack)

	projectID, err := h.service.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Project added successfully", gin.H{"id": projectID})
}

func (h *ProjectHandler) List(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	projects, err := h.service.List(c.Request.Context(), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Projects retrieved successfully", projects)
}

func (h *ProjectHandler) ToggleLike(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req project.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), actorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	message := "Like added successfully"
	if result == project.Unliked {
		message = "Like removed successfully"
	}
	utils.SuccessResponse(c, http.StatusOK, message, nil)
}

func (h *ProjectHandler) Comment(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req project.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Content = utils.SanitizeText(req.Content)

	if err := h.service.Comment(c.Request.Context(), actorID, &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Comment added successfully", nil)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, projectID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project deleted successfully", nil)
}
