package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-portal/internal/middleware"
	"team-portal/internal/usecase/task"
	"team-portal/pkg/utils"
)

type TaskHandler struct {
	service *task.Service
}

func NewTaskHandler(service *task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/tasks", h.Create)
}

func (h *TaskHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/tasks/view", h.ListAll)
}

func (h *TaskHandler) Create(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req task.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Task = utils.SanitizeString(req.Task)
	if req.Description != nil {
		sanitized := utils.SanitizeText(*req.Description)
		req.Description = &sanitized
	}

	if err := h.service.Create(c.Request.Context(), actorID, middleware.ActorRole(c), &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Task created successfully", nil)
}

func (h *TaskHandler) ListAll(c *gin.Context) {
	tasks, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tasks retrieved successfully", tasks)
}
