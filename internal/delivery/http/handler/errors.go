package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainMeeting "team-portal/internal/domain/meeting"
	domainProgress "team-portal/internal/domain/progress"
	domainProject "team-portal/internal/domain/project"
	domainResource "team-portal/internal/domain/resource"
	domainTask "team-portal/internal/domain/task"
	domainUser "team-portal/internal/domain/user"
	"team-portal/internal/logger"
	"team-portal/internal/middleware"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

// respondWithError maps service errors onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged with the request ID; the
// client only ever sees the generic message.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domainUser.ErrUserAlreadyExists),
		errors.Is(err, domainUser.ErrUserAlreadyApproved),
		errors.Is(err, domainMeeting.ErrAlreadyAccepted),
		errors.Is(err, domainProject.ErrAlreadyLiked):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrForbidden),
		errors.Is(err, appErrors.ErrInsufficientPermissions),
		errors.Is(err, domainMeeting.ErrOwnMeetingAccept),
		errors.Is(err, domainMeeting.ErrNotMeetingCreator):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domainUser.ErrUserNotFound),
		errors.Is(err, domainMeeting.ErrMeetingNotFound),
		errors.Is(err, domainProject.ErrProjectNotFound),
		errors.Is(err, domainResource.ErrResourceNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainUser.ErrResetTokenInvalid),
		errors.Is(err, domainProgress.ErrInvalidUser),
		errors.Is(err, domainProgress.ErrInvalidCompletion),
		errors.Is(err, domainTask.ErrInvalidUser),
		errors.Is(err, domainTask.ErrInvalidStatus):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		logger.Error("Internal server error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
