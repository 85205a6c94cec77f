package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixster-server/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Code      string `json:"code,omitempty"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError handles domain errors and returns appropriate HTTP responses
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(domainErr.Type)

		errorMessage := domainErr.Message
		if errorMessage == "" {
			errorMessage = message
		}

		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
			Code:      domainErr.Code,
			Error:     errorMessage,
			Message:   errorMessage,
			RequestID: domainErr.RequestID,
		})
		return
	}

	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Message: message,
	})
}

// HandleErrorWithStatus aborts with an explicit status code.
func HandleErrorWithStatus(reqCtx *gin.Context, statusCode int, err error, message string) {
	resp := ErrorResponse{
		Error:   message,
		Message: message,
	}
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		resp.Code = domainErr.Code
		resp.RequestID = domainErr.RequestID
	}
	reqCtx.AbortWithStatusJSON(statusCode, resp)
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	ctx := reqCtx.Request.Context()
	err := platformerrors.NewError(ctx, platformerrors.LayerRoute, errorType, message, nil, uuid)

	statusCode := platformerrors.ErrorTypeToHTTPStatus(err.Type)

	reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
		Code:      err.Code,
		Error:     message,
		Message:   message,
		RequestID: err.RequestID,
	})
}
