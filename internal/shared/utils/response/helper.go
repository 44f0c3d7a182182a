package response

import (
	"net/http"

	"saunie/internal/shared/apperrors"
	"saunie/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// StatusFor maps an error kind to the HTTP status the console expects.
func StatusFor(err error) int {
	appErr, ok := apperrors.As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the envelope for err. Typed errors expose kind and
// reason so the console can branch on them; anything else is a 500 whose
// detail is logged, not returned.
func RespondError(c *gin.Context, err error) {
	code := StatusFor(err)
	appErr, ok := apperrors.As(err)
	if !ok {
		logger.GetDefault().LogHTTPError(c, err, code)
		RespondJSON(c, "error", code, "Internal server error", nil, nil)
		return
	}
	RespondJSON(c, "error", code, appErr.Error(), nil, ErrorDetail{
		Kind:   string(appErr.Kind),
		Reason: string(appErr.Reason),
		Detail: appErr.Message,
	})
}
