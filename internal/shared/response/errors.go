package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DomainError writes a service-layer error. Ozzo validation failures
// become 400s with field-level details regardless of the status the
// domain mapped; everything else uses the supplied status.
func DomainError(c *gin.Context, status int, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		ValidationFailed(c, verrs)
		return
	}

	ErrorResponse(c, status, codeForStatus(status), err.Error())
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
