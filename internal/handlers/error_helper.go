package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
)

// writeBusinessError maps engine error codes onto HTTP responses. Slot and
// service failures surface inline so the client can re-pick; store failures
// become a retry prompt, never "no slots".
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch {
	case code == httperr.CodeSlotUnavailable:
		httperr.Conflict(c, code, "That slot is no longer available.")
	case code == httperr.CodeAlreadyProcessed:
		httperr.Conflict(c, code, "This reservation was already decided.")
	case code == httperr.CodeServiceRequired:
		httperr.BadRequest(c, code, "Please choose one of the stylist's services.")
	case code == httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "This change is not allowed.")
	case code == httperr.CodeStoreUnreachable:
		httperr.Unavailable(c, code, "Temporary problem, please retry.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Not found.")
	case code != "":
		httperr.BadRequest(c, code, "Invalid request.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
