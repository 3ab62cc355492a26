package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type errorSpec struct {
	status  int
	message string
}

var businessErrors = map[string]errorSpec{
	"salon_not_found":    {http.StatusNotFound, "Salon not found."},
	"booking_not_found":  {http.StatusNotFound, "Booking not found."},
	"user_not_found":     {http.StatusNotFound, "User not found."},
	"slot_taken":         {http.StatusBadRequest, "slot occupied"},
	"invalid_status":     {http.StatusBadRequest, "Status is not a valid value."},
	"invalid_request":    {http.StatusBadRequest, "Request is invalid."},
	"invalid_image":      {http.StatusBadRequest, "Image could not be read."},
	"already_has_salon":  {http.StatusBadRequest, "User already has a salon."},
	"email_taken":        {http.StatusBadRequest, "Email is already registered."},
	"invalid_transition": {http.StatusConflict, "Status change is not allowed."},
	"forbidden":          {http.StatusForbidden, "Not allowed."},
	"store_unavailable":  {http.StatusServiceUnavailable, "Storage is unavailable, try again."},
	"media_unavailable":  {http.StatusServiceUnavailable, "Media uploads are not configured."},
}

// slotConflictBody keeps the public booking form's contract: clients match
// on error == "slot occupied"; code carries the machine value.
type slotConflictBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError renders err as {"error": code, "message": text}. Business
// errors keep their code; invalid input carries its detail as the message.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	code := httperr.CodeOf(err)
	spec, ok := businessErrors[code]
	if !ok {
		log.Error("unhandled error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	message := spec.message
	if code == "invalid_request" && err.Error() != code {
		message = err.Error()
	}
	if spec.status >= http.StatusInternalServerError {
		log.Warn("store failure", zap.String("path", c.FullPath()), zap.Error(err))
	}

	if code == "slot_taken" {
		c.AbortWithStatusJSON(spec.status, slotConflictBody{
			Error:   spec.message,
			Code:    code,
			Message: "That date and time is already booked.",
		})
		return
	}

	httperr.Write(c, spec.status, code, message)
}

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}
