package booking

import "serviceboard/services"

var (
	errBookingNotFound = &services.NotFoundError{Resource: "Booking"}
	errEmailRequired   = services.NewValidationError("User email is required")
	errStatusRequired  = services.NewValidationError("Service status is required")
)
