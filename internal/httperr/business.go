package httperr

import "errors"

// Business error codes used across the booking engine.
const (
	CodeSlotUnavailable   = "slot_unavailable"
	CodeServiceRequired   = "service_required"
	CodeAlreadyProcessed  = "already_processed"
	CodeInvalidTransition = "invalid_transition"
	CodeStoreUnreachable  = "store_unreachable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code, or "" when err is not a business error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
