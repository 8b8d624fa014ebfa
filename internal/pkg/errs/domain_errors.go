package errs

import "strconv"

// Sentinel errors shared across the engine layers
var (
	// Cart errors
	ErrStoreConflict = New("cart already holds items from another store")
	ErrEmptyCart     = New("cart is empty")

	// Order form errors
	ErrBlankGuestName    = New("guest name is blank")
	ErrBlankGuestPhone   = New("guest phone is blank")
	ErrBlankDeliveryAddr = New("delivery address is blank")

	// Remote service errors
	ErrNetwork = New("network failure")
	ErrDecode  = New("malformed response payload")
)

// ServerError carries a non-2xx response from the remote service.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return "server error: HTTP " + strconv.Itoa(e.StatusCode)
	}
	return "server error: HTTP " + strconv.Itoa(e.StatusCode) + ": " + e.Body
}
