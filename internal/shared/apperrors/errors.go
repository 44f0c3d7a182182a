// Package apperrors defines the typed outcomes every service returns to its
// callers. Controllers branch on Kind to pick a status code; callers that care
// about the precise rejection use errors.Is against the exported sentinels.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind groups reasons by how a caller should react to them.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
)

// Reason is the precise rejection cause.
type Reason string

const (
	ReasonInvalidSeat           Reason = "INVALID_SEAT"
	ReasonSeatTaken             Reason = "SEAT_TAKEN"
	ReasonMissingPatron         Reason = "MISSING_PATRON"
	ReasonInvalidRequest        Reason = "INVALID_REQUEST"
	ReasonCapacityBelowBookings Reason = "CAPACITY_BELOW_BOOKINGS"

	ReasonUnknownTrip     Reason = "UNKNOWN_TRIP"
	ReasonBookingNotFound Reason = "BOOKING_NOT_FOUND"
	ReasonPatronNotFound  Reason = "PATRON_NOT_FOUND"

	ReasonConcurrentBooking Reason = "CONCURRENT_BOOKING"
	ReasonTripBusy          Reason = "TRIP_BUSY"
	ReasonPatronHasBookings Reason = "PATRON_HAS_BOOKINGS"
)

// Error is a typed application error.
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same reason, so a detailed error
// returned by a service still satisfies errors.Is(err, ErrSeatTaken).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// Sentinels
var (
	ErrInvalidSeat           = &Error{Kind: KindValidation, Reason: ReasonInvalidSeat, Message: "seat number is out of range"}
	ErrSeatTaken             = &Error{Kind: KindValidation, Reason: ReasonSeatTaken, Message: "seat is already booked"}
	ErrMissingPatron         = &Error{Kind: KindValidation, Reason: ReasonMissingPatron, Message: "patron id is missing or malformed"}
	ErrInvalidRequest        = &Error{Kind: KindValidation, Reason: ReasonInvalidRequest, Message: "invalid request"}
	ErrCapacityBelowBookings = &Error{Kind: KindValidation, Reason: ReasonCapacityBelowBookings, Message: "bus capacity cannot drop below a booked seat"}

	ErrUnknownTrip     = &Error{Kind: KindNotFound, Reason: ReasonUnknownTrip, Message: "trip not found"}
	ErrBookingNotFound = &Error{Kind: KindNotFound, Reason: ReasonBookingNotFound, Message: "no active booking for seat"}
	ErrPatronNotFound  = &Error{Kind: KindNotFound, Reason: ReasonPatronNotFound, Message: "patron not found"}

	ErrConcurrentBooking = &Error{Kind: KindConflict, Reason: ReasonConcurrentBooking, Message: "seat was booked by a concurrent request"}
	ErrTripBusy          = &Error{Kind: KindConflict, Reason: ReasonTripBusy, Message: "trip is locked by another booking request"}
	ErrPatronHasBookings = &Error{Kind: KindConflict, Reason: ReasonPatronHasBookings, Message: "patron still holds bookings"}
)

// New builds an error of the sentinel's kind and reason with a specific message.
func New(sentinel *Error, format string, args ...interface{}) *Error {
	return &Error{Kind: sentinel.Kind, Reason: sentinel.Reason, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to the sentinel's kind and reason.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{Kind: sentinel.Kind, Reason: sentinel.Reason, Message: sentinel.Message, Err: err}
}

// Validation builds an INVALID_REQUEST error, used for malformed input outside the booking rules.
func Validation(format string, args ...interface{}) *Error {
	return New(ErrInvalidRequest, format, args...)
}

// As extracts the typed error from err, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// IsValidation reports whether err is a validation rejection
func IsValidation(err error) bool { return hasKind(err, KindValidation) }

// IsNotFound reports whether err is a not-found rejection
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsConflict reports whether err is a conflict
func IsConflict(err error) bool { return hasKind(err, KindConflict) }
