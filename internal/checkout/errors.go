package checkout

import "errors"

// Checkout failure taxonomy. Everything here is retryable by the user except
// the session errors, which require restarting seat selection.
var (
	ErrProofMissing   = errors.New("payment proof not uploaded")
	ErrProofType      = errors.New("payment proof must be a jpg, jpeg or png image")
	ErrProofTooLarge  = errors.New("payment proof must not exceed 2MB")
	ErrNoSession      = errors.New("no active booking session, please select seats first")
	ErrSessionExpired = errors.New("booking session has expired, please try again")
	ErrNoSeats        = errors.New("no seats selected")
	ErrInvalidPayment = errors.New("unsupported payment method or bank")
	ErrProofStorage   = errors.New("failed to store payment proof")
	ErrSeatTaken      = errors.New("seat is already taken for this showtime")
)

// Kind is a stable machine-readable label for a checkout failure, used in
// notifications and log fields.
type Kind string

const (
	KindProofMissing   Kind = "PROOF_MISSING"
	KindProofType      Kind = "UNSUPPORTED_PROOF_TYPE"
	KindProofTooLarge  Kind = "PROOF_TOO_LARGE"
	KindNoSession      Kind = "NO_SESSION"
	KindSessionExpired Kind = "SESSION_EXPIRED"
	KindNoSeats        Kind = "NO_SEATS"
	KindInvalidPayment Kind = "INVALID_PAYMENT"
	KindStorage        Kind = "STORAGE_WRITE_FAILED"
	KindSeatTaken      Kind = "SEAT_ALREADY_TAKEN"
	KindPersistence    Kind = "PERSISTENCE_FAILED"
)

// KindOf maps an error from the checkout flow onto its taxonomy kind
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrProofMissing):
		return KindProofMissing
	case errors.Is(err, ErrProofType):
		return KindProofType
	case errors.Is(err, ErrProofTooLarge):
		return KindProofTooLarge
	case errors.Is(err, ErrNoSession):
		return KindNoSession
	case errors.Is(err, ErrSessionExpired):
		return KindSessionExpired
	case errors.Is(err, ErrNoSeats):
		return KindNoSeats
	case errors.Is(err, ErrInvalidPayment):
		return KindInvalidPayment
	case errors.Is(err, ErrProofStorage):
		return KindStorage
	case errors.Is(err, ErrSeatTaken):
		return KindSeatTaken
	default:
		return KindPersistence
	}
}
