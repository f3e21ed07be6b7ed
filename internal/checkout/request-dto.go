package checkout

import "mime/multipart"

// StartSessionRequest opens a booking session after seat selection
type StartSessionRequest struct {
	ShowtimeID string   `json:"showtime_id" binding:"required,uuid"`
	Seats      []string `json:"seats" binding:"required,min=1,dive,seatlabel"`
}

// SubmitRequest carries the multipart checkout submission. Proof is nil when
// the form field is absent.
type SubmitRequest struct {
	PaymentMethod string
	Bank          string
	Proof         *multipart.FileHeader
}

// TransactionListQuery holds list filters
type TransactionListQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// UpdateStatusRequest is the admin payment verification payload
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
