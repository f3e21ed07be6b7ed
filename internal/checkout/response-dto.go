package checkout

import "time"

// SessionResponse describes the active booking session, including the data a
// client needs to render the countdown and the transfer instructions.
type SessionResponse struct {
	BookingCode      string        `json:"booking_code"`
	ShowtimeID       string        `json:"showtime_id"`
	FilmTitle        string        `json:"film_title,omitempty"`
	StudioName       string        `json:"studio_name,omitempty"`
	Seats            []string      `json:"seats"`
	TicketPrice      int64         `json:"ticket_price"`
	TotalAmount      int64         `json:"total_amount"`
	ExpiresAt        time.Time     `json:"expires_at"`
	RemainingMinutes int           `json:"remaining_minutes"`
	RemainingSeconds int           `json:"remaining_seconds"`
	Expired          bool          `json:"expired"`
	BankAccounts     []BankAccount `json:"bank_accounts"`
}

// SubmitResponse is returned after a committed checkout
type SubmitResponse struct {
	TransactionID string    `json:"transaction_id"`
	BookingCode   string    `json:"booking_code"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	TotalPayment  int64     `json:"total_payment"`
	TicketCount   int       `json:"ticket_count"`
	CreatedAt     time.Time `json:"created_at"`
}
