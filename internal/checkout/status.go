package checkout

// PaymentStatus tracks the verification state of a transaction
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
	PaymentStatusExpired PaymentStatus = "Expired"
)

func IsValidPaymentStatus(status string) bool {
	switch PaymentStatus(status) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusExpired:
		return true
	default:
		return false
	}
}

// TicketStatus tracks the lifecycle of a single ticket
type TicketStatus string

const (
	TicketStatusReserved  TicketStatus = "Reserved"
	TicketStatusPaid      TicketStatus = "Paid"
	TicketStatusCancelled TicketStatus = "Cancelled"
)
