package checkout

import (
	"strings"
	"time"

	"beeos/internal/shows"

	"github.com/google/uuid"
)

// Transaction defines one checkout submission. Created exactly once per
// successful submit, always starting at Pending.
type Transaction struct {
	ID              uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID     `gorm:"type:uuid;index;not null" json:"user_id"`
	TransactionDate time.Time     `gorm:"not null" json:"transaction_date"`
	TotalPayment    int64         `gorm:"not null" json:"total_payment"`
	PaymentMethod   string        `gorm:"type:varchar(50);not null" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);check:payment_status IN ('Pending', 'Paid', 'Failed', 'Expired');default:'Pending'" json:"payment_status"`
	PaymentProof    string        `gorm:"not null" json:"payment_proof"`
	BookingCode     string        `gorm:"type:varchar(20);not null" json:"booking_code"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Relationships
	Tickets []Ticket            `json:"tickets,omitempty" gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE;"`
	Details []TransactionDetail `json:"details,omitempty" gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE;"`
}

// Ticket defines one reserved seat within a transaction
type Ticket struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ShowtimeID    uuid.UUID    `gorm:"type:uuid;index;not null" json:"showtime_id"`
	SeatID        uuid.UUID    `gorm:"type:uuid;index;not null" json:"seat_id"`
	Price         int64        `gorm:"not null" json:"price"`
	Status        TicketStatus `gorm:"type:varchar(20);check:status IN ('Reserved', 'Paid', 'Cancelled');default:'Reserved'" json:"status"`
	TransactionID uuid.UUID    `gorm:"type:uuid;index;not null" json:"transaction_id"`
	CreatedAt     time.Time    `json:"created_at"`

	// Relationships
	Seat *shows.Seat `json:"seat,omitempty" gorm:"foreignKey:SeatID;constraint:OnDelete:RESTRICT;"`
}

// TransactionDetail defines one line item, quantity is always 1 per ticket
type TransactionDetail struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null" json:"transaction_id"`
	TicketID      uuid.UUID `gorm:"type:uuid;index;not null" json:"ticket_id"`
	Quantity      int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice     int64     `gorm:"not null" json:"unit_price"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Transaction) TableName() string       { return "transactions" }
func (Ticket) TableName() string            { return "tickets" }
func (TransactionDetail) TableName() string { return "transaction_details" }

func (t *Transaction) IsPending() bool {
	return t.PaymentStatus == PaymentStatusPending
}

func (t *Transaction) IsPaid() bool {
	return t.PaymentStatus == PaymentStatusPaid
}

// PaymentMethodBankTransfer is the only supported payment method
const PaymentMethodBankTransfer = "bank_transfer"

// BankAccount is a destination account shown to the user for manual transfer
type BankAccount struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// BankAccounts lists the supported transfer destinations
var BankAccounts = map[string]BankAccount{
	"bca": {
		Code:          "bca",
		Name:          "BCA",
		AccountNumber: "1234-5678-9012",
		AccountHolder: "PT. Beeos Cinema",
	},
	"mandiri": {
		Code:          "mandiri",
		Name:          "Mandiri",
		AccountNumber: "9876-5432-1098",
		AccountHolder: "PT. Beeos Cinema",
	},
	"bni": {
		Code:          "bni",
		Name:          "BNI",
		AccountNumber: "0123-4567-8901",
		AccountHolder: "PT. Beeos Cinema",
	},
}

// IsSupportedBank reports whether the bank code is one of the fixed set
func IsSupportedBank(code string) bool {
	_, ok := BankAccounts[strings.ToLower(code)]
	return ok
}

// PaymentMethodLabel builds the persisted payment method description,
// e.g. "Bank Transfer - BCA"
func PaymentMethodLabel(bank string) string {
	return "Bank Transfer - " + strings.ToUpper(bank)
}
