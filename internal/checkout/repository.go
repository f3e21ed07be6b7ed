package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beeos/internal/shows"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type Repository interface {
	// CreateCheckout persists the transaction plus one ticket and one detail
	// per seat inside a single atomic unit.
	CreateCheckout(ctx context.Context, txn *Transaction, studioID, showtimeID uuid.UUID, seats []string, price int64) error

	GetTransactionByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	GetTransactionByBookingCode(ctx context.Context, code string) (*Transaction, error)
	GetUserTransactions(ctx context.Context, userID uuid.UUID, query TransactionListQuery) ([]Transaction, int64, error)

	// Admin operations
	GetAllTransactions(ctx context.Context, query TransactionListQuery) ([]Transaction, int64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateCheckout runs the atomic unit of work of a checkout submission:
// transaction row, then per seat a find-or-create seat row, a Reserved ticket
// and a detail line. Any failure aborts the whole unit; nothing from the
// attempt stays visible.
func (r *repository) CreateCheckout(ctx context.Context, txn *Transaction, studioID, showtimeID uuid.UUID, seats []string, price int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("booking code %s already used: %w", txn.BookingCode, err)
			}
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		for _, label := range seats {
			seat, err := findOrCreateSeat(tx, studioID, label)
			if err != nil {
				return err
			}

			ticket := &Ticket{
				ShowtimeID:    showtimeID,
				SeatID:        seat.ID,
				Price:         price,
				Status:        TicketStatusReserved,
				TransactionID: txn.ID,
			}
			if err := tx.Create(ticket).Error; err != nil {
				// Partial unique index on (showtime_id, seat_id) for live
				// tickets; a duplicate means a concurrent checkout won.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("seat %s: %w", label, ErrSeatTaken)
				}
				return fmt.Errorf("failed to create ticket for seat %s: %w", label, err)
			}

			detail := &TransactionDetail{
				TransactionID: txn.ID,
				TicketID:      ticket.ID,
				Quantity:      1,
				UnitPrice:     price,
			}
			if err := tx.Create(detail).Error; err != nil {
				return fmt.Errorf("failed to create transaction detail for seat %s: %w", label, err)
			}

			txn.Tickets = append(txn.Tickets, *ticket)
			txn.Details = append(txn.Details, *detail)
		}

		return nil
	})
}

// findOrCreateSeat resolves a seat row by (studio, chair label), creating it
// lazily. First writer wins; losers fall through to the select.
func findOrCreateSeat(tx *gorm.DB, studioID uuid.UUID, label string) (*shows.Seat, error) {
	row, column, err := shows.ParseChairNumber(label)
	if err != nil {
		return nil, err
	}
	chairNumber := fmt.Sprintf("%s%d", row, column)

	seat := shows.Seat{
		StudioID:    studioID,
		ChairNumber: chairNumber,
		RowLine:     row,
		ColumnNo:    column,
	}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "studio_id"}, {Name: "chair_number"}},
		DoNothing: true,
	}).Create(&seat).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create seat %s: %w", chairNumber, err)
	}

	// DoNothing leaves the ID unset on conflict, so always re-select
	var existing shows.Seat
	err = tx.Where("studio_id = ? AND chair_number = ?", studioID, chairNumber).First(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seat %s: %w", chairNumber, err)
	}

	return &existing, nil
}

func (r *repository) GetTransactionByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	var txn Transaction
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Tickets.Seat").
		Preload("Details").
		Where("id = ?", id).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *repository) GetTransactionByBookingCode(ctx context.Context, code string) (*Transaction, error) {
	var txn Transaction
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Tickets.Seat").
		Preload("Details").
		Where("booking_code = ?", code).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *repository) GetUserTransactions(ctx context.Context, userID uuid.UUID, query TransactionListQuery) ([]Transaction, int64, error) {
	baseQuery := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("user_id = ?", userID)
	return r.listTransactions(baseQuery, query)
}

func (r *repository) GetAllTransactions(ctx context.Context, query TransactionListQuery) ([]Transaction, int64, error) {
	baseQuery := r.db.WithContext(ctx).Model(&Transaction{})
	return r.listTransactions(baseQuery, query)
}

func (r *repository) listTransactions(baseQuery *gorm.DB, query TransactionListQuery) ([]Transaction, int64, error) {
	var transactions []Transaction
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	if query.Status != "" {
		baseQuery = baseQuery.Where("payment_status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("Tickets").
		Preload("Tickets.Seat").
		Order("transaction_date DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&transactions).Error

	return transactions, totalCount, err
}

// UpdatePaymentStatus moves a transaction out of Pending; marking it Paid
// also flips its Reserved tickets to Paid, within the same unit of work.
func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Transaction{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"payment_status": status,
				"updated_at":     time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTransactionNotFound
		}

		if status == PaymentStatusPaid {
			err := tx.Model(&Ticket{}).
				Where("transaction_id = ? AND status = ?", id, TicketStatusReserved).
				Update("status", TicketStatusPaid).Error
			if err != nil {
				return fmt.Errorf("failed to update ticket status: %w", err)
			}
		}

		if status == PaymentStatusFailed || status == PaymentStatusExpired {
			err := tx.Model(&Ticket{}).
				Where("transaction_id = ? AND status = ?", id, TicketStatusReserved).
				Update("status", TicketStatusCancelled).Error
			if err != nil {
				return fmt.Errorf("failed to cancel tickets: %w", err)
			}
		}

		return nil
	})
}
