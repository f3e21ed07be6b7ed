package checkout

import (
	"context"
	"fmt"
	"sort"
	"time"

	"beeos/internal/shows"
	"beeos/pkg/logger"

	"github.com/google/uuid"
)

// ShowtimeGetter is the narrow view of the shows service the engine needs
// (avoids a package cycle with shows).
type ShowtimeGetter interface {
	GetShowtime(ctx context.Context, id uuid.UUID) (*shows.Showtime, error)
}

// Notifier is the user-facing status channel. Fire-and-forget: implementations
// must not block the checkout on delivery and never return an error to it.
type Notifier interface {
	Notify(ctx context.Context, kind string, userID string, message string, fields map[string]interface{})
}

// Notification kinds
const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyError   = "error"
)

// Service interface defines the contract for the checkout flow
type Service interface {
	StartSession(ctx context.Context, userID uuid.UUID, req StartSessionRequest) (*SessionResponse, error)
	GetSession(ctx context.Context, userID uuid.UUID) (*SessionResponse, error)
	Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (*SubmitResponse, error)

	GetTransactionForUser(ctx context.Context, id, userID uuid.UUID, isAdmin bool) (*Transaction, error)
	GetUserTransactions(ctx context.Context, userID uuid.UUID, query TransactionListQuery) ([]Transaction, int64, error)

	// Admin operations
	ListAllTransactions(ctx context.Context, query TransactionListQuery) ([]Transaction, int64, error)
	GetTransactionByBookingCode(ctx context.Context, code string) (*Transaction, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
}

type service struct {
	repo         Repository
	sessions     SessionStore
	proofs       ProofStore
	showtimes    ShowtimeGetter
	notifier     Notifier
	proofMaxSize int64
	log          *logger.Logger
}

// NewService creates a new checkout service instance
func NewService(repo Repository, sessions SessionStore, proofs ProofStore, showtimes ShowtimeGetter, notifier Notifier, proofMaxSize int64) Service {
	return &service{
		repo:         repo,
		sessions:     sessions,
		proofs:       proofs,
		showtimes:    showtimes,
		notifier:     notifier,
		proofMaxSize: proofMaxSize,
		log:          logger.GetDefault(),
	}
}

// StartSession opens a booking session for the user's selected seats
func (s *service) StartSession(ctx context.Context, userID uuid.UUID, req StartSessionRequest) (*SessionResponse, error) {
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	showtime, err := s.showtimes.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	seats, err := normalizeSeats(req.Seats)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Start(ctx, userID, showtime.ID, showtime.StudioID, seats, showtime.Price)
	if err != nil {
		return nil, err
	}

	s.log.LogCheckoutStarted(ctx, userID.String(), showtime.ID.String(), session.BookingCode, seats)
	s.notifier.Notify(ctx, NotifyInfo, userID.String(),
		fmt.Sprintf("Booking session started, complete payment within %d minutes", int(time.Until(session.ExpiresAt).Minutes())+1),
		map[string]interface{}{"booking_code": session.BookingCode})

	return s.buildSessionResponse(session, showtime), nil
}

// GetSession returns the active session with its countdown state
func (s *service) GetSession(ctx context.Context, userID uuid.UUID) (*SessionResponse, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var showtime *shows.Showtime
	if st, err := s.showtimes.GetShowtime(ctx, session.ShowtimeID); err == nil {
		showtime = st
	}

	return s.buildSessionResponse(session, showtime), nil
}

// Submit runs the checkout transaction engine. Preconditions: an unexpired
// session exists and the proof validates; then the proof is stored and the
// transaction, tickets and details are persisted atomically.
func (s *service) Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (*SubmitResponse, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if session.IsExpired(now) {
		return nil, ErrSessionExpired
	}

	if len(session.Seats) == 0 {
		return nil, ErrNoSeats
	}

	if req.PaymentMethod != PaymentMethodBankTransfer || !IsSupportedBank(req.Bank) {
		return nil, ErrInvalidPayment
	}

	// Validation happens before any storage or database I/O
	if err := ValidateProof(req.Proof, s.proofMaxSize); err != nil {
		return nil, err
	}

	proofPath, err := s.proofs.Save(ctx, req.Proof, userID.String())
	if err != nil {
		s.failCheckout(ctx, userID, session, err)
		return nil, err
	}

	txn := &Transaction{
		UserID:          userID,
		TransactionDate: now,
		TotalPayment:    session.TotalAmount,
		PaymentMethod:   PaymentMethodLabel(req.Bank),
		PaymentStatus:   PaymentStatusPending,
		PaymentProof:    proofPath,
		BookingCode:     session.BookingCode,
	}

	err = s.repo.CreateCheckout(ctx, txn, session.StudioID, session.ShowtimeID, session.Seats, session.TicketPrice)
	if err != nil {
		// The stored proof is intentionally left in place; the path is
		// logged so a reconciliation sweep can find orphans.
		s.log.WithFields(map[string]interface{}{"payment_proof": proofPath}).
			LogCheckoutFailed(ctx, userID.String(), session.Seats, session.TotalAmount, err)
		s.notifier.Notify(ctx, NotifyError, userID.String(),
			"Transaction failed: "+err.Error(),
			map[string]interface{}{"kind": string(KindOf(err)), "booking_code": session.BookingCode})
		return nil, err
	}

	// Commit succeeded; session teardown is best effort
	if err := s.sessions.Clear(ctx, userID); err != nil {
		s.log.WithError(err).Warn("failed to clear booking session", "user_id", userID.String())
	}

	s.log.LogCheckoutCompleted(ctx, txn.ID.String(), txn.BookingCode, userID.String(), txn.TotalPayment)
	s.notifier.Notify(ctx, NotifySuccess, userID.String(),
		"Your booking has been submitted successfully! Your booking code is "+txn.BookingCode,
		map[string]interface{}{"booking_code": txn.BookingCode, "transaction_id": txn.ID.String()})

	return &SubmitResponse{
		TransactionID: txn.ID.String(),
		BookingCode:   txn.BookingCode,
		PaymentStatus: string(txn.PaymentStatus),
		PaymentMethod: txn.PaymentMethod,
		TotalPayment:  txn.TotalPayment,
		TicketCount:   len(txn.Tickets),
		CreatedAt:     txn.TransactionDate,
	}, nil
}

func (s *service) GetTransactionForUser(ctx context.Context, id, userID uuid.UUID, isAdmin bool) (*Transaction, error) {
	txn, err := s.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && txn.UserID != userID {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

func (s *service) GetUserTransactions(ctx context.Context, userID uuid.UUID, query TransactionListQuery) ([]Transaction, int64, error) {
	return s.repo.GetUserTransactions(ctx, userID, query)
}

func (s *service) ListAllTransactions(ctx context.Context, query TransactionListQuery) ([]Transaction, int64, error) {
	return s.repo.GetAllTransactions(ctx, query)
}

func (s *service) GetTransactionByBookingCode(ctx context.Context, code string) (*Transaction, error) {
	return s.repo.GetTransactionByBookingCode(ctx, code)
}

func (s *service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	return s.repo.UpdatePaymentStatus(ctx, id, status)
}

func (s *service) failCheckout(ctx context.Context, userID uuid.UUID, session *BookingSession, err error) {
	s.log.LogCheckoutFailed(ctx, userID.String(), session.Seats, session.TotalAmount, err)
	s.notifier.Notify(ctx, NotifyError, userID.String(),
		"Transaction failed: "+err.Error(),
		map[string]interface{}{"kind": string(KindOf(err)), "booking_code": session.BookingCode})
}

func (s *service) buildSessionResponse(session *BookingSession, showtime *shows.Showtime) *SessionResponse {
	now := time.Now()
	minutes, seconds := session.Remaining(now)

	resp := &SessionResponse{
		BookingCode:      session.BookingCode,
		ShowtimeID:       session.ShowtimeID.String(),
		Seats:            session.Seats,
		TicketPrice:      session.TicketPrice,
		TotalAmount:      session.TotalAmount,
		ExpiresAt:        session.ExpiresAt,
		RemainingMinutes: minutes,
		RemainingSeconds: seconds,
		Expired:          session.IsExpired(now),
		BankAccounts:     sortedBankAccounts(),
	}

	if showtime != nil {
		if showtime.Film != nil {
			resp.FilmTitle = showtime.Film.Title
		}
		if showtime.Studio != nil {
			resp.StudioName = showtime.Studio.Name
		}
	}

	return resp
}

// normalizeSeats uppercases, canonicalizes and dedupes seat labels while
// keeping selection order
func normalizeSeats(labels []string) ([]string, error) {
	seen := make(map[string]bool, len(labels))
	seats := make([]string, 0, len(labels))

	for _, label := range labels {
		row, column, err := shows.ParseChairNumber(label)
		if err != nil {
			return nil, err
		}
		normalized := fmt.Sprintf("%s%d", row, column)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		seats = append(seats, normalized)
	}

	if len(seats) == 0 {
		return nil, ErrNoSeats
	}
	return seats, nil
}

func sortedBankAccounts() []BankAccount {
	accounts := make([]BankAccount, 0, len(BankAccounts))
	for _, acc := range BankAccounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})
	return accounts
}
