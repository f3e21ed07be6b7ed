package checkout

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BookingSession is the ephemeral state of one checkout attempt, scoped to a
// single user. Created at checkout entry, cleared on successful commit,
// dropped by Redis after expiry.
type BookingSession struct {
	BookingCode string    `json:"booking_code"`
	ShowtimeID  uuid.UUID `json:"showtime_id"`
	StudioID    uuid.UUID `json:"studio_id"`
	Seats       []string  `json:"seats"`
	TicketPrice int64     `json:"ticket_price"`
	TotalAmount int64     `json:"total_amount"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry timestamp
func (s *BookingSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Remaining returns the countdown left on the session, clamped to zero
func (s *BookingSession) Remaining(now time.Time) (minutes, seconds int) {
	if s.IsExpired(now) {
		return 0, 0
	}
	left := int(s.ExpiresAt.Sub(now).Seconds())
	return left / 60, left % 60
}

// SessionStore manages booking sessions keyed by user ID
type SessionStore interface {
	Start(ctx context.Context, userID uuid.UUID, showtimeID, studioID uuid.UUID, seats []string, ticketPrice int64) (*BookingSession, error)
	Get(ctx context.Context, userID uuid.UUID) (*BookingSession, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed booking session store
func NewSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("checkout:session:%s", userID)
}

// Start opens a new booking session, replacing any previous one for the user
func (s *redisSessionStore) Start(ctx context.Context, userID uuid.UUID, showtimeID, studioID uuid.UUID, seats []string, ticketPrice int64) (*BookingSession, error) {
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}

	bookingCode, err := GenerateBookingCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking code: %w", err)
	}

	session := &BookingSession{
		BookingCode: bookingCode,
		ShowtimeID:  showtimeID,
		StudioID:    studioID,
		Seats:       seats,
		TicketPrice: ticketPrice,
		TotalAmount: int64(len(seats)) * ticketPrice,
		ExpiresAt:   time.Now().Add(s.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	// Kept briefly past expiry so a late submit reports SessionExpired
	// instead of a missing session.
	if err := s.client.Set(ctx, sessionKey(userID), data, s.ttl+time.Minute).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return session, nil
}

func (s *redisSessionStore) Get(ctx context.Context, userID uuid.UUID) (*BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (s *redisSessionStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(userID)).Err()
}

// GenerateBookingCode produces a booking reference like BEOS-20250830-QRZKXA
func GenerateBookingCode() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("BEOS-%s-%s", timestamp, string(randomPart)), nil
}
