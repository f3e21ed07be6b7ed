package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreStart(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	store := NewSessionStore(client, 10*time.Minute)

	userID := uuid.New()
	showtimeID := uuid.New()
	studioID := uuid.New()

	// stored TTL is the session TTL plus a grace minute
	redisMock.Regexp().
		ExpectSet(fmt.Sprintf("checkout:session:%s", userID), `.*`, 11*time.Minute).
		SetVal("OK")

	session, err := store.Start(context.Background(), userID, showtimeID, studioID, []string{"A1", "A2"}, 50000)
	require.NoError(t, err)

	assert.Equal(t, showtimeID, session.ShowtimeID)
	assert.Equal(t, studioID, session.StudioID)
	assert.Equal(t, []string{"A1", "A2"}, session.Seats)
	assert.Equal(t, int64(50000), session.TicketPrice)
	assert.Equal(t, int64(100000), session.TotalAmount)
	assert.Regexp(t, `^BEOS-\d{8}-[A-Z]{6}$`, session.BookingCode)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), session.ExpiresAt, 2*time.Second)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestSessionStoreStartRejectsEmptySeats(t *testing.T) {
	client, _ := redismock.NewClientMock()
	store := NewSessionStore(client, 10*time.Minute)

	_, err := store.Start(context.Background(), uuid.New(), uuid.New(), uuid.New(), nil, 50000)
	assert.ErrorIs(t, err, ErrNoSeats)
}

func TestSessionStoreGet(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	store := NewSessionStore(client, 10*time.Minute)

	userID := uuid.New()
	want := &BookingSession{
		BookingCode: "BEOS-20260830-ABCDEF",
		ShowtimeID:  uuid.New(),
		StudioID:    uuid.New(),
		Seats:       []string{"B3"},
		TicketPrice: 45000,
		TotalAmount: 45000,
		ExpiresAt:   time.Now().Add(3 * time.Minute).Truncate(time.Second),
	}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	redisMock.ExpectGet(fmt.Sprintf("checkout:session:%s", userID)).SetVal(string(data))

	got, err := store.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want.BookingCode, got.BookingCode)
	assert.Equal(t, want.Seats, got.Seats)
	assert.Equal(t, want.TotalAmount, got.TotalAmount)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestSessionStoreGetMissing(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	store := NewSessionStore(client, 10*time.Minute)

	userID := uuid.New()
	redisMock.ExpectGet(fmt.Sprintf("checkout:session:%s", userID)).RedisNil()

	_, err := store.Get(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStoreClear(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	store := NewSessionStore(client, 10*time.Minute)

	userID := uuid.New()
	redisMock.ExpectDel(fmt.Sprintf("checkout:session:%s", userID)).SetVal(1)

	err := store.Clear(context.Background(), userID)
	require.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestBookingSessionCountdown(t *testing.T) {
	expiry := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	session := &BookingSession{ExpiresAt: expiry}

	assert.False(t, session.IsExpired(expiry.Add(-time.Nanosecond)))
	assert.True(t, session.IsExpired(expiry))
	assert.True(t, session.IsExpired(expiry.Add(time.Hour)))

	minutes, seconds := session.Remaining(expiry.Add(-9*time.Minute - 30*time.Second))
	assert.Equal(t, 9, minutes)
	assert.Equal(t, 30, seconds)

	minutes, seconds = session.Remaining(expiry.Add(time.Minute))
	assert.Equal(t, 0, minutes)
	assert.Equal(t, 0, seconds)
}

func TestGenerateBookingCode(t *testing.T) {
	pattern := regexp.MustCompile(`^BEOS-\d{8}-[A-Z]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateBookingCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "booking code %s generated twice", code)
		seen[code] = true
	}
}
