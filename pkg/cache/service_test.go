package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetHit(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	svc := NewService(client)

	want := payload{Name: "studio-1", Count: 3}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	redisMock.ExpectGet("key").SetVal(string(data))

	var got payload
	require.NoError(t, svc.Get(context.Background(), "key", &got))
	assert.Equal(t, want, got)
}

func TestGetMiss(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	svc := NewService(client)

	redisMock.ExpectGet("key").RedisNil()

	var got payload
	err := svc.Get(context.Background(), "key", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSet(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	svc := NewService(client)

	value := payload{Name: "studio-1", Count: 3}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	redisMock.ExpectSet("key", data, time.Minute).SetVal("OK")

	require.NoError(t, svc.Set(context.Background(), "key", value, time.Minute))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetOrSetMissPopulates(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	svc := NewService(client)

	fresh := payload{Name: "fresh", Count: 1}
	data, err := json.Marshal(fresh)
	require.NoError(t, err)

	redisMock.ExpectGet("key").RedisNil()
	redisMock.ExpectSet("key", data, time.Minute).SetVal("OK")

	var got payload
	err = svc.GetOrSet(context.Background(), "key", time.Minute, func() (interface{}, error) {
		return fresh, nil
	}, &got)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetOrSetHitSkipsFetcher(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	svc := NewService(client)

	cached := payload{Name: "cached", Count: 2}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	redisMock.ExpectGet("key").SetVal(string(data))

	var got payload
	err = svc.GetOrSet(context.Background(), "key", time.Minute, func() (interface{}, error) {
		t.Fatal("fetcher should not run on a cache hit")
		return nil, nil
	}, &got)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestGetOrSetBackendErrorFallsBack(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	svc := NewService(client)

	redisMock.ExpectGet("key").SetErr(errors.New("connection refused"))

	fresh := payload{Name: "fresh", Count: 9}
	var got payload
	err := svc.GetOrSet(context.Background(), "key", time.Minute, func() (interface{}, error) {
		return fresh, nil
	}, &got)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestGetOrSetFetcherError(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	svc := NewService(client)

	redisMock.ExpectGet("key").RedisNil()

	wantErr := errors.New("db down")
	var got payload
	err := svc.GetOrSet(context.Background(), "key", time.Minute, func() (interface{}, error) {
		return nil, wantErr
	}, &got)
	assert.ErrorIs(t, err, wantErr)
}
