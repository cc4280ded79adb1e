package eld

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fleetflow/internal/ifta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fastRetry = RetryConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}

func quarter() (time.Time, time.Time) {
	p := ifta.Period{Year: 2024, Quarter: 3}
	return p.Start(), p.End()
}

func TestFetchMileage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenants/T1/mileage", r.URL.Path)
		assert.Equal(t, "2024-07-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-10-01", r.URL.Query().Get("to"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records":[
			{"vehicle_id":"TRK-101","travel_date":"2024-07-15","jurisdiction_code":"GA","miles":285.7,"source_ref":"trip-1"},
			{"vehicle_id":"TRK-101","travel_date":"2024-07-16","jurisdiction_code":"TN","miles":"120.25","source_ref":"trip-2"}
		]}`))
	}))
	defer srv.Close()

	from, to := quarter()
	records, err := NewClient(srv.URL, "secret", time.Second, fastRetry, zap.NewNop()).FetchMileage(context.Background(), "T1", from, to)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "GA", records[0].JurisdictionCode)
	assert.Equal(t, "285.7", records[0].Miles.String())
	assert.Equal(t, "120.25", records[1].Miles.String())
	assert.Equal(t, "trip-2", records[1].SourceRef)
}

func TestFetchMileageRetriesTransientFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	from, to := quarter()
	records, err := NewClient(srv.URL, "", time.Second, fastRetry, nil).FetchMileage(context.Background(), "T1", from, to)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchMileageGivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	from, to := quarter()
	_, err := NewClient(srv.URL, "", time.Second, fastRetry, nil).FetchMileage(context.Background(), "T1", from, to)

	var depErr *ifta.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "eld", depErr.Dependency)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "one attempt plus two retries")
}

func TestFetchMileageDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad key"))
	}))
	defer srv.Close()

	from, to := quarter()
	_, err := NewClient(srv.URL, "wrong", time.Second, fastRetry, nil).FetchMileage(context.Background(), "T1", from, to)

	var depErr *ifta.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Contains(t, err.Error(), "bad key")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchMileageTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	from, to := quarter()
	client := NewClient(srv.URL, "", 20*time.Millisecond, RetryConfig{MaxRetries: 0}, nil)
	_, err := client.FetchMileage(context.Background(), "T1", from, to)

	var depErr *ifta.DependencyError
	assert.ErrorAs(t, err, &depErr)
}
