package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "interest-capture/internal/common/errors"
	"interest-capture/internal/common/logger"
	"interest-capture/internal/interest"
)

func newRecord(t *testing.T) *interest.Record {
	t.Helper()
	rec, err := interest.NewProductInterest("pellet", "a@b.com")
	require.NoError(t, err)
	return rec
}

func TestClient_Submit_Delivered(t *testing.T) {
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pellet", body["product"])
		assert.Equal(t, "a@b.com", body["email"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, logger.NewTestLogger(t))
	outcome, err := client.Submit(context.Background(), newRecord(t))

	assert.Equal(t, OutcomeDelivered, outcome)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&requests))
}

func TestClient_Submit_StatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    Outcome
		wantErr bool
	}{
		{name: "200 delivered", status: http.StatusOK, want: OutcomeDelivered},
		{name: "201 delivered", status: http.StatusCreated, want: OutcomeDelivered},
		{name: "204 delivered", status: http.StatusNoContent, want: OutcomeDelivered},
		{name: "400 rejected", status: http.StatusBadRequest, want: OutcomeRejected, wantErr: true},
		{name: "500 rejected", status: http.StatusInternalServerError, want: OutcomeRejected, wantErr: true},
		{name: "403 rejected", status: http.StatusForbidden, want: OutcomeRejected, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 2*time.Second, logger.NewNoOpLogger())
			outcome, err := client.Submit(context.Background(), newRecord(t))

			assert.Equal(t, tt.want, outcome)
			assert.True(t, outcome.Valid())
			if tt.wantErr {
				require.Error(t, err)
				stdErr, ok := err.(*stderrors.StandardError)
				require.True(t, ok)
				assert.Equal(t, stderrors.ErrCodeNotifyRejected, stdErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_Submit_TransportFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, 500*time.Millisecond, logger.NewNoOpLogger())
	outcome, err := client.Submit(context.Background(), newRecord(t))

	assert.Equal(t, OutcomeTransportFailed, outcome)
	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeNotifyTransport, stdErr.Code)
}

func TestClient_Submit_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond, logger.NewNoOpLogger())
	outcome, err := client.Submit(context.Background(), newRecord(t))

	assert.Equal(t, OutcomeTransportFailed, outcome)
	assert.Error(t, err)
}
