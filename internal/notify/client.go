// Package notify performs the single best-effort delivery of an interest
// record to the external notification endpoint.
package notify

import (
	"bytes"
	"context"
	nethttp "net/http"
	"time"

	"interest-capture/internal/common/errors"
	"interest-capture/internal/common/http"
	"interest-capture/internal/common/logger"
	"interest-capture/internal/interest"
)

// Outcome classifies one delivery attempt.
type Outcome string

const (
	// OutcomeDelivered means the endpoint acknowledged the record.
	OutcomeDelivered Outcome = "delivered"
	// OutcomeRejected means the endpoint was reachable but declined.
	OutcomeRejected Outcome = "rejected"
	// OutcomeTransportFailed means the request never completed.
	OutcomeTransportFailed Outcome = "transport_failed"
)

// Notifier submits one record per call. Implementations keep no state
// between calls and never retry.
type Notifier interface {
	Submit(ctx context.Context, record *interest.Record) (Outcome, error)
}

// Client posts interest records to a fixed endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(endpoint string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: http.NewClient(timeout),
		logger:     log.WithFields(map[string]interface{}{"component": "notify"}),
	}
}

// Submit sends exactly one POST with the record payload. The returned
// error carries detail for the logs only; callers treat Rejected and
// TransportFailed identically.
func (c *Client) Submit(ctx context.Context, record *interest.Record) (Outcome, error) {
	body, err := record.MarshalPayload()
	if err != nil {
		return OutcomeTransportFailed, errors.NewNotifyTransportError(err)
	}

	req, err := nethttp.NewRequest(nethttp.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return OutcomeTransportFailed, errors.NewNotifyTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		c.logger.Warn("notification transport failed", map[string]interface{}{
			"recordId": record.ID,
			"product":  record.ProductID,
			"error":    err.Error(),
		})
		return OutcomeTransportFailed, errors.NewNotifyTransportError(err)
	}
	defer resp.Body.Close()

	// Only the status matters, no response body contract.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("notification rejected by endpoint", map[string]interface{}{
			"recordId": record.ID,
			"product":  record.ProductID,
			"status":   resp.StatusCode,
		})
		return OutcomeRejected, errors.NewNotifyRejectedError(resp.StatusCode)
	}

	c.logger.Info("notification delivered", map[string]interface{}{
		"recordId": record.ID,
		"product":  record.ProductID,
		"status":   resp.StatusCode,
	})
	return OutcomeDelivered, nil
}

var _ Notifier = (*Client)(nil)

func (o Outcome) String() string { return string(o) }

// Valid reports whether o is one of the three defined outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeDelivered, OutcomeRejected, OutcomeTransportFailed:
		return true
	}
	return false
}
