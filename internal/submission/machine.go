// Package submission tracks the lifecycle of one interest submission per
// UI surface: idle -> submitting -> succeeded | degraded -> (reset) idle.
package submission

import (
	"context"
	"sync"
	"time"

	"interest-capture/internal/common/errors"
	"interest-capture/internal/common/logger"
	"interest-capture/internal/common/metrics"
	"interest-capture/internal/fallback"
	"interest-capture/internal/interest"
	"interest-capture/internal/notify"
)

// State is the current position of a machine in its lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateDegraded   State = "degraded"
)

// ConfirmationMessage is shown to the visitor after a confirmed delivery.
const ConfirmationMessage = "Grazie! Abbiamo ricevuto la tua richiesta e ti ricontatteremo al più presto."

// Snapshot is what a surface renders: the state plus, depending on it,
// either a confirmation message or a manual-contact fallback.
type Snapshot struct {
	State        State                         `json:"state"`
	Confirmation string                        `json:"confirmation,omitempty"`
	Fallback     *fallback.ManualContactAction `json:"fallback,omitempty"`
}

// Machine owns the submission lifecycle for a single surface. At most one
// record is in flight at a time; concurrent Begin calls are rejected.
type Machine struct {
	mu           sync.Mutex
	surface      string
	state        State
	confirmation string
	action       *fallback.ManualContactAction

	notifier notify.Notifier
	resolver *fallback.Resolver
	logger   logger.Logger
}

func NewMachine(surface string, notifier notify.Notifier, resolver *fallback.Resolver, log logger.Logger) *Machine {
	return &Machine{
		surface:  surface,
		state:    StateIdle,
		notifier: notifier,
		resolver: resolver,
		logger:   log.WithFields(map[string]interface{}{"surface": surface}),
	}
}

// Begin runs one submission from idle. The machine is in submitting before
// the notifier is invoked, and the notifier is invoked exactly once. A
// Delivered outcome lands in succeeded with a confirmation message; any
// failure outcome lands in degraded with a resolved fallback action.
func (m *Machine) Begin(ctx context.Context, record *interest.Record) (Snapshot, error) {
	m.mu.Lock()
	switch m.state {
	case StateSubmitting:
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, errors.NewSubmissionInFlightError(m.surface)
	case StateSucceeded, StateDegraded:
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, errors.NewStaleSubmissionError(string(m.state))
	}
	m.state = StateSubmitting
	m.confirmation = ""
	m.action = nil
	m.mu.Unlock()

	metrics.SubmissionsStarted.WithLabelValues(m.surface).Inc()

	start := time.Now()
	outcome, err := m.notifier.Submit(ctx, record)
	metrics.SubmissionDuration.WithLabelValues(m.surface).Observe(time.Since(start).Seconds())
	metrics.SubmissionsCompleted.WithLabelValues(m.surface, outcome.String()).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()

	if outcome == notify.OutcomeDelivered {
		m.state = StateSucceeded
		m.confirmation = ConfirmationMessage
		m.logger.Info("submission succeeded", map[string]interface{}{
			"recordId": record.ID,
			"product":  record.ProductID,
		})
		return m.snapshotLocked(), nil
	}

	// Rejected and transport failures degrade identically; the error only
	// feeds the logs.
	action := m.resolver.Resolve(record)
	m.state = StateDegraded
	m.action = &action
	metrics.FallbacksResolved.WithLabelValues(m.surface).Inc()

	fields := map[string]interface{}{
		"recordId": record.ID,
		"product":  record.ProductID,
		"outcome":  outcome.String(),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	m.logger.Warn("submission degraded to manual contact", fields)

	return m.snapshotLocked(), nil
}

// Reset returns a resting machine to idle so a new, unrelated submission
// behaves like a fresh first call. A machine with a record in flight
// cannot be reset.
func (m *Machine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateSubmitting {
		return errors.NewSubmissionInFlightError(m.surface)
	}
	m.state = StateIdle
	m.confirmation = ""
	m.action = nil
	return nil
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshot returns the renderable view of the machine.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:        m.state,
		Confirmation: m.confirmation,
	}
	if m.action != nil {
		a := *m.action
		snap.Fallback = &a
	}
	return snap
}
