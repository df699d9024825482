// Package detector holds the streaming fraud rules. Each rule is a pure
// function of the incoming event and its own window state; its only side
// effect is updating that state.
package detector

import (
	"context"
	"sort"
	"time"

	"github.com/kakaon/fraud-service/internal/models"
)

// Detector is one registered fraud rule.
type Detector interface {
	// Detect evaluates a payment event and returns zero or more candidate
	// alerts.
	Detect(ctx context.Context, event models.PaymentEvent) ([]models.AlertEvent, error)
	// AlertType identifies the rule.
	AlertType() models.AlertType
	// Cleanup is a caller-scheduled eviction hook. Rules whose state
	// expires via TTL have nothing to do here.
	Cleanup()
}

// Registry is the ordered set of rules the consumer runs per event.
type Registry struct {
	detectors []Detector
}

func NewRegistry(detectors ...Detector) *Registry {
	return &Registry{detectors: detectors}
}

func (r *Registry) Detectors() []Detector {
	return r.detectors
}

// inWindow returns the events whose approval time falls within window of
// the reference approval time, sorted oldest first. Windows are measured
// against event time, not wall clock, so late-arriving events are judged
// by when they were approved.
func inWindow(events []models.PaymentEvent, approvedAt time.Time, window time.Duration) []models.PaymentEvent {
	windowStart := approvedAt.Add(-window)
	recent := make([]models.PaymentEvent, 0, len(events))
	for _, e := range events {
		if e.ApprovedAt.IsZero() || e.ApprovedAt.Before(windowStart) {
			continue
		}
		recent = append(recent, e)
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].ApprovedAt.Before(recent[j].ApprovedAt)
	})
	return recent
}

func paymentIDs(events []models.PaymentEvent) []int64 {
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.PaymentID)
	}
	return ids
}

func authorizationNos(events []models.PaymentEvent) []string {
	nos := make([]string, 0, len(events))
	for _, e := range events {
		nos = append(nos, e.AuthorizationNo)
	}
	return nos
}
