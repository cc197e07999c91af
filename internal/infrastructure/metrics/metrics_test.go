package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/usecase"
)

var _ usecase.TransferMetrics = (*Metrics)(nil)

func TestNewWithRegistererRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewWithRegisterer(registry)

	if m.TransfersTotal == nil || m.HTTPRequests == nil || m.RateLimitHits == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.RateLimitHits.Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecordTransfer(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.RecordTransfer(usecase.OutcomeSucceeded, domain.Of(500), 10*time.Millisecond)
	m.RecordTransfer(usecase.OutcomeSucceeded, domain.Of(20), 10*time.Millisecond)
	m.RecordTransfer(usecase.OutcomeRejected, domain.Of(1556), time.Millisecond)
	m.RecordTransfer(usecase.OutcomeFailed, domain.Of(1), time.Millisecond)

	if got := testutil.ToFloat64(m.TransfersTotal.WithLabelValues(usecase.OutcomeSucceeded)); got != 2 {
		t.Fatalf("expected 2 succeeded transfers, got %v", got)
	}

	if got := testutil.ToFloat64(m.TransfersTotal.WithLabelValues(usecase.OutcomeRejected)); got != 1 {
		t.Fatalf("expected 1 rejected transfer, got %v", got)
	}

	if got := testutil.CollectAndCount(m.TransferAmount); got != 1 {
		t.Fatalf("expected one amount histogram, got %d", got)
	}

	if got := testutil.CollectAndCount(m.TransferDuration); got != 3 {
		t.Fatalf("expected duration series per outcome, got %d", got)
	}
}
