package clock

import (
	"testing"
	"time"

	"github.com/iho/buckpal/internal/usecase"
)

var _ usecase.Clock = System{}

func TestSystemNowIsUTC(t *testing.T) {
	before := time.Now()
	now := New().Now()
	after := time.Now()

	if now.Location() != time.UTC {
		t.Fatalf("expected UTC, got %s", now.Location())
	}

	if now.Before(before.Add(-time.Second)) || now.After(after.Add(time.Second)) {
		t.Fatalf("clock returned %s outside [%s, %s]", now, before, after)
	}
}
