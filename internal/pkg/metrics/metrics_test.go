package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "shortage", Outcome(-1))
	assert.Equal(t, "excess", Outcome(1))
	assert.Equal(t, "balanced", Outcome(0))
}

func TestDutiesClosedCounter(t *testing.T) {
	before := testutil.ToFloat64(DutiesClosed.WithLabelValues("excess"))
	DutiesClosed.WithLabelValues(Outcome(1)).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(DutiesClosed.WithLabelValues("excess")))
}
