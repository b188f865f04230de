package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_UsesStationZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC is already the next day in India.
	c := Fixed(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC), kolkata)
	assert.Equal(t, "2025-03-11", c.Today())
	assert.Equal(t, "2025-03", c.Month())

	assert.Equal(t, "2025-03-10", Fixed(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC), nil).Today())
}
