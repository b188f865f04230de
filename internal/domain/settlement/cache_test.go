package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffectedDashboardKeys(t *testing.T) {
	keys, err := AffectedDashboardKeys("s1", "2025-02-26")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"dashboard:s1:2025-02-26",
		"dashboard:s1:2025-02-27",
		"dashboard:s1:2025-02-28",
		"dashboard:s1:2025-03-01",
		"dashboard:s1:2025-03-02",
		"dashboard:s1:2025-03-03",
		"dashboard:s1:2025-03-04",
	}, keys)

	_, err = AffectedDashboardKeys("s1", "26-02-2025")
	assert.Error(t, err)
}
