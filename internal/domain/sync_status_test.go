package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncStatusHealthy(t *testing.T) {
	earlier := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Minute)

	assert.True(t, SyncStatus{}.Healthy())
	assert.True(t, SyncStatus{LastSuccessAt: &later, LastFailureAt: &earlier}.Healthy())
	assert.False(t, SyncStatus{LastSuccessAt: &earlier, LastFailureAt: &later}.Healthy())
	assert.False(t, SyncStatus{LastFailureAt: &earlier}.Healthy())
}
