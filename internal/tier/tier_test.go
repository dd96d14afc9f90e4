package tier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldenmoor/levelforge/internal/tier"
)

func TestForLevel(t *testing.T) {
	thresholds := []int{25, 50}

	tests := []struct {
		name  string
		level int
		want  int
	}{
		{"below first threshold", 24, 1},
		{"at first threshold", 25, 2},
		{"below second threshold", 49, 2},
		{"at second threshold", 50, 3},
		{"far past everything", 999, 3},
		{"level one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tier.ForLevel(tt.level, thresholds))
		})
	}
}

func TestForLevelNoThresholds(t *testing.T) {
	assert.Equal(t, 1, tier.ForLevel(1, nil))
	assert.Equal(t, 1, tier.ForLevel(1000, nil))
}

func TestRange(t *testing.T) {
	thresholds := []int{25, 50}

	low, high, open := tier.Range(1, thresholds)
	assert.Equal(t, 1, low)
	assert.Equal(t, 24, high)
	assert.False(t, open)

	low, high, open = tier.Range(2, thresholds)
	assert.Equal(t, 25, low)
	assert.Equal(t, 49, high)
	assert.False(t, open)

	low, _, open = tier.Range(3, thresholds)
	assert.Equal(t, 50, low)
	assert.True(t, open)

	_, _, open = tier.Range(4, thresholds)
	assert.False(t, open)
	low, _, _ = tier.Range(4, thresholds)
	assert.Equal(t, 0, low)
}

func TestNextThreshold(t *testing.T) {
	thresholds := []int{25, 50}

	next, ok := tier.NextThreshold(1, thresholds)
	assert.True(t, ok)
	assert.Equal(t, 25, next)

	next, ok = tier.NextThreshold(25, thresholds)
	assert.True(t, ok)
	assert.Equal(t, 50, next)

	_, ok = tier.NextThreshold(50, thresholds)
	assert.False(t, ok)
}
