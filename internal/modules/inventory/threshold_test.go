package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		level int
		want  PartStatus
	}{
		{0, StatusCritical},
		{4, StatusCritical},
		{5, StatusLow},
		{14, StatusLow},
		{15, StatusAvailable},
		{100, StatusAvailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyStock(tt.level), "level %d", tt.level)
	}
}

func TestTransitionAlert_EdgeTriggered(t *testing.T) {
	tests := []struct {
		name       string
		prev, next int
		wantAlert  bool
		contains   string
	}{
		{"available to low", 20, 10, true, "Low stock alert"},
		{"available to critical", 20, 2, true, "Critical stock level"},
		{"low to critical", 10, 2, true, "Critical stock level"},
		{"stays available", 30, 20, false, ""},
		{"already low, no crossing", 10, 8, false, ""},
		{"already critical, no crossing", 3, 1, false, ""},
		{"increase never alerts", 2, 10, false, ""},
		{"unchanged never alerts", 10, 10, false, ""},
		{"exact critical boundary", 5, 4, true, "Critical stock level"},
		{"exact low boundary", 15, 14, true, "Low stock alert"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransitionAlert("Relay Coil", tt.prev, tt.next)
			if tt.wantAlert {
				assert.Contains(t, got, tt.contains)
				assert.Contains(t, got, "Relay Coil")
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestTransitionAlert_FiresOncePerCrossing(t *testing.T) {
	// A 20 -> 10 drop alerts; re-evaluating the same level must not.
	assert.NotEmpty(t, TransitionAlert("Bearing", 20, 10))
	assert.Empty(t, TransitionAlert("Bearing", 10, 10))
	assert.Empty(t, TransitionAlert("Bearing", 10, 9))
}
