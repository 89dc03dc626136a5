package inventory

import "fmt"

// Stock tiers are fixed boundaries shared by every stock mutation path.
const (
	criticalBoundary = 5
	lowBoundary      = 15
)

// ClassifyStock maps a stock level to its tier.
func ClassifyStock(level int) PartStatus {
	switch {
	case level < criticalBoundary:
		return StatusCritical
	case level < lowBoundary:
		return StatusLow
	default:
		return StatusAvailable
	}
}

// TransitionAlert returns the alert message for a stock change, or "" when no
// alert is due. Alerts are edge-triggered: a message fires only when the level
// crosses a boundary downward, so an already-low part does not re-alert on
// every subsequent mutation. Crossing the critical boundary wins over crossing
// the low boundary in the same change.
func TransitionAlert(partName string, prev, next int) string {
	if next >= prev {
		return ""
	}
	if prev >= criticalBoundary && next < criticalBoundary {
		return fmt.Sprintf("Critical stock level for %s! Only %d units left.", partName, next)
	}
	if prev >= lowBoundary && next < lowBoundary {
		return fmt.Sprintf("Low stock alert for %s! %d units remaining.", partName, next)
	}
	return ""
}
