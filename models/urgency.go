package models

// UrgencyLevel is a derived three-tier classification of how close an active
// order is to exceeding its preparation-time budget. It only selects a
// display treatment; nothing else keys off it.
type UrgencyLevel string

const (
	UrgencyNormal   UrgencyLevel = "normal"
	UrgencyWarning  UrgencyLevel = "warning"
	UrgencyCritical UrgencyLevel = "critical"
)

// ClassifyUrgency buckets an order by its elapsed/prep time ratio:
//
//	ratio > 1.0        -> critical (over the time budget)
//	0.7 < ratio <= 1.0 -> warning
//	ratio <= 0.7       -> normal (a ratio of exactly 0.7 is normal)
//
// The comparisons use integer arithmetic so the 0.7 boundary is exact.
// A prep time of zero or less means there is no budget left to spend, so it
// classifies as critical immediately.
func ClassifyUrgency(prepTimeMinutes, elapsedTimeMinutes int) UrgencyLevel {
	if prepTimeMinutes <= 0 {
		return UrgencyCritical
	}
	if elapsedTimeMinutes > prepTimeMinutes {
		return UrgencyCritical
	}
	// elapsed/prep > 0.7  <=>  elapsed*10 > prep*7
	if elapsedTimeMinutes*10 > prepTimeMinutes*7 {
		return UrgencyWarning
	}
	return UrgencyNormal
}
