package domain

type ActivityTier string

const (
	TierInactive     ActivityTier = "Inactive"
	TierActive       ActivityTier = "Active"
	TierHighlyActive ActivityTier = "Highly active"
)

// TierForMinutes classifies a total activity time in minutes.
// Both thresholds are inclusive lower bounds: 59 -> Inactive, 60 -> Active,
// 119 -> Active, 120 -> Highly active.
func TierForMinutes(minutes int64) ActivityTier {
	switch {
	case minutes < 60:
		return TierInactive
	case minutes < 120:
		return TierActive
	default:
		return TierHighlyActive
	}
}
