package rows

// Tier bands for the parsed value, inclusive on the lower bound.
const (
	TierNoScore = "no score"
	TierHigh    = "high"
	TierMedium  = "medium"
	TierLow     = "low"
	TierVeryLow = "very low"
)

// Tier classifies an optional parsed value into a display band.
func Tier(v float64, ok bool) string {
	switch {
	case !ok:
		return TierNoScore
	case v >= 75:
		return TierHigh
	case v >= 50:
		return TierMedium
	case v >= 25:
		return TierLow
	default:
		return TierVeryLow
	}
}
