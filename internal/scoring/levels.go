package scoring

import "math"

// round2 rounds to two decimal places; used for all reported percentages.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// aptitudeLevel: High >=77%, Moderate 24-76%, Low <24%.
func aptitudeLevel(pct float64) string {
	switch {
	case pct >= 77:
		return LevelHigh
	case pct >= 24:
		return LevelModerate
	default:
		return LevelLow
	}
}

// psychometricLevel is binary; the 17.5 boundary is inclusive on the high side.
func psychometricLevel(score float64) string {
	if score >= 17.5 {
		return LevelHigh
	}
	return LevelLow
}

// aqLevel maps the aggregate adversity quotient onto the five-tier scale.
func aqLevel(aq float64) string {
	switch {
	case aq >= 178:
		return LevelHigh
	case aq >= 161:
		return LevelModeratelyHigh
	case aq >= 135:
		return LevelModerate
	case aq >= 118:
		return LevelModeratelyLow
	default:
		return LevelLow
	}
}

// seiNormalize maps a doubled raw score (10-50) onto the 1-10 reporting scale
// via fixed step buckets; anything below 10 maps to 0.
func seiNormalize(doubled float64) int {
	switch {
	case doubled >= 46:
		return 10
	case doubled >= 42:
		return 9
	case doubled >= 38:
		return 8
	case doubled >= 34:
		return 7
	case doubled >= 30:
		return 6
	case doubled >= 26:
		return 5
	case doubled >= 22:
		return 4
	case doubled >= 18:
		return 3
	case doubled >= 14:
		return 2
	case doubled >= 10:
		return 1
	default:
		return 0
	}
}

// seiLevel classifies the normalized 1-10 value.
func seiLevel(normalized int) string {
	switch {
	case normalized >= 8:
		return LevelHigh
	case normalized >= 5:
		return LevelModerate
	default:
		return LevelLow
	}
}

// interestLevel classifies a pairwise interest category by percentage.
func interestLevel(pct float64) string {
	switch {
	case pct >= 75:
		return LevelHigh
	case pct >= 40:
		return LevelModerate
	default:
		return LevelLow
	}
}
