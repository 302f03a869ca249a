package models

// PercentageRange buckets a daily percentage for display.
type PercentageRange string

const (
	RangePoor      PercentageRange = "poor"
	RangeNeedsWork PercentageRange = "needsWork"
	RangeGood      PercentageRange = "good"
	RangeGreat     PercentageRange = "great"
)

func RangeOf(pct int) PercentageRange {
	switch {
	case pct < 20:
		return RangePoor
	case pct < 50:
		return RangeNeedsWork
	case pct < 80:
		return RangeGood
	default:
		return RangeGreat
	}
}

func (r PercentageRange) Label() string {
	switch r {
	case RangePoor:
		return "Poor"
	case RangeNeedsWork:
		return "Needs Work"
	case RangeGood:
		return "Good"
	case RangeGreat:
		return "Great"
	}
	return ""
}
