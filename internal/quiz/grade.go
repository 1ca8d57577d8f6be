package quiz

// Grade is the letter-style verdict derived from a percentage.
type Grade int

const (
	GradeNeedsImprovement Grade = iota
	GradeAverage
	GradeGood
	GradeVeryGood
	GradeExcellent
)

// GradeFor maps a percentage to a Grade. Thresholds are inclusive.
func GradeFor(percentage int) Grade {
	switch {
	case percentage >= 90:
		return GradeExcellent
	case percentage >= 80:
		return GradeVeryGood
	case percentage >= 70:
		return GradeGood
	case percentage >= 60:
		return GradeAverage
	default:
		return GradeNeedsImprovement
	}
}

func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "Excellent"
	case GradeVeryGood:
		return "Very Good"
	case GradeGood:
		return "Good"
	case GradeAverage:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

// Badge returns the grade decorated for display.
func (g Grade) Badge() string {
	switch g {
	case GradeExcellent:
		return "🎉 " + g.String() + "!"
	case GradeVeryGood:
		return "👏 " + g.String() + "!"
	case GradeGood:
		return "👍 " + g.String() + "!"
	case GradeAverage:
		return "👌 " + g.String()
	default:
		return "📚 " + g.String()
	}
}

// Tier groups percentages into three display bands.
type Tier int

const (
	TierPoor Tier = iota
	TierFair
	TierStrong
)

// TierFor returns the display band for a percentage.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 80:
		return TierStrong
	case percentage >= 60:
		return TierFair
	default:
		return TierPoor
	}
}
