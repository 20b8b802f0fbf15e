package scoring

// Grade is the letter classification of a clamped score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Priority is the outreach priority tier derived from the score.
type Priority string

const (
	PriorityUrgent  Priority = "URGENT"
	PriorityHigh    Priority = "HIGH"
	PriorityMedium  Priority = "MEDIUM"
	PriorityLow     Priority = "LOW"
	PriorityMinimal Priority = "MINIMAL"
)

// gradeThresholds maps minimum scores to grade and priority, evaluated high
// to low, first match wins. Boundaries are inclusive on the high side:
// exactly 80 is an A, exactly 60 a B.
var gradeThresholds = []struct {
	min      int
	grade    Grade
	priority Priority
}{
	{80, GradeA, PriorityUrgent},
	{60, GradeB, PriorityHigh},
	{40, GradeC, PriorityMedium},
	{20, GradeD, PriorityLow},
	{0, GradeF, PriorityMinimal},
}

// gradeFor maps a clamped score to its grade and priority tier.
func gradeFor(score int) (Grade, Priority) {
	for _, threshold := range gradeThresholds {
		if score >= threshold.min {
			return threshold.grade, threshold.priority
		}
	}
	return GradeF, PriorityMinimal
}
