package domain

// EmploymentStatus is the lead's self-reported employment situation.
type EmploymentStatus string

const (
	EmploymentEmployed EmploymentStatus = "employed"
	EmploymentSeeking  EmploymentStatus = "seeking"
	EmploymentOther    EmploymentStatus = "other"
)

var knownEmploymentStatuses = map[EmploymentStatus]struct{}{
	EmploymentEmployed: {},
	EmploymentSeeking:  {},
	EmploymentOther:    {},
}

// IsKnownEmploymentStatus reports whether s is one of the closed statuses.
func IsKnownEmploymentStatus(s EmploymentStatus) bool {
	_, ok := knownEmploymentStatuses[s]
	return ok
}

// ParseEmploymentStatus converts a raw string into an EmploymentStatus.
// The second return is false for unknown values.
func ParseEmploymentStatus(s string) (EmploymentStatus, bool) {
	status := EmploymentStatus(s)
	_, ok := knownEmploymentStatuses[status]
	return status, ok
}
