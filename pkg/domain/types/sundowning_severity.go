package types

// SundowningSeverity buckets the number of sundowning records in a day:
// 0 is NONE, 1-2 is MODERATE, more than 2 is SEVERE.
type SundowningSeverity string

const (
	SeverityNone     SundowningSeverity = "NONE"
	SeverityModerate SundowningSeverity = "MODERATE"
	SeveritySevere   SundowningSeverity = "SEVERE"
)

// SeverityForCount returns the severity bucket for a sundowning record count
func SeverityForCount(n int) SundowningSeverity {
	switch {
	case n > 2:
		return SeveritySevere
	case n > 0:
		return SeverityModerate
	default:
		return SeverityNone
	}
}

// IsValid checks if the sundowning severity is valid
func (s SundowningSeverity) IsValid() bool {
	switch s {
	case SeverityNone, SeverityModerate, SeveritySevere:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sundowning severity
func (s SundowningSeverity) String() string {
	return string(s)
}
