package types

// OverallState represents the day-level rollup of cognitive states.
// STABLE requires the stable count to strictly exceed half of all records;
// a tie counts as elevated distress.
type OverallState string

const (
	OverallStable           OverallState = "STABLE"
	OverallElevatedDistress OverallState = "ELEVATED_DISTRESS"
)

// IsValid checks if the overall state is valid
func (s OverallState) IsValid() bool {
	switch s {
	case OverallStable, OverallElevatedDistress:
		return true
	default:
		return false
	}
}

// String returns the string representation of the overall state
func (s OverallState) String() string {
	return string(s)
}
