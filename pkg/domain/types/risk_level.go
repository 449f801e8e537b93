package types

// RiskLevel represents the time-sensitive risk attached to a money-anxiety
// trigger match. Reports after 16:00 fall into the sundown vulnerability
// window and carry a higher escalation risk.
type RiskLevel string

const (
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskModerate, RiskHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}
