package types

// RecordSource marks how an interaction record entered the log.
// Conversational records come from the companion pipeline, scheduled
// records from the daily care schedule, and annotated records from a
// caregiver or clinician (the only source allowed to carry the episode
// state).
type RecordSource string

const (
	SourceConversation RecordSource = "conversation"
	SourceScheduled    RecordSource = "scheduled"
	SourceAnnotation   RecordSource = "annotation"
)

// IsValid checks if the record source is valid
func (s RecordSource) IsValid() bool {
	switch s {
	case SourceConversation, SourceScheduled, SourceAnnotation:
		return true
	default:
		return false
	}
}

// Normalize returns the source, treating empty as SourceConversation
func (s RecordSource) Normalize() RecordSource {
	if s == "" {
		return SourceConversation
	}
	return s
}

// String returns the string representation of the record source
func (s RecordSource) String() string {
	return string(s)
}
