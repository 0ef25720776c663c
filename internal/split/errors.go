package split

import "fmt"

// ValidationError reports a malformed receipt or roster. It is raised before
// any computation; a caller can re-prompt the user or re-fetch the extracted
// receipt and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnknownParticipantError reports an item assignment that references a
// participant id absent from the roster, typically a stale assignment left
// behind after a roster edit. The caller is responsible for reconciling.
type UnknownParticipantError struct {
	ParticipantID string
	ItemName      string
}

func (e *UnknownParticipantError) Error() string {
	return fmt.Sprintf("person %q not found in group (item %q)", e.ParticipantID, e.ItemName)
}
