package scheduling

import "fmt"

// ValidationError reports malformed or missing input, detected before any
// write. The caller should fix the form and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown agency, appointment or blocked-date id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError reports a state collision: the slot was taken between the
// client's availability read and the commit, or the day is already blocked.
// Distinct from ValidationError because the recovery differs: the caller
// should re-pick a slot or date, not fix the form.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidStatusError reports a status transition that is not permitted from
// the current state, or a target status that is not admin-settable.
type InvalidStatusError struct {
	Current   string
	Requested string
}

func (e *InvalidStatusError) Error() string {
	if e.Current == "" {
		return fmt.Sprintf("invalid target status %q", e.Requested)
	}
	return fmt.Sprintf("cannot transition from %q to %q", e.Current, e.Requested)
}
