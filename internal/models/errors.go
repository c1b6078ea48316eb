package models

// ValidationError represents a field-level validation failure that should be
// surfaced to the client as a bad request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
