package dateguard

// ValidationError is returned by callers that gate writes on Validate.
// It carries the full Result so delivery layers can return the reason,
// suggestion and explanation to the client.
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	if e.Result.Reason != "" {
		return e.Result.Reason
	}
	return "date validation failed"
}

// NewValidationError wraps a failed Result.
func NewValidationError(res Result) *ValidationError {
	return &ValidationError{Result: res}
}
