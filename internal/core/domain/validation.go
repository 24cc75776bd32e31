package domain

// ValidationCode identifies one class of validation failure. Codes are part
// of the API contract; the UI keys messages off them.
type ValidationCode string

const (
	CodePeriodNotFound      ValidationCode = "PERIOD_NOT_FOUND"
	CodePeriodClosed        ValidationCode = "PERIOD_CLOSED"
	CodeUnbalanced          ValidationCode = "UNBALANCED"
	CodeInvalidLine         ValidationCode = "INVALID_LINE"
	CodeAccountNotFound     ValidationCode = "ACCOUNT_NOT_FOUND"
	CodeAccountInactive     ValidationCode = "ACCOUNT_INACTIVE"
	CodeAccountGroup        ValidationCode = "ACCOUNT_GROUP"
	CodeApprovalRequired    ValidationCode = "APPROVAL_REQUIRED"
	CodeInvalidExchangeRate ValidationCode = "INVALID_EXCHANGE_RATE"
	CodeNoRateFound         ValidationCode = "NO_RATE_FOUND"
)

// ValidationFailure is one user-correctable problem found by the pipeline.
type ValidationFailure struct {
	Code    ValidationCode `json:"code"`
	Field   string         `json:"field"` // e.g., "journalDate", "lines[2]"
	Message string         `json:"message"`
}

// ValidationResult is the accumulated outcome of all pipeline checks. All
// checks always run; the full failure set is returned so the caller can
// present every problem at once.
type ValidationResult struct {
	Failures []ValidationFailure `json:"failures"`
}

// OK reports whether the journal passed every check.
func (r ValidationResult) OK() bool {
	return len(r.Failures) == 0
}

// Add appends a failure, preserving check order.
func (r *ValidationResult) Add(code ValidationCode, field, message string) {
	r.Failures = append(r.Failures, ValidationFailure{Code: code, Field: field, Message: message})
}

// Has reports whether any failure carries the given code.
func (r ValidationResult) Has(code ValidationCode) bool {
	for _, f := range r.Failures {
		if f.Code == code {
			return true
		}
	}
	return false
}
