package domain

// Outcome tags why a prediction list looks the way it does.
// Callers always receive a list; the outcome is for logs, headers and tests.
type Outcome string

const (
	// OutcomeOK - The model answered and the answer parsed
	OutcomeOK Outcome = "ok"
	// OutcomeSkipped - Input short-circuited, no remote call was made
	OutcomeSkipped Outcome = "skipped"
	// OutcomeNoPrediction - The model answered with the sentinel
	OutcomeNoPrediction Outcome = "no_prediction"
	// OutcomeMalformed - The model answer could not be parsed
	OutcomeMalformed Outcome = "malformed_response"
	// OutcomeTimeout - The remote call exceeded its deadline
	OutcomeTimeout Outcome = "timeout"
	// OutcomeUnauthorized - The remote API rejected the credentials
	OutcomeUnauthorized Outcome = "unauthorized"
	// OutcomeInvalidRequest - The remote API rejected the request (4xx)
	OutcomeInvalidRequest Outcome = "invalid_request"
	// OutcomeUnavailable - Network or server side failure
	OutcomeUnavailable Outcome = "unavailable"
)

// IsFailure reports whether the outcome comes from a failed remote exchange
func (o Outcome) IsFailure() bool {
	switch o {
	case OutcomeOK, OutcomeSkipped, OutcomeNoPrediction:
		return false
	default:
		return true
	}
}

// String func
func (o Outcome) String() string {
	return string(o)
}
