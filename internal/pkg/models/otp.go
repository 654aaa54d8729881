package models

// OTPOutcome classifies the result of verifying a submitted one-time code.
// These are expected control-flow results, not errors.
type OTPOutcome int

const (
	// OTPValid - code matched before expiry; the account is now verified
	OTPValid OTPOutcome = iota
	// OTPExpired - the challenge window elapsed; challenge state was cleared
	OTPExpired
	// OTPInvalid - code mismatch with attempts left in the budget
	OTPInvalid
	// OTPAttemptsExhausted - third consecutive mismatch; a fresh code was issued
	OTPAttemptsExhausted
)

// String returns a readable name for logging
func (o OTPOutcome) String() string {
	switch o {
	case OTPValid:
		return "valid"
	case OTPExpired:
		return "expired"
	case OTPInvalid:
		return "invalid"
	case OTPAttemptsExhausted:
		return "attempts_exhausted"
	default:
		return "unknown"
	}
}

// OTPVerification is the typed result of an OTP verification attempt.
// Auth is set only when the outcome is OTPValid.
type OTPVerification struct {
	Outcome      OTPOutcome
	AttemptsLeft int
	Auth         *AuthResponse
}
