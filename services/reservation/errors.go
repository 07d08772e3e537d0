package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrWizardComplete    = errors.New("reservation already confirmed; start a new one")
	ErrInvalidStep       = errors.New("invalid step")
	ErrInvalidDiningArea = errors.New("dining area must be indoor or outdoor")
	ErrInvalidOccasion   = errors.New("unknown occasion")
	ErrInvalidPartySize  = errors.New("party size must be at least 1")
)

// StepError is the first unmet requirement of a wizard step. Message is the
// user-facing toast text.
type StepError struct {
	Step    Step   `json:"step"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

func newStepError(step Step, field, message string) *StepError {
	return &StepError{Step: step, Field: field, Message: message}
}
