package outcome

import "fmt"

// ExceptionKind classifies a structured exception carried alongside plain
// error messages, so the transport layer can pick a specific outward status.
type ExceptionKind string

const (
	KindConflict  ExceptionKind = "conflict"
	KindRateLimit ExceptionKind = "rate_limit"
	KindNotFound  ExceptionKind = "not_found"
)

type CustomException struct {
	Kind    ExceptionKind `json:"kind"`
	Message string        `json:"message"`
}

// ValidationFailure is a structured field-level failure, typically produced by
// request validation before any persistence call.
type ValidationFailure struct {
	Field          string
	Message        string
	AttemptedValue string
}

// Outcome is the uniform result contract every service operation reports
// through. Business failures ride here; Go errors returned next to an Outcome
// mean infrastructure faults only.
//
// Success is computed, never set directly: it is true iff both collections are
// empty. A fully clean outcome normalizes CustomExceptions back to nil so an
// "absent" and an "emptied" exception list are indistinguishable.
type Outcome struct {
	Success          bool              `json:"success"`
	ErrorMessages    []string          `json:"error_messages,omitempty"`
	CustomExceptions []CustomException `json:"custom_exceptions,omitempty"`
}

// New returns a healthy outcome.
func New() Outcome {
	return Outcome{Success: true}
}

// FromValidationFailures builds an outcome pre-populated with the rendered
// failure messages.
func FromValidationFailures(failures []ValidationFailure) Outcome {
	o := New()
	o.ApplyValidationFailures(failures)
	return o
}

func (o *Outcome) AddErrorMessage(msg string, clear bool) {
	if clear {
		o.ErrorMessages = nil
	}
	o.ErrorMessages = append(o.ErrorMessages, msg)
	o.recompute()
}

func (o *Outcome) AddErrorMessages(msgs []string, clear bool) {
	if clear {
		o.ErrorMessages = nil
	}
	o.ErrorMessages = append(o.ErrorMessages, msgs...)
	o.recompute()
}

func (o *Outcome) AddCustomException(exc CustomException, clear bool) {
	if clear {
		o.CustomExceptions = nil
	}
	o.CustomExceptions = append(o.CustomExceptions, exc)
	o.recompute()
}

func (o *Outcome) AddCustomExceptions(excs []CustomException, clear bool) {
	if clear {
		o.CustomExceptions = nil
	}
	o.CustomExceptions = append(o.CustomExceptions, excs...)
	o.recompute()
}

// ApplyValidationFailures renders each failure into a human-readable message
// and appends it to the error list.
func (o *Outcome) ApplyValidationFailures(failures []ValidationFailure) {
	for _, f := range failures {
		o.ErrorMessages = append(o.ErrorMessages,
			fmt.Sprintf("%s on property '%s' with value (%s)", f.Message, f.Field, f.AttemptedValue))
	}
	o.recompute()
}

// HasExceptionKind reports whether any custom exception of the given kind is
// present. Transport code uses this to map an outcome to a status.
func (o *Outcome) HasExceptionKind(kind ExceptionKind) bool {
	for _, e := range o.CustomExceptions {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Merge folds another outcome's failures into this one.
func (o *Outcome) Merge(other Outcome) {
	o.ErrorMessages = append(o.ErrorMessages, other.ErrorMessages...)
	o.CustomExceptions = append(o.CustomExceptions, other.CustomExceptions...)
	o.recompute()
}

func (o *Outcome) recompute() {
	o.Success = len(o.ErrorMessages) == 0 && len(o.CustomExceptions) == 0
	if o.Success {
		o.ErrorMessages = nil
		o.CustomExceptions = nil
	}
}
