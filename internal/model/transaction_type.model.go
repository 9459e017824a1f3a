package model

import (
	"time"

	"github.com/casedesk/case-servicing/internal/outcome"
)

// TransactionType is a reference table classifying transactions
// (e.g. "POCR", "Policy", "Non-Policy"). No status, no reference number.
type TransactionType struct {
	ID               string     `json:"id"`
	CreatedDate      time.Time  `json:"created_date"`
	UpdateDate       *time.Time `json:"update_date,omitempty"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	RequiresApproval bool       `json:"requires_approval"`
}

type TransactionTypeCreateRequest struct {
	Name             string
	Description      string
	RequiresApproval bool
}

func (r TransactionTypeCreateRequest) Validate() []outcome.ValidationFailure {
	var failures []outcome.ValidationFailure
	if r.Name == "" {
		failures = append(failures, outcome.ValidationFailure{
			Field:          "Name",
			Message:        "must not be empty",
			AttemptedValue: r.Name,
		})
	}
	return failures
}
