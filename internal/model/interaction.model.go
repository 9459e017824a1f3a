package model

import (
	"time"

	"github.com/casedesk/case-servicing/internal/outcome"
)

// Interaction is a recorded customer contact within a Case.
// PreviousInteractionID is a soft backward reference to an earlier interaction
// in the same case, not an ownership relation, so it stays a scalar id.
type Interaction struct {
	ID                    string            `json:"id"`
	CreatedDate           time.Time         `json:"created_date"`
	UpdateDate            *time.Time        `json:"update_date,omitempty"`
	Status                InteractionStatus `json:"status"`
	ReferenceNumber       string            `json:"reference_number"`
	Case                  *Case             `json:"case,omitempty"`
	Notes                 string            `json:"notes"`
	IsPrimaryInteraction  bool              `json:"is_primary_interaction"`
	PreviousInteractionID string            `json:"previous_interaction_id"`
	Transactions          []*Transaction    `json:"transactions"`
}

type InteractionCreateRequest struct {
	CaseID                string
	Notes                 string
	IsPrimaryInteraction  bool
	PreviousInteractionID string
}

func (r InteractionCreateRequest) Validate() []outcome.ValidationFailure {
	var failures []outcome.ValidationFailure
	if r.CaseID == "" {
		failures = append(failures, outcome.ValidationFailure{
			Field:          "CaseId",
			Message:        "must not be empty",
			AttemptedValue: r.CaseID,
		})
	}
	return failures
}
