package model

import (
	"time"

	"github.com/casedesk/case-servicing/internal/outcome"
)

// Case is the top-level unit of customer service work. This is the transport
// shape: relations are nested objects, never foreign-key ids.
type Case struct {
	ID                   string         `json:"id"`
	CreatedDate          time.Time      `json:"created_date"`
	UpdateDate           *time.Time     `json:"update_date,omitempty"`
	Status               CaseStatus     `json:"status"`
	ReferenceNumber      string         `json:"reference_number"`
	Channel              Channel        `json:"channel"`
	IdentificationNumber string         `json:"identification_number"`
	Interactions         []*Interaction `json:"interactions"`
}

// CaseCreateRequest is the command input for opening a new case.
type CaseCreateRequest struct {
	Channel              Channel
	IdentificationNumber string
}

func (r CaseCreateRequest) Validate() []outcome.ValidationFailure {
	var failures []outcome.ValidationFailure
	if r.IdentificationNumber == "" {
		failures = append(failures, outcome.ValidationFailure{
			Field:          "IdentificationNumber",
			Message:        "must not be empty",
			AttemptedValue: r.IdentificationNumber,
		})
	}
	if r.Channel == "" || r.Channel == ChannelUnknown {
		failures = append(failures, outcome.ValidationFailure{
			Field:          "Channel",
			Message:        "must be a known channel",
			AttemptedValue: string(r.Channel),
		})
	}
	return failures
}
