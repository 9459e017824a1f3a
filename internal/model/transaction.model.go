package model

import (
	"time"

	"github.com/casedesk/case-servicing/internal/outcome"
)

// Transaction is a unit of work performed within an Interaction, typed by
// TransactionType. Interaction linkage is optional; case linkage is not.
type Transaction struct {
	ID                     string            `json:"id"`
	CreatedDate            time.Time         `json:"created_date"`
	UpdateDate             *time.Time        `json:"update_date,omitempty"`
	Status                 TransactionStatus `json:"status"`
	ReferenceNumber        string            `json:"reference_number"`
	Case                   *Case             `json:"case,omitempty"`
	Interaction            *Interaction      `json:"interaction,omitempty"`
	TransactionType        *TransactionType  `json:"transaction_type,omitempty"`
	IsImmediate            bool              `json:"is_immediate"`
	IsFulfilledExternally  bool              `json:"is_fulfilled_externally"`
	ExternalSystem         string            `json:"external_system"`
	ExternalSystemID       string            `json:"external_system_id"`
	ExternalSystemStatus   string            `json:"external_system_status"`
	ExternalSystemParentID string            `json:"external_system_parent_id"`
	ParentReferenceNumber  string            `json:"parent_reference_number"`
	ReceivedDetails        string            `json:"received_details"`
	ProcessedDetails       string            `json:"processed_details"`
}

type TransactionCreateRequest struct {
	CaseID                string
	InteractionID         string // optional; linkage is skipped when blank
	TransactionTypeID     string
	IsImmediate           bool
	IsFulfilledExternally bool
	ExternalSystem        string
	ParentReferenceNumber string
	ReceivedDetails       string
}

func (r TransactionCreateRequest) Validate() []outcome.ValidationFailure {
	var failures []outcome.ValidationFailure
	if r.CaseID == "" {
		failures = append(failures, outcome.ValidationFailure{
			Field:          "CaseId",
			Message:        "must not be empty",
			AttemptedValue: r.CaseID,
		})
	}
	if r.TransactionTypeID == "" {
		failures = append(failures, outcome.ValidationFailure{
			Field:          "TransactionTypeId",
			Message:        "must not be empty",
			AttemptedValue: r.TransactionTypeID,
		})
	}
	return failures
}
