package services

import (
	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/outcome"
)

// Every operation reports through an embedded Outcome; the identity fields are
// populated only on success.

type CreateCaseResponse struct {
	outcome.Outcome
	CaseID          string `json:"case_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
}

type CreateInteractionResponse struct {
	outcome.Outcome
	InteractionID       string `json:"interaction_id,omitempty"`
	ReferenceNumber     string `json:"reference_number,omitempty"`
	CaseID              string `json:"case_id,omitempty"`
	CaseReferenceNumber string `json:"case_reference_number,omitempty"`
}

type CreateTransactionResponse struct {
	outcome.Outcome
	TransactionID   string `json:"transaction_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	CaseID          string `json:"case_id,omitempty"`
	InteractionID   string `json:"interaction_id,omitempty"`
}

type CreateTransactionTypeResponse struct {
	outcome.Outcome
	TransactionTypeID string `json:"transaction_type_id,omitempty"`
	Name              string `json:"name,omitempty"`
}

type CaseListResponse struct {
	outcome.Outcome
	Cases []*model.Case `json:"cases"`
}

type InteractionListResponse struct {
	outcome.Outcome
	Interactions []*model.Interaction `json:"interactions"`
}

type TransactionListResponse struct {
	outcome.Outcome
	Transactions []*model.Transaction `json:"transactions"`
}

type TransactionTypeListResponse struct {
	outcome.Outcome
	TransactionTypes []*model.TransactionType `json:"transaction_types"`
}
