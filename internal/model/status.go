package model

// Statuses are free-form strings at the persistence layer but are always
// produced from these closed enumerations at the domain layer.

type CaseStatus string

const (
	CaseStatusUnknown    CaseStatus = "Unknown"
	CaseStatusInitiated  CaseStatus = "Initiated"
	CaseStatusOpen       CaseStatus = "Open"
	CaseStatusInProgress CaseStatus = "InProgress"
	CaseStatusClosed     CaseStatus = "Closed"
)

type InteractionStatus string

const (
	InteractionStatusUnknown    InteractionStatus = "Unknown"
	InteractionStatusInitiated  InteractionStatus = "Initiated"
	InteractionStatusInProgress InteractionStatus = "InProgress"
	InteractionStatusClosed     InteractionStatus = "Closed"
)

type TransactionStatus string

const (
	TransactionStatusUnknown    TransactionStatus = "Unknown"
	TransactionStatusAborted    TransactionStatus = "Aborted"
	TransactionStatusSubmitted  TransactionStatus = "Submitted"
	TransactionStatusInProgress TransactionStatus = "InProgress"
	TransactionStatusCancelled  TransactionStatus = "Cancelled"
	TransactionStatusClosed     TransactionStatus = "Closed"
	TransactionStatusReceived   TransactionStatus = "Received"
)

var caseStatusDisplay = map[CaseStatus]string{
	CaseStatusUnknown:    "Unknown",
	CaseStatusInitiated:  "Initiated",
	CaseStatusOpen:       "Open",
	CaseStatusInProgress: "In Progress",
	CaseStatusClosed:     "Closed",
}

var interactionStatusDisplay = map[InteractionStatus]string{
	InteractionStatusUnknown:    "Unknown",
	InteractionStatusInitiated:  "Initiated",
	InteractionStatusInProgress: "In Progress",
	InteractionStatusClosed:     "Closed",
}

var transactionStatusDisplay = map[TransactionStatus]string{
	TransactionStatusUnknown:    "Unknown",
	TransactionStatusAborted:    "Aborted",
	TransactionStatusSubmitted:  "Submitted",
	TransactionStatusInProgress: "In Progress",
	TransactionStatusCancelled:  "Cancelled",
	TransactionStatusClosed:     "Closed",
	TransactionStatusReceived:   "Received",
}

func (s CaseStatus) Display() string {
	if label, ok := caseStatusDisplay[s]; ok {
		return label
	}
	return caseStatusDisplay[CaseStatusUnknown]
}

func (s InteractionStatus) Display() string {
	if label, ok := interactionStatusDisplay[s]; ok {
		return label
	}
	return interactionStatusDisplay[InteractionStatusUnknown]
}

func (s TransactionStatus) Display() string {
	if label, ok := transactionStatusDisplay[s]; ok {
		return label
	}
	return transactionStatusDisplay[TransactionStatusUnknown]
}

func ParseCaseStatus(s string) CaseStatus {
	if _, ok := caseStatusDisplay[CaseStatus(s)]; ok {
		return CaseStatus(s)
	}
	return CaseStatusUnknown
}

func ParseInteractionStatus(s string) InteractionStatus {
	if _, ok := interactionStatusDisplay[InteractionStatus(s)]; ok {
		return InteractionStatus(s)
	}
	return InteractionStatusUnknown
}

func ParseTransactionStatus(s string) TransactionStatus {
	if _, ok := transactionStatusDisplay[TransactionStatus(s)]; ok {
		return TransactionStatus(s)
	}
	return TransactionStatusUnknown
}
