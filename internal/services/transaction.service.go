package services

import (
	"context"
	"strings"
	"time"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/outcome"
	"github.com/casedesk/case-servicing/internal/refnum"
)

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	FindByID(ctx context.Context, id string) ([]*model.Transaction, error)
	FindByCaseID(ctx context.Context, caseID string) ([]*model.Transaction, error)
	FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Transaction, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Transaction, error)
}

type TransactionService struct {
	transactionRepo TransactionRepository
	caseRepo        CaseRepository
	interactionRepo InteractionRepository
	typeRepo        TransactionTypeRepository
	refnums         ReferenceNumberGenerator
}

func NewTransactionService(
	transactionRepo TransactionRepository,
	caseRepo CaseRepository,
	interactionRepo InteractionRepository,
	typeRepo TransactionTypeRepository,
	refnums ReferenceNumberGenerator,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		caseRepo:        caseRepo,
		interactionRepo: interactionRepo,
		typeRepo:        typeRepo,
		refnums:         refnums,
	}
}

// Create records a new transaction with status Received. The parent case and
// the transaction type must resolve uniquely; interaction linkage is optional
// and only checked when an interaction id was supplied.
func (s *TransactionService) Create(ctx context.Context, req model.TransactionCreateRequest) (*CreateTransactionResponse, error) {
	resp := &CreateTransactionResponse{Outcome: outcome.New()}

	if failures := req.Validate(); len(failures) > 0 {
		resp.ApplyValidationFailures(failures)
		return resp, nil
	}

	parentCase, ok, err := resolveParent(ctx, s.caseRepo.FindByID, "case", "CaseId", req.CaseID, &resp.Outcome)
	if err != nil {
		return nil, err
	}
	if !ok {
		return resp, nil
	}

	var parentInteraction *model.Interaction
	if req.InteractionID != "" {
		parentInteraction, ok, err = resolveParent(ctx, s.interactionRepo.FindByID, "interaction", "InteractionId", req.InteractionID, &resp.Outcome)
		if err != nil {
			return nil, err
		}
		if !ok {
			return resp, nil
		}
	}

	txnType, ok, err := resolveParent(ctx, s.typeRepo.FindByID, "transaction type", "TransactionTypeId", req.TransactionTypeID, &resp.Outcome)
	if err != nil {
		return nil, err
	}
	if !ok {
		return resp, nil
	}

	id := model.NewID()
	ref, err := s.refnums.Generate(id, parentCase.Channel, refnum.SegmentCustomerServicing)
	if err != nil {
		resp.AddErrorMessage(err.Error(), false)
		return resp, nil
	}

	created, err := s.transactionRepo.Create(ctx, &model.Transaction{
		ID:                    id,
		CreatedDate:           time.Now().UTC(),
		Status:                model.TransactionStatusReceived,
		ReferenceNumber:       ref,
		Case:                  parentCase,
		Interaction:           parentInteraction,
		TransactionType:       txnType,
		IsImmediate:           req.IsImmediate,
		IsFulfilledExternally: req.IsFulfilledExternally,
		ExternalSystem:        req.ExternalSystem,
		ParentReferenceNumber: req.ParentReferenceNumber,
		ReceivedDetails:       req.ReceivedDetails,
	})
	if err != nil {
		return nil, err
	}

	resp.TransactionID = created.ID
	resp.ReferenceNumber = created.ReferenceNumber
	resp.CaseID = parentCase.ID
	if parentInteraction != nil {
		resp.InteractionID = parentInteraction.ID
	}
	return resp, nil
}

func (s *TransactionService) GetByCaseID(ctx context.Context, caseID string) (*TransactionListResponse, error) {
	resp := &TransactionListResponse{Outcome: outcome.New(), Transactions: []*model.Transaction{}}
	if strings.TrimSpace(caseID) == "" {
		resp.AddErrorMessage("caseId is required", false)
		return resp, nil
	}

	transactions, err := s.transactionRepo.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	resp.Transactions = transactions
	return resp, nil
}

func (s *TransactionService) GetByReferenceNumber(ctx context.Context, referenceNumber string) (*TransactionListResponse, error) {
	resp := &TransactionListResponse{Outcome: outcome.New(), Transactions: []*model.Transaction{}}
	if strings.TrimSpace(referenceNumber) == "" {
		resp.AddErrorMessage("referenceNumber is required", false)
		return resp, nil
	}

	transactions, err := s.transactionRepo.FindByReferenceNumber(ctx, referenceNumber)
	if err != nil {
		return nil, err
	}
	resp.Transactions = transactions
	return resp, nil
}

func (s *TransactionService) GetByStatus(ctx context.Context, status string) (*TransactionListResponse, error) {
	resp := &TransactionListResponse{Outcome: outcome.New(), Transactions: []*model.Transaction{}}
	if strings.TrimSpace(status) == "" {
		resp.AddErrorMessage("status is required", false)
		return resp, nil
	}

	transactions, err := s.transactionRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	resp.Transactions = transactions
	return resp, nil
}
