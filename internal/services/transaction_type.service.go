package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/outcome"
)

type TransactionTypeRepository interface {
	Create(ctx context.Context, tt *model.TransactionType) (*model.TransactionType, error)
	FindByID(ctx context.Context, id string) ([]*model.TransactionType, error)
	FindByName(ctx context.Context, name string) ([]*model.TransactionType, error)
	List(ctx context.Context) ([]*model.TransactionType, error)
}

// TransactionTypeService maintains the transaction classification table.
type TransactionTypeService struct {
	typeRepo TransactionTypeRepository
}

func NewTransactionTypeService(typeRepo TransactionTypeRepository) *TransactionTypeService {
	return &TransactionTypeService{
		typeRepo: typeRepo,
	}
}

// Create adds a new transaction type. Names are unique; a duplicate reports a
// conflict rather than creating a second row.
func (s *TransactionTypeService) Create(ctx context.Context, req model.TransactionTypeCreateRequest) (*CreateTransactionTypeResponse, error) {
	resp := &CreateTransactionTypeResponse{Outcome: outcome.New()}

	if failures := req.Validate(); len(failures) > 0 {
		resp.ApplyValidationFailures(failures)
		return resp, nil
	}

	existing, err := s.typeRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		msg := fmt.Sprintf("Transaction type already exists for Name: %s", req.Name)
		resp.AddErrorMessage(msg, false)
		resp.AddCustomException(outcome.CustomException{Kind: outcome.KindConflict, Message: msg}, false)
		return resp, nil
	}

	created, err := s.typeRepo.Create(ctx, &model.TransactionType{
		ID:               model.NewID(),
		CreatedDate:      time.Now().UTC(),
		Name:             req.Name,
		Description:      req.Description,
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		return nil, err
	}

	resp.TransactionTypeID = created.ID
	resp.Name = created.Name
	return resp, nil
}

func (s *TransactionTypeService) GetByID(ctx context.Context, id string) (*TransactionTypeListResponse, error) {
	resp := &TransactionTypeListResponse{Outcome: outcome.New(), TransactionTypes: []*model.TransactionType{}}
	if strings.TrimSpace(id) == "" {
		resp.AddErrorMessage("id is required", false)
		return resp, nil
	}

	types, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.TransactionTypes = types
	return resp, nil
}

func (s *TransactionTypeService) List(ctx context.Context) (*TransactionTypeListResponse, error) {
	resp := &TransactionTypeListResponse{Outcome: outcome.New(), TransactionTypes: []*model.TransactionType{}}

	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp.TransactionTypes = types
	return resp, nil
}
