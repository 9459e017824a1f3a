package services

import (
	"context"
	"strings"
	"time"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/outcome"
	"github.com/casedesk/case-servicing/internal/refnum"
)

type InteractionRepository interface {
	Create(ctx context.Context, i *model.Interaction) (*model.Interaction, error)
	FindByID(ctx context.Context, id string) ([]*model.Interaction, error)
	FindByCaseID(ctx context.Context, caseID string) ([]*model.Interaction, error)
	FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Interaction, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Interaction, error)
}

type InteractionService struct {
	interactionRepo InteractionRepository
	caseRepo        CaseRepository
	refnums         ReferenceNumberGenerator
}

func NewInteractionService(interactionRepo InteractionRepository, caseRepo CaseRepository, refnums ReferenceNumberGenerator) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		caseRepo:        caseRepo,
		refnums:         refnums,
	}
}

// Create records a new interaction under an existing case. The parent case is
// resolved through the eligibility rule; the interaction's reference number is
// derived from the parent case's channel.
func (s *InteractionService) Create(ctx context.Context, req model.InteractionCreateRequest) (*CreateInteractionResponse, error) {
	resp := &CreateInteractionResponse{Outcome: outcome.New()}

	if failures := req.Validate(); len(failures) > 0 {
		resp.ApplyValidationFailures(failures)
		return resp, nil
	}

	parent, ok, err := resolveParent(ctx, s.caseRepo.FindByID, "case", "CaseId", req.CaseID, &resp.Outcome)
	if err != nil {
		return nil, err
	}
	if !ok {
		return resp, nil
	}

	id := model.NewID()
	ref, err := s.refnums.Generate(id, parent.Channel, refnum.SegmentCustomerServicing)
	if err != nil {
		resp.AddErrorMessage(err.Error(), false)
		return resp, nil
	}

	created, err := s.interactionRepo.Create(ctx, &model.Interaction{
		ID:                    id,
		CreatedDate:           time.Now().UTC(),
		Status:                model.InteractionStatusInitiated,
		ReferenceNumber:       ref,
		Case:                  parent,
		Notes:                 req.Notes,
		IsPrimaryInteraction:  req.IsPrimaryInteraction,
		PreviousInteractionID: req.PreviousInteractionID,
	})
	if err != nil {
		return nil, err
	}

	resp.InteractionID = created.ID
	resp.ReferenceNumber = created.ReferenceNumber
	resp.CaseID = parent.ID
	resp.CaseReferenceNumber = parent.ReferenceNumber
	return resp, nil
}

func (s *InteractionService) GetByCaseID(ctx context.Context, caseID string) (*InteractionListResponse, error) {
	resp := &InteractionListResponse{Outcome: outcome.New(), Interactions: []*model.Interaction{}}
	if strings.TrimSpace(caseID) == "" {
		resp.AddErrorMessage("caseId is required", false)
		return resp, nil
	}

	interactions, err := s.interactionRepo.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	resp.Interactions = interactions
	return resp, nil
}

func (s *InteractionService) GetByReferenceNumber(ctx context.Context, referenceNumber string) (*InteractionListResponse, error) {
	resp := &InteractionListResponse{Outcome: outcome.New(), Interactions: []*model.Interaction{}}
	if strings.TrimSpace(referenceNumber) == "" {
		resp.AddErrorMessage("referenceNumber is required", false)
		return resp, nil
	}

	interactions, err := s.interactionRepo.FindByReferenceNumber(ctx, referenceNumber)
	if err != nil {
		return nil, err
	}
	resp.Interactions = interactions
	return resp, nil
}

func (s *InteractionService) GetByStatus(ctx context.Context, status string) (*InteractionListResponse, error) {
	resp := &InteractionListResponse{Outcome: outcome.New(), Interactions: []*model.Interaction{}}
	if strings.TrimSpace(status) == "" {
		resp.AddErrorMessage("status is required", false)
		return resp, nil
	}

	interactions, err := s.interactionRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	resp.Interactions = interactions
	return resp, nil
}
