package services

import (
	"context"
	"strings"
	"time"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/outcome"
	"github.com/casedesk/case-servicing/internal/refnum"
)

type CaseRepository interface {
	Create(ctx context.Context, c *model.Case) (*model.Case, error)
	FindByID(ctx context.Context, id string) ([]*model.Case, error)
	FindByIdentificationNumber(ctx context.Context, identificationNumber string) ([]*model.Case, error)
	FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Case, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Case, error)
}

type ReferenceNumberGenerator interface {
	Generate(id string, channel model.Channel, segment refnum.BusinessSegment) (string, error)
}

type CaseService struct {
	caseRepo CaseRepository
	refnums  ReferenceNumberGenerator
}

func NewCaseService(caseRepo CaseRepository, refnums ReferenceNumberGenerator) *CaseService {
	return &CaseService{
		caseRepo: caseRepo,
		refnums:  refnums,
	}
}

// Create opens a new case with status Initiated, a fresh id and a reference
// number derived from the channel under the CustomerServicing segment.
// Business failures ride the outcome; a non-nil error is an infrastructure
// fault.
func (s *CaseService) Create(ctx context.Context, req model.CaseCreateRequest) (*CreateCaseResponse, error) {
	resp := &CreateCaseResponse{Outcome: outcome.New()}

	if failures := req.Validate(); len(failures) > 0 {
		resp.ApplyValidationFailures(failures)
		return resp, nil
	}

	id := model.NewID()
	ref, err := s.refnums.Generate(id, req.Channel, refnum.SegmentCustomerServicing)
	if err != nil {
		resp.AddErrorMessage(err.Error(), false)
		return resp, nil
	}

	created, err := s.caseRepo.Create(ctx, &model.Case{
		ID:                   id,
		CreatedDate:          time.Now().UTC(),
		Status:               model.CaseStatusInitiated,
		ReferenceNumber:      ref,
		Channel:              req.Channel,
		IdentificationNumber: req.IdentificationNumber,
	})
	if err != nil {
		return nil, err
	}

	resp.CaseID = created.ID
	resp.ReferenceNumber = created.ReferenceNumber
	return resp, nil
}

func (s *CaseService) GetByIdentificationNumber(ctx context.Context, identificationNumber string) (*CaseListResponse, error) {
	resp := &CaseListResponse{Outcome: outcome.New(), Cases: []*model.Case{}}
	if strings.TrimSpace(identificationNumber) == "" {
		resp.AddErrorMessage("identificationNumber is required", false)
		return resp, nil
	}

	cases, err := s.caseRepo.FindByIdentificationNumber(ctx, identificationNumber)
	if err != nil {
		return nil, err
	}
	resp.Cases = cases
	return resp, nil
}

func (s *CaseService) GetByReferenceNumber(ctx context.Context, referenceNumber string) (*CaseListResponse, error) {
	resp := &CaseListResponse{Outcome: outcome.New(), Cases: []*model.Case{}}
	if strings.TrimSpace(referenceNumber) == "" {
		resp.AddErrorMessage("referenceNumber is required", false)
		return resp, nil
	}

	cases, err := s.caseRepo.FindByReferenceNumber(ctx, referenceNumber)
	if err != nil {
		return nil, err
	}
	resp.Cases = cases
	return resp, nil
}

func (s *CaseService) GetByStatus(ctx context.Context, status string) (*CaseListResponse, error) {
	resp := &CaseListResponse{Outcome: outcome.New(), Cases: []*model.Case{}}
	if strings.TrimSpace(status) == "" {
		resp.AddErrorMessage("status is required", false)
		return resp, nil
	}

	cases, err := s.caseRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	resp.Cases = cases
	return resp, nil
}
