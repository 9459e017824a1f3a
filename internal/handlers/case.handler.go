package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/services"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
	"github.com/casedesk/case-servicing/pkg/prom"
)

type CaseService interface {
	Create(ctx context.Context, req model.CaseCreateRequest) (*services.CreateCaseResponse, error)
	GetByIdentificationNumber(ctx context.Context, identificationNumber string) (*services.CaseListResponse, error)
	GetByReferenceNumber(ctx context.Context, referenceNumber string) (*services.CaseListResponse, error)
	GetByStatus(ctx context.Context, status string) (*services.CaseListResponse, error)
}

type CaseHandler struct {
	svc CaseService
}

func RegisterCaseRoutes(e *router.Group, h *CaseHandler) {
	e.POST("/cases", h.CreateCase)
	e.GET("/cases", h.GetCases)
}

func NewCaseHandler(caseService CaseService) *CaseHandler {
	return &CaseHandler{
		svc: caseService,
	}
}

type createCaseRequest struct {
	Channel              string `json:"channel"`
	IdentificationNumber string `json:"identification_number"`
}

func (h *CaseHandler) CreateCase(ctx *xhttp.RequestCtx) {
	var req createCaseRequest
	if err := readJSON(ctx, &req); err != nil {
		writeBadRequest(ctx, "invalid JSON: "+err.Error())
		return
	}

	resp, err := h.svc.Create(ctx, model.CaseCreateRequest{
		Channel:              model.ParseChannel(req.Channel),
		IdentificationNumber: req.IdentificationNumber,
	})
	if err != nil {
		writeFault(ctx, err)
		return
	}
	if resp.Success {
		prom.IncCreated("case")
	}
	writeOutcome(ctx, resp.Outcome, xhttp.StatusCreated, resp)
}

// GetCases dispatches on whichever lookup parameter is present. The first
// match wins: identification_number, then reference_number, then status.
func (h *CaseHandler) GetCases(ctx *xhttp.RequestCtx) {
	var (
		resp *services.CaseListResponse
		err  error
	)

	switch {
	case ctx.QueryArgs().Has("identification_number"):
		resp, err = h.svc.GetByIdentificationNumber(ctx, query(ctx, "identification_number"))
	case ctx.QueryArgs().Has("reference_number"):
		resp, err = h.svc.GetByReferenceNumber(ctx, query(ctx, "reference_number"))
	case ctx.QueryArgs().Has("status"):
		resp, err = h.svc.GetByStatus(ctx, query(ctx, "status"))
	default:
		writeBadRequest(ctx, "one of identification_number, reference_number or status is required")
		return
	}
	if err != nil {
		writeFault(ctx, err)
		return
	}
	writeOutcome(ctx, resp.Outcome, xhttp.StatusOK, resp)
}
