package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/services"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
	"github.com/casedesk/case-servicing/pkg/prom"
)

type InteractionService interface {
	Create(ctx context.Context, req model.InteractionCreateRequest) (*services.CreateInteractionResponse, error)
	GetByCaseID(ctx context.Context, caseID string) (*services.InteractionListResponse, error)
	GetByReferenceNumber(ctx context.Context, referenceNumber string) (*services.InteractionListResponse, error)
	GetByStatus(ctx context.Context, status string) (*services.InteractionListResponse, error)
}

type InteractionHandler struct {
	svc InteractionService
}

func RegisterInteractionRoutes(e *router.Group, h *InteractionHandler) {
	e.POST("/interactions", h.CreateInteraction)
	e.GET("/interactions", h.GetInteractions)
}

func NewInteractionHandler(interactionService InteractionService) *InteractionHandler {
	return &InteractionHandler{
		svc: interactionService,
	}
}

type createInteractionRequest struct {
	CaseID                string `json:"case_id"`
	Notes                 string `json:"notes"`
	IsPrimaryInteraction  bool   `json:"is_primary_interaction"`
	PreviousInteractionID string `json:"previous_interaction_id"`
}

func (h *InteractionHandler) CreateInteraction(ctx *xhttp.RequestCtx) {
	var req createInteractionRequest
	if err := readJSON(ctx, &req); err != nil {
		writeBadRequest(ctx, "invalid JSON: "+err.Error())
		return
	}

	resp, err := h.svc.Create(ctx, model.InteractionCreateRequest{
		CaseID:                req.CaseID,
		Notes:                 req.Notes,
		IsPrimaryInteraction:  req.IsPrimaryInteraction,
		PreviousInteractionID: req.PreviousInteractionID,
	})
	if err != nil {
		writeFault(ctx, err)
		return
	}
	if resp.Success {
		prom.IncCreated("interaction")
	}
	writeOutcome(ctx, resp.Outcome, xhttp.StatusCreated, resp)
}

func (h *InteractionHandler) GetInteractions(ctx *xhttp.RequestCtx) {
	var (
		resp *services.InteractionListResponse
		err  error
	)

	switch {
	case ctx.QueryArgs().Has("case_id"):
		resp, err = h.svc.GetByCaseID(ctx, query(ctx, "case_id"))
	case ctx.QueryArgs().Has("reference_number"):
		resp, err = h.svc.GetByReferenceNumber(ctx, query(ctx, "reference_number"))
	case ctx.QueryArgs().Has("status"):
		resp, err = h.svc.GetByStatus(ctx, query(ctx, "status"))
	default:
		writeBadRequest(ctx, "one of case_id, reference_number or status is required")
		return
	}
	if err != nil {
		writeFault(ctx, err)
		return
	}
	writeOutcome(ctx, resp.Outcome, xhttp.StatusOK, resp)
}
