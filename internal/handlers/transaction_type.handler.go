package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/services"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
	"github.com/casedesk/case-servicing/pkg/prom"
)

type TransactionTypeService interface {
	Create(ctx context.Context, req model.TransactionTypeCreateRequest) (*services.CreateTransactionTypeResponse, error)
	GetByID(ctx context.Context, id string) (*services.TransactionTypeListResponse, error)
	List(ctx context.Context) (*services.TransactionTypeListResponse, error)
}

type TransactionTypeHandler struct {
	svc TransactionTypeService
}

func RegisterTransactionTypeRoutes(e *router.Group, h *TransactionTypeHandler) {
	e.POST("/transaction-types", h.CreateTransactionType)
	e.GET("/transaction-types", h.GetTransactionTypes)
}

func NewTransactionTypeHandler(transactionTypeService TransactionTypeService) *TransactionTypeHandler {
	return &TransactionTypeHandler{
		svc: transactionTypeService,
	}
}

type createTransactionTypeRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	RequiresApproval bool   `json:"requires_approval"`
}

func (h *TransactionTypeHandler) CreateTransactionType(ctx *xhttp.RequestCtx) {
	var req createTransactionTypeRequest
	if err := readJSON(ctx, &req); err != nil {
		writeBadRequest(ctx, "invalid JSON: "+err.Error())
		return
	}

	resp, err := h.svc.Create(ctx, model.TransactionTypeCreateRequest{
		Name:             req.Name,
		Description:      req.Description,
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		writeFault(ctx, err)
		return
	}
	if resp.Success {
		prom.IncCreated("transaction_type")
	}
	writeOutcome(ctx, resp.Outcome, xhttp.StatusCreated, resp)
}

func (h *TransactionTypeHandler) GetTransactionTypes(ctx *xhttp.RequestCtx) {
	var (
		resp *services.TransactionTypeListResponse
		err  error
	)

	if ctx.QueryArgs().Has("id") {
		resp, err = h.svc.GetByID(ctx, query(ctx, "id"))
	} else {
		resp, err = h.svc.List(ctx)
	}
	if err != nil {
		writeFault(ctx, err)
		return
	}
	writeOutcome(ctx, resp.Outcome, xhttp.StatusOK, resp)
}
