package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/services"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
	"github.com/casedesk/case-servicing/pkg/prom"
)

type TransactionService interface {
	Create(ctx context.Context, req model.TransactionCreateRequest) (*services.CreateTransactionResponse, error)
	GetByCaseID(ctx context.Context, caseID string) (*services.TransactionListResponse, error)
	GetByReferenceNumber(ctx context.Context, referenceNumber string) (*services.TransactionListResponse, error)
	GetByStatus(ctx context.Context, status string) (*services.TransactionListResponse, error)
}

type TransactionHandler struct {
	svc TransactionService
}

func RegisterTransactionRoutes(e *router.Group, h *TransactionHandler) {
	e.POST("/transactions", h.CreateTransaction)
	e.GET("/transactions", h.GetTransactions)
}

func NewTransactionHandler(transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{
		svc: transactionService,
	}
}

type createTransactionRequest struct {
	CaseID                string `json:"case_id"`
	InteractionID         string `json:"interaction_id"`
	TransactionTypeID     string `json:"transaction_type_id"`
	IsImmediate           bool   `json:"is_immediate"`
	IsFulfilledExternally bool   `json:"is_fulfilled_externally"`
	ExternalSystem        string `json:"external_system"`
	ParentReferenceNumber string `json:"parent_reference_number"`
	ReceivedDetails       string `json:"received_details"`
}

func (h *TransactionHandler) CreateTransaction(ctx *xhttp.RequestCtx) {
	var req createTransactionRequest
	if err := readJSON(ctx, &req); err != nil {
		writeBadRequest(ctx, "invalid JSON: "+err.Error())
		return
	}

	resp, err := h.svc.Create(ctx, model.TransactionCreateRequest{
		CaseID:                req.CaseID,
		InteractionID:         req.InteractionID,
		TransactionTypeID:     req.TransactionTypeID,
		IsImmediate:           req.IsImmediate,
		IsFulfilledExternally: req.IsFulfilledExternally,
		ExternalSystem:        req.ExternalSystem,
		ParentReferenceNumber: req.ParentReferenceNumber,
		ReceivedDetails:       req.ReceivedDetails,
	})
	if err != nil {
		writeFault(ctx, err)
		return
	}
	if resp.Success {
		prom.IncCreated("transaction")
	}
	writeOutcome(ctx, resp.Outcome, xhttp.StatusCreated, resp)
}

func (h *TransactionHandler) GetTransactions(ctx *xhttp.RequestCtx) {
	var (
		resp *services.TransactionListResponse
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
