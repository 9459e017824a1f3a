package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/outcome"
	"github.com/casedesk/case-servicing/internal/services"
)

type MockInteractionService struct {
	mock.Mock
}

func (m *MockInteractionService) Create(ctx context.Context, req model.InteractionCreateRequest) (*services.CreateInteractionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CreateInteractionResponse), args.Error(1)
}

func (m *MockInteractionService) GetByCaseID(ctx context.Context, caseID string) (*services.InteractionListResponse, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InteractionListResponse), args.Error(1)
}

func (m *MockInteractionService) GetByReferenceNumber(ctx context.Context, referenceNumber string) (*services.InteractionListResponse, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InteractionListResponse), args.Error(1)
}

func (m *MockInteractionService) GetByStatus(ctx context.Context, status string) (*services.InteractionListResponse, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InteractionListResponse), args.Error(1)
}

func TestInteractionHandler_CreateInteraction(t *testing.T) {
	t.Run("successful creation returns 201", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(req model.InteractionCreateRequest) bool {
			return req.CaseID == "01HCASE000000000000000AAAA" &&
				req.Notes == "customer called about a policy change" &&
				req.IsPrimaryInteraction
		})).Return(&services.CreateInteractionResponse{
			Outcome:         outcome.New(),
			InteractionID:   "01HINTR000000000000000AAAA",
			ReferenceNumber: "CSB240301100AAAAAA",
			CaseID:          "01HCASE000000000000000AAAA",
		}, nil)

		body, _ := json.Marshal(createInteractionRequest{
			CaseID:               "01HCASE000000000000000AAAA",
			Notes:                "customer called about a policy change",
			IsPrimaryInteraction: true,
		})
		ctx := setupTestContext("POST", "/api/v1/interactions", body)
		handler.CreateInteraction(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var resp services.CreateInteractionResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "01HINTR000000000000000AAAA", resp.InteractionID)
		assert.Equal(t, "CSB240301100AAAAAA", resp.ReferenceNumber)
		svc.AssertExpectations(t)
	})

	t.Run("missing parent case returns 400 with envelope", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(&services.CreateInteractionResponse{
			Outcome: failedOutcome("No case found for CaseId: 01HNOPE000000000000000AAAA"),
		}, nil)

		body, _ := json.Marshal(createInteractionRequest{CaseID: "01HNOPE000000000000000AAAA"})
		ctx := setupTestContext("POST", "/api/v1/interactions", body)
		handler.CreateInteraction(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var resp services.CreateInteractionResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.False(t, resp.Success)
		assert.Len(t, resp.ErrorMessages, 1)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		ctx := setupTestContext("POST", "/api/v1/interactions", []byte("not json"))
		handler.CreateInteraction(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var o outcome.Outcome
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &o))
		assert.False(t, o.Success)
		assert.Contains(t, o.ErrorMessages[0], "invalid JSON")
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("infrastructure error returns generic 500", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

		body, _ := json.Marshal(createInteractionRequest{CaseID: "01HCASE000000000000000AAAA"})
		ctx := setupTestContext("POST", "/api/v1/interactions", body)
		handler.CreateInteraction(ctx)

		assert.Equal(t, 500, ctx.Response.StatusCode())
		assert.NotContains(t, string(ctx.Response.Body()), "connection refused")
	})
}

func TestInteractionHandler_GetInteractions(t *testing.T) {
	t.Run("dispatches on case_id first", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		svc.On("GetByCaseID", mock.Anything, "01HCASE000000000000000AAAA").Return(&services.InteractionListResponse{
			Outcome:      outcome.New(),
			Interactions: []*model.Interaction{{ID: "01HINTR000000000000000AAAA"}},
		}, nil)

		ctx := setupTestContext("GET", "/api/v1/interactions?case_id=01HCASE000000000000000AAAA&status=Initiated", nil)
		handler.GetInteractions(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "GetByStatus", mock.Anything, mock.Anything)
	})

	t.Run("falls through to reference_number", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		svc.On("GetByReferenceNumber", mock.Anything, "CSB240301100AAAAAA").Return(&services.InteractionListResponse{
			Outcome:      outcome.New(),
			Interactions: []*model.Interaction{},
		}, nil)

		ctx := setupTestContext("GET", "/api/v1/interactions?reference_number=CSB240301100AAAAAA", nil)
		handler.GetInteractions(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var resp services.InteractionListResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Interactions)
	})

	t.Run("blank parameter value still reaches the service", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		svc.On("GetByStatus", mock.Anything, "").Return(&services.InteractionListResponse{
			Outcome:      failedOutcome("status is required"),
			Interactions: []*model.Interaction{},
		}, nil)

		ctx := setupTestContext("GET", "/api/v1/interactions?status=", nil)
		handler.GetInteractions(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
	})

	t.Run("no parameter at all returns 400", func(t *testing.T) {
		svc := new(MockInteractionService)
		handler := NewInteractionHandler(svc)

		ctx := setupTestContext("GET", "/api/v1/interactions", nil)
		handler.GetInteractions(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var o outcome.Outcome
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &o))
		assert.Contains(t, o.ErrorMessages[0], "case_id")
	})
}
