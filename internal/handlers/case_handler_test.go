package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/internal/outcome"
	"github.com/casedesk/case-servicing/internal/services"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
)

type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) Create(ctx context.Context, req model.CaseCreateRequest) (*services.CreateCaseResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CreateCaseResponse), args.Error(1)
}

func (m *MockCaseService) GetByIdentificationNumber(ctx context.Context, identificationNumber string) (*services.CaseListResponse, error) {
	args := m.Called(ctx, identificationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CaseListResponse), args.Error(1)
}

func (m *MockCaseService) GetByReferenceNumber(ctx context.Context, referenceNumber string) (*services.CaseListResponse, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CaseListResponse), args.Error(1)
}

func (m *MockCaseService) GetByStatus(ctx context.Context, status string) (*services.CaseListResponse, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CaseListResponse), args.Error(1)
}

func setupTestContext(method, path string, body []byte) *xhttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func failedOutcome(msgs ...string) outcome.Outcome {
	o := outcome.New()
	o.AddErrorMessages(msgs, false)
	return o
}

func TestCaseHandler_CreateCase(t *testing.T) {
	t.Run("successful creation returns 201", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(req model.CaseCreateRequest) bool {
			return req.Channel == model.ChannelPublicWeb && req.IdentificationNumber == "ID-1001"
		})).Return(&services.CreateCaseResponse{
			Outcome:         outcome.New(),
			CaseID:          "01HCASE000000000000000AAAA",
			ReferenceNumber: "CSP240301100AAAAAA",
		}, nil)

		body, _ := json.Marshal(createCaseRequest{Channel: "PublicWeb", IdentificationNumber: "ID-1001"})
		ctx := setupTestContext("POST", "/api/v1/cases", body)
		handler.CreateCase(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var resp services.CreateCaseResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "CSP240301100AAAAAA", resp.ReferenceNumber)
		svc.AssertExpectations(t)
	})

	t.Run("display label parses to the channel enumeration", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(req model.CaseCreateRequest) bool {
			return req.Channel == model.ChannelAdviserWorkBench
		})).Return(&services.CreateCaseResponse{
			Outcome: outcome.New(),
			CaseID:  "01HCASE000000000000000BBBB",
		}, nil)

		body, _ := json.Marshal(createCaseRequest{Channel: "Adviser Work Bench", IdentificationNumber: "ID-1002"})
		ctx := setupTestContext("POST", "/api/v1/cases", body)
		handler.CreateCase(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})

	t.Run("unrecognized channel reaches the service as Unknown", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(req model.CaseCreateRequest) bool {
			return req.Channel == model.ChannelUnknown
		})).Return(&services.CreateCaseResponse{
			Outcome: failedOutcome("must be a known channel on property 'Channel' with value (Unknown)"),
		}, nil)

		body, _ := json.Marshal(createCaseRequest{Channel: "Carrier Pigeon", IdentificationNumber: "ID-1003"})
		ctx := setupTestContext("POST", "/api/v1/cases", body)
		handler.CreateCase(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})

	t.Run("validation failure returns 400 with envelope", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(&services.CreateCaseResponse{
			Outcome: failedOutcome("must not be empty on property 'IdentificationNumber' with value ()"),
		}, nil)

		ctx := setupTestContext("POST", "/api/v1/cases", []byte(`{}`))
		handler.CreateCase(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var resp services.CreateCaseResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.False(t, resp.Success)
		assert.Len(t, resp.ErrorMessages, 1)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		ctx := setupTestContext("POST", "/api/v1/cases", []byte("not json"))
		handler.CreateCase(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var o outcome.Outcome
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &o))
		assert.False(t, o.Success)
		assert.Contains(t, o.ErrorMessages[0], "invalid JSON")
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("infrastructure error returns generic 500", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

		body, _ := json.Marshal(createCaseRequest{Channel: "Branch", IdentificationNumber: "ID-1001"})
		ctx := setupTestContext("POST", "/api/v1/cases", body)
		handler.CreateCase(ctx)

		assert.Equal(t, 500, ctx.Response.StatusCode())
		assert.NotContains(t, string(ctx.Response.Body()), "connection refused")
	})
}

func TestCaseHandler_GetCases(t *testing.T) {
	t.Run("dispatches on identification_number first", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("GetByIdentificationNumber", mock.Anything, "ID-1001").Return(&services.CaseListResponse{
			Outcome: outcome.New(),
			Cases:   []*model.Case{{ID: "01HCASE000000000000000AAAA"}},
		}, nil)

		ctx := setupTestContext("GET", "/api/v1/cases?identification_number=ID-1001&status=Initiated", nil)
		handler.GetCases(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "GetByStatus", mock.Anything, mock.Anything)
	})

	t.Run("falls through to status", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("GetByStatus", mock.Anything, "Initiated").Return(&services.CaseListResponse{
			Outcome: outcome.New(),
			Cases:   []*model.Case{},
		}, nil)

		ctx := setupTestContext("GET", "/api/v1/cases?status=Initiated", nil)
		handler.GetCases(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())

		var resp services.CaseListResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Cases)
	})

	t.Run("blank parameter value still reaches the service", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		svc.On("GetByStatus", mock.Anything, "").Return(&services.CaseListResponse{
			Outcome: failedOutcome("status is required"),
			Cases:   []*model.Case{},
		}, nil)

		ctx := setupTestContext("GET", "/api/v1/cases?status=", nil)
		handler.GetCases(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
	})

	t.Run("no parameter at all returns 400", func(t *testing.T) {
		svc := new(MockCaseService)
		handler := NewCaseHandler(svc)

		ctx := setupTestContext("GET", "/api/v1/cases", nil)
		handler.GetCases(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())

		var o outcome.Outcome
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &o))
		assert.Contains(t, o.ErrorMessages[0], "identification_number")
	})
}
