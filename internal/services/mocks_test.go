package services

import (
	"context"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(context.Context, *model.Case) *model.Case); ok {
		return fn(ctx, c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseRepository) FindByID(ctx context.Context, id string) ([]*model.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Case), args.Error(1)
}

func (m *MockCaseRepository) FindByIdentificationNumber(ctx context.Context, identificationNumber string) ([]*model.Case, error) {
	args := m.Called(ctx, identificationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Case), args.Error(1)
}

func (m *MockCaseRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Case, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Case), args.Error(1)
}

func (m *MockCaseRepository) FindByStatus(ctx context.Context, status string) ([]*model.Case, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Case), args.Error(1)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Create(ctx context.Context, i *model.Interaction) (*model.Interaction, error) {
	args := m.Called(ctx, i)
	if fn, ok := args.Get(0).(func(context.Context, *model.Interaction) *model.Interaction); ok {
		return fn(ctx, i), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindByID(ctx context.Context, id string) ([]*model.Interaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindByCaseID(ctx context.Context, caseID string) ([]*model.Interaction, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Interaction, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindByStatus(ctx context.Context, status string) ([]*model.Interaction, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Interaction), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, txn)
	if fn, ok := args.Get(0).(func(context.Context, *model.Transaction) *model.Transaction); ok {
		return fn(ctx, txn), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id string) ([]*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByCaseID(ctx context.Context, caseID string) ([]*model.Transaction, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Transaction, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByStatus(ctx context.Context, status string) ([]*model.Transaction, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

type MockTransactionTypeRepository struct {
	mock.Mock
}

func (m *MockTransactionTypeRepository) Create(ctx context.Context, tt *model.TransactionType) (*model.TransactionType, error) {
	args := m.Called(ctx, tt)
	if fn, ok := args.Get(0).(func(context.Context, *model.TransactionType) *model.TransactionType); ok {
		return fn(ctx, tt), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransactionType), args.Error(1)
}

func (m *MockTransactionTypeRepository) FindByID(ctx context.Context, id string) ([]*model.TransactionType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TransactionType), args.Error(1)
}

func (m *MockTransactionTypeRepository) FindByName(ctx context.Context, name string) ([]*model.TransactionType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TransactionType), args.Error(1)
}

func (m *MockTransactionTypeRepository) List(ctx context.Context) ([]*model.TransactionType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TransactionType), args.Error(1)
}
