package repository

import (
	"context"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/pkg/pg"
	"gorm.io/gorm/clause"
)

type TransactionRepository struct {
	*pg.DB
}

func NewTransactionRepository(db *pg.DB) *TransactionRepository {
	return &TransactionRepository{
		db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	entity := toTransactionEntity(txn)

	if err := r.Write(ctx).WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, err
	}

	return toTransactionModel(entity), nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) ([]*model.Transaction, error) {
	return r.find(ctx, "id = ?", id)
}

func (r *TransactionRepository) FindByCaseID(ctx context.Context, caseID string) ([]*model.Transaction, error) {
	return r.find(ctx, "case_id = ?", caseID)
}

func (r *TransactionRepository) FindByInteractionID(ctx context.Context, interactionID string) ([]*model.Transaction, error) {
	return r.find(ctx, "interaction_id = ?", interactionID)
}

func (r *TransactionRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Transaction, error) {
	return r.find(ctx, "reference_number = ?", referenceNumber)
}

func (r *TransactionRepository) FindByStatus(ctx context.Context, status string) ([]*model.Transaction, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *TransactionRepository) find(ctx context.Context, query string, arg any) ([]*model.Transaction, error) {
	var entities []*TransactionEntity
	if err := r.Read(ctx).WithContext(ctx).Where(query, arg).Find(&entities).Error; err != nil {
		return nil, err
	}
	return toTransactionModels(entities), nil
}
