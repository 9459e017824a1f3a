package repository

import (
	"context"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/pkg/pg"
)

type TransactionTypeRepository struct {
	*pg.DB
}

func NewTransactionTypeRepository(db *pg.DB) *TransactionTypeRepository {
	return &TransactionTypeRepository{
		db,
	}
}

func (r *TransactionTypeRepository) Create(ctx context.Context, tt *model.TransactionType) (*model.TransactionType, error) {
	entity := toTransactionTypeEntity(tt)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toTransactionTypeModel(entity), nil
}

func (r *TransactionTypeRepository) FindByID(ctx context.Context, id string) ([]*model.TransactionType, error) {
	return r.find(ctx, "id = ?", id)
}

func (r *TransactionTypeRepository) FindByName(ctx context.Context, name string) ([]*model.TransactionType, error) {
	return r.find(ctx, "name = ?", name)
}

func (r *TransactionTypeRepository) List(ctx context.Context) ([]*model.TransactionType, error) {
	var entities []*TransactionTypeEntity
	if err := r.Read(ctx).WithContext(ctx).Order("name ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toTransactionTypeModels(entities), nil
}

func (r *TransactionTypeRepository) find(ctx context.Context, query string, arg any) ([]*model.TransactionType, error) {
	var entities []*TransactionTypeEntity
	if err := r.Read(ctx).WithContext(ctx).Where(query, arg).Find(&entities).Error; err != nil {
		return nil, err
	}
	return toTransactionTypeModels(entities), nil
}
