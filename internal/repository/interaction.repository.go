package repository

import (
	"context"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/pkg/pg"
	"gorm.io/gorm/clause"
)

type InteractionRepository struct {
	*pg.DB
}

func NewInteractionRepository(db *pg.DB) *InteractionRepository {
	return &InteractionRepository{
		db,
	}
}

func (r *InteractionRepository) Create(ctx context.Context, i *model.Interaction) (*model.Interaction, error) {
	entity := toInteractionEntity(i)

	if err := r.Write(ctx).WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, err
	}

	return toInteractionModel(entity), nil
}

func (r *InteractionRepository) FindByID(ctx context.Context, id string) ([]*model.Interaction, error) {
	return r.find(ctx, "id = ?", id)
}

func (r *InteractionRepository) FindByCaseID(ctx context.Context, caseID string) ([]*model.Interaction, error) {
	return r.find(ctx, "case_id = ?", caseID)
}

func (r *InteractionRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Interaction, error) {
	return r.find(ctx, "reference_number = ?", referenceNumber)
}

func (r *InteractionRepository) FindByStatus(ctx context.Context, status string) ([]*model.Interaction, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *InteractionRepository) find(ctx context.Context, query string, arg any) ([]*model.Interaction, error) {
	var entities []*InteractionEntity
	if err := r.Read(ctx).WithContext(ctx).Where(query, arg).Find(&entities).Error; err != nil {
		return nil, err
	}
	return toInteractionModels(entities), nil
}

// DeleteCascade removes an interaction and its transactions, children first,
// inside one transaction.
func (r *InteractionRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).WithContext(ctx).Where("interaction_id = ?", id).Delete(&TransactionEntity{}).Error; err != nil {
			return err
		}
		return r.Write(ctx).WithContext(ctx).Where("id = ?", id).Delete(&InteractionEntity{}).Error
	})
}
