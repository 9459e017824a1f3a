package repository

import (
	"context"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/casedesk/case-servicing/pkg/pg"
	"gorm.io/gorm/clause"
)

type CaseRepository struct {
	*pg.DB
}

func NewCaseRepository(db *pg.DB) *CaseRepository {
	return &CaseRepository{
		db,
	}
}

func (r *CaseRepository) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	entity := toCaseEntity(c)

	if err := r.Write(ctx).WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCaseModel(entity), nil
}

func (r *CaseRepository) FindByID(ctx context.Context, id string) ([]*model.Case, error) {
	return r.find(ctx, "id = ?", id)
}

func (r *CaseRepository) FindByIdentificationNumber(ctx context.Context, identificationNumber string) ([]*model.Case, error) {
	return r.find(ctx, "identification_number = ?", identificationNumber)
}

func (r *CaseRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) ([]*model.Case, error) {
	return r.find(ctx, "reference_number = ?", referenceNumber)
}

func (r *CaseRepository) FindByStatus(ctx context.Context, status string) ([]*model.Case, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *CaseRepository) find(ctx context.Context, query string, arg any) ([]*model.Case, error) {
	var entities []*CaseEntity
	if err := r.Read(ctx).WithContext(ctx).Where(query, arg).Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCaseModels(entities), nil
}

// DeleteCascade removes a case and everything beneath it. Children are
// deleted explicitly, children before parents, inside one transaction; the
// schema's ON DELETE CASCADE is a backstop, not the rule.
func (r *CaseRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).WithContext(ctx).Where("case_id = ?", id).Delete(&TransactionEntity{}).Error; err != nil {
			return err
		}
		if err := r.Write(ctx).WithContext(ctx).Where("case_id = ?", id).Delete(&InteractionEntity{}).Error; err != nil {
			return err
		}
		return r.Write(ctx).WithContext(ctx).Where("id = ?", id).Delete(&CaseEntity{}).Error
	})
}
