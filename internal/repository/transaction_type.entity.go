package repository

import (
	"time"

	"github.com/casedesk/case-servicing/internal/model"
)

type TransactionTypeEntity struct {
	ID               string    `db:"id"                gorm:"primaryKey;column:id;type:varchar(26)"`
	CreatedDate      time.Time `db:"created_date"      gorm:"column:created_date;autoCreateTime"`
	UpdateDate       time.Time `db:"update_date"       gorm:"column:update_date"`
	Name             string    `db:"name"              gorm:"column:name;not null;index"`
	Description      string    `db:"description"       gorm:"column:description"`
	RequiresApproval bool      `db:"requires_approval" gorm:"column:requires_approval"`
}

func (TransactionTypeEntity) TableName() string { return "transaction_types" }

func toTransactionTypeEntity(m *model.TransactionType) *TransactionTypeEntity {
	if m == nil {
		return nil
	}
	return &TransactionTypeEntity{
		ID:               m.ID,
		CreatedDate:      m.CreatedDate,
		UpdateDate:       fromOptionalDate(m.UpdateDate),
		Name:             m.Name,
		Description:      m.Description,
		RequiresApproval: m.RequiresApproval,
	}
}

func toTransactionTypeModel(e *TransactionTypeEntity) *model.TransactionType {
	if e == nil {
		return nil
	}
	return &model.TransactionType{
		ID:               e.ID,
		CreatedDate:      e.CreatedDate,
		UpdateDate:       toOptionalDate(e.UpdateDate),
		Name:             e.Name,
		Description:      e.Description,
		RequiresApproval: e.RequiresApproval,
	}
}

func toTransactionTypeModels(entities []*TransactionTypeEntity) []*model.TransactionType {
	models := make([]*model.TransactionType, 0, len(entities))
	for _, e := range entities {
		models = append(models, toTransactionTypeModel(e))
	}
	return models
}
