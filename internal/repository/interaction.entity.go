package repository

import (
	"time"

	"github.com/casedesk/case-servicing/internal/model"
)

type InteractionEntity struct {
	ID                    string    `db:"id"                      gorm:"primaryKey;column:id;type:varchar(26)"`
	CreatedDate           time.Time `db:"created_date"            gorm:"column:created_date;autoCreateTime"`
	UpdateDate            time.Time `db:"update_date"             gorm:"column:update_date"`
	Status                string    `db:"status"                  gorm:"column:status;not null;index"`
	ReferenceNumber       string    `db:"reference_number"        gorm:"column:reference_number;not null;index"`
	CaseID                string    `db:"case_id"                 gorm:"column:case_id;index"`
	Notes                 string    `db:"notes"                   gorm:"column:notes"`
	IsPrimaryInteraction  bool      `db:"is_primary_interaction"  gorm:"column:is_primary_interaction"`
	PreviousInteractionID string    `db:"previous_interaction_id" gorm:"column:previous_interaction_id"`

	Case         *CaseEntity          `gorm:"foreignKey:CaseID;references:ID;constraint:OnDelete:CASCADE"`
	Transactions []*TransactionEntity `gorm:"foreignKey:InteractionID;references:ID;constraint:OnDelete:CASCADE"`
}

func (InteractionEntity) TableName() string { return "interactions" }

func toInteractionEntity(m *model.Interaction) *InteractionEntity {
	if m == nil {
		return nil
	}
	e := &InteractionEntity{
		ID:                    m.ID,
		CreatedDate:           m.CreatedDate,
		UpdateDate:            fromOptionalDate(m.UpdateDate),
		Status:                string(m.Status),
		ReferenceNumber:       m.ReferenceNumber,
		Notes:                 m.Notes,
		IsPrimaryInteraction:  m.IsPrimaryInteraction,
		PreviousInteractionID: m.PreviousInteractionID,
	}
	if m.Case != nil {
		e.CaseID = m.Case.ID
		e.Case = toCaseEntity(m.Case)
	}
	for _, t := range m.Transactions {
		e.Transactions = append(e.Transactions, toTransactionEntity(t))
	}
	return e
}

func toInteractionModel(e *InteractionEntity) *model.Interaction {
	if e == nil {
		return nil
	}
	m := &model.Interaction{
		ID:                    e.ID,
		CreatedDate:           e.CreatedDate,
		UpdateDate:            toOptionalDate(e.UpdateDate),
		Status:                model.ParseInteractionStatus(e.Status),
		ReferenceNumber:       e.ReferenceNumber,
		Case:                  toCaseModel(e.Case),
		Notes:                 e.Notes,
		IsPrimaryInteraction:  e.IsPrimaryInteraction,
		PreviousInteractionID: e.PreviousInteractionID,
		Transactions:          []*model.Transaction{},
	}
	for _, t := range e.Transactions {
		m.Transactions = append(m.Transactions, toTransactionModel(t))
	}
	return m
}

func toInteractionModels(entities []*InteractionEntity) []*model.Interaction {
	models := make([]*model.Interaction, 0, len(entities))
	for _, e := range entities {
		models = append(models, toInteractionModel(e))
	}
	return models
}
