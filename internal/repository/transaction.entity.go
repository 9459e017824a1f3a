package repository

import (
	"time"

	"github.com/casedesk/case-servicing/internal/model"
)

type TransactionEntity struct {
	ID                     string    `db:"id"                        gorm:"primaryKey;column:id;type:varchar(26)"`
	CreatedDate            time.Time `db:"created_date"              gorm:"column:created_date;autoCreateTime"`
	UpdateDate             time.Time `db:"update_date"               gorm:"column:update_date"`
	Status                 string    `db:"status"                    gorm:"column:status;not null;index"`
	ReferenceNumber        string    `db:"reference_number"          gorm:"column:reference_number;not null;index"`
	CaseID                 string    `db:"case_id"                   gorm:"column:case_id;index"`
	InteractionID          string    `db:"interaction_id"            gorm:"column:interaction_id;index"`
	TransactionTypeID      string    `db:"transaction_type_id"       gorm:"column:transaction_type_id;index"`
	IsImmediate            bool      `db:"is_immediate"              gorm:"column:is_immediate"`
	IsFulfilledExternally  bool      `db:"is_fulfilled_externally"   gorm:"column:is_fulfilled_externally"`
	ExternalSystem         string    `db:"external_system"           gorm:"column:external_system"`
	ExternalSystemID       string    `db:"external_system_id"        gorm:"column:external_system_id"`
	ExternalSystemStatus   string    `db:"external_system_status"    gorm:"column:external_system_status"`
	ExternalSystemParentID string    `db:"external_system_parent_id" gorm:"column:external_system_parent_id"`
	ParentReferenceNumber  string    `db:"parent_reference_number"   gorm:"column:parent_reference_number"`
	ReceivedDetails        string    `db:"received_details"          gorm:"column:received_details"`
	ProcessedDetails       string    `db:"processed_details"         gorm:"column:processed_details"`

	Case            *CaseEntity            `gorm:"foreignKey:CaseID;references:ID;constraint:OnDelete:CASCADE"`
	Interaction     *InteractionEntity     `gorm:"foreignKey:InteractionID;references:ID;constraint:OnDelete:CASCADE"`
	TransactionType *TransactionTypeEntity `gorm:"foreignKey:TransactionTypeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (TransactionEntity) TableName() string { return "transactions" }

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	e := &TransactionEntity{
		ID:                     m.ID,
		CreatedDate:            m.CreatedDate,
		UpdateDate:             fromOptionalDate(m.UpdateDate),
		Status:                 string(m.Status),
		ReferenceNumber:        m.ReferenceNumber,
		IsImmediate:            m.IsImmediate,
		IsFulfilledExternally:  m.IsFulfilledExternally,
		ExternalSystem:         m.ExternalSystem,
		ExternalSystemID:       m.ExternalSystemID,
		ExternalSystemStatus:   m.ExternalSystemStatus,
		ExternalSystemParentID: m.ExternalSystemParentID,
		ParentReferenceNumber:  m.ParentReferenceNumber,
		ReceivedDetails:        m.ReceivedDetails,
		ProcessedDetails:       m.ProcessedDetails,
	}
	if m.Case != nil {
		e.CaseID = m.Case.ID
		e.Case = toCaseEntity(m.Case)
	}
	if m.Interaction != nil {
		e.InteractionID = m.Interaction.ID
		e.Interaction = toInteractionEntity(m.Interaction)
	}
	if m.TransactionType != nil {
		e.TransactionTypeID = m.TransactionType.ID
		e.TransactionType = toTransactionTypeEntity(m.TransactionType)
	}
	return e
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	return &model.Transaction{
		ID:                     e.ID,
		CreatedDate:            e.CreatedDate,
		UpdateDate:             toOptionalDate(e.UpdateDate),
		Status:                 model.ParseTransactionStatus(e.Status),
		ReferenceNumber:        e.ReferenceNumber,
		Case:                   toCaseModel(e.Case),
		Interaction:            toInteractionModel(e.Interaction),
		TransactionType:        toTransactionTypeModel(e.TransactionType),
		IsImmediate:            e.IsImmediate,
		IsFulfilledExternally:  e.IsFulfilledExternally,
		ExternalSystem:         e.ExternalSystem,
		ExternalSystemID:       e.ExternalSystemID,
		ExternalSystemStatus:   e.ExternalSystemStatus,
		ExternalSystemParentID: e.ExternalSystemParentID,
		ParentReferenceNumber:  e.ParentReferenceNumber,
		ReceivedDetails:        e.ReceivedDetails,
		ProcessedDetails:       e.ProcessedDetails,
	}
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	models := make([]*model.Transaction, 0, len(entities))
	for _, e := range entities {
		models = append(models, toTransactionModel(e))
	}
	return models
}
