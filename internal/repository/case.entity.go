package repository

import (
	"time"

	"github.com/casedesk/case-servicing/internal/model"
)

type CaseEntity struct {
	ID                   string    `db:"id"                    gorm:"primaryKey;column:id;type:varchar(26)"`
	CreatedDate          time.Time `db:"created_date"          gorm:"column:created_date;autoCreateTime"`
	UpdateDate           time.Time `db:"update_date"           gorm:"column:update_date"`
	Status               string    `db:"status"                gorm:"column:status;not null;index"`
	ReferenceNumber      string    `db:"reference_number"      gorm:"column:reference_number;not null;index"`
	Channel              string    `db:"channel"               gorm:"column:channel;not null"`
	IdentificationNumber string    `db:"identification_number" gorm:"column:identification_number;not null;index"`

	Interactions []*InteractionEntity `gorm:"foreignKey:CaseID;references:ID;constraint:OnDelete:CASCADE"`
}

func (CaseEntity) TableName() string { return "cases" }

func toCaseEntity(m *model.Case) *CaseEntity {
	if m == nil {
		return nil
	}
	e := &CaseEntity{
		ID:                   m.ID,
		CreatedDate:          m.CreatedDate,
		UpdateDate:           fromOptionalDate(m.UpdateDate),
		Status:               string(m.Status),
		ReferenceNumber:      m.ReferenceNumber,
		Channel:              string(m.Channel),
		IdentificationNumber: m.IdentificationNumber,
	}
	for _, i := range m.Interactions {
		e.Interactions = append(e.Interactions, toInteractionEntity(i))
	}
	return e
}

func toCaseModel(e *CaseEntity) *model.Case {
	if e == nil {
		return nil
	}
	m := &model.Case{
		ID:                   e.ID,
		CreatedDate:          e.CreatedDate,
		UpdateDate:           toOptionalDate(e.UpdateDate),
		Status:               model.ParseCaseStatus(e.Status),
		ReferenceNumber:      e.ReferenceNumber,
		Channel:              model.ParseChannel(e.Channel),
		IdentificationNumber: e.IdentificationNumber,
		Interactions:         []*model.Interaction{},
	}
	for _, i := range e.Interactions {
		m.Interactions = append(m.Interactions, toInteractionModel(i))
	}
	return m
}

func toCaseModels(entities []*CaseEntity) []*model.Case {
	models := make([]*model.Case, 0, len(entities))
	for _, e := range entities {
		models = append(models, toCaseModel(e))
	}
	return models
}

// Absent dates on the transport shape are stored as the zero time, the
// persistence layer's minimum-date sentinel, and surface again as nil.
func fromOptionalDate(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func toOptionalDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
