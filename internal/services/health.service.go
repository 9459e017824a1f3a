package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/casedesk/case-servicing/pkg/pg"
)

type HealthService struct {
	db *pg.DB
}

func NewHealthService(db *pg.DB) *HealthService {
	return &HealthService{db: db}
}

// Get pings both database handles so a broken replica shows up in the probe.
func (s *HealthService) Get() error {
	ctx := context.Background()
	for _, conn := range []*gorm.DB{s.db.Read(ctx), s.db.Write(ctx)} {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return err
		}
	}
	return nil
}
