// Package store persists comparison runs to a local sqlite file so fee
// drift can be inspected over time.
package store

import (
	"time"

	model "github.com/wythers/tron-energy/model/tron"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Run struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Node     string
	From     string
	Amount   string
	PriceSun int64

	HeldRecipient  string
	HeldEnergy     int64
	HeldFeeTRX     string
	FreshRecipient string
	FreshEnergy    int64
	FreshFeeTRX    string

	EnergyDiff int64
	Ratio      string
}

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) SaveComparison(node string, cmp *model.Comparison) error {
	run := Run{
		Node:           node,
		From:           cmp.From,
		Amount:         cmp.Amount.String(),
		PriceSun:       cmp.PriceSun,
		HeldRecipient:  cmp.Held.Recipient,
		HeldEnergy:     cmp.Held.EnergyUsed,
		HeldFeeTRX:     cmp.Held.FeeTRX.String(),
		FreshRecipient: cmp.Fresh.Recipient,
		FreshEnergy:    cmp.Fresh.EnergyUsed,
		FreshFeeTRX:    cmp.Fresh.FeeTRX.String(),
		EnergyDiff:     cmp.EnergyDiff,
		Ratio:          cmp.Ratio.String(),
	}
	return s.db.Create(&run).Error
}

// Runs returns the most recent comparison runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("created_at desc").Limit(limit).Find(&runs).Error
	return runs, err
}
