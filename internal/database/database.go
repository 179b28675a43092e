package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trade-journal/internal/models"
	"trade-journal/internal/sample"
)

var ErrTradeNotFound = errors.New("trade not found")

// Store is the trade journal backing the mock trades API.
type Store struct {
	db *gorm.DB
}

// NewDatabase opens the sqlite database at dsn, migrates the schema and seeds
// the demo trades when the journal is empty.
func NewDatabase(ctx context.Context, dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.TradeRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	s := &Store{db: db}

	var count int64
	if err := db.WithContext(ctx).Model(&models.TradeRecord{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count trades: %w", err)
	}
	if count == 0 {
		if err := s.Seed(ctx, sample.DemoWallet, sample.Trades()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Seed stores trades under wallet in a single transaction.
func (s *Store) Seed(ctx context.Context, wallet string, trades []models.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	records := make([]models.TradeRecord, 0, len(trades))
	for _, t := range trades {
		records = append(records, models.NewTradeRecord(wallet, t))
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to seed trades for wallet '%s': %w", wallet, err)
	}
	return nil
}

// ListTrades returns the wallet's trades ordered by entry time. Wallets with
// no stored history get the demo trades, matching the mock API contract.
func (s *Store) ListTrades(ctx context.Context, wallet string) ([]models.Trade, error) {
	records, err := s.recordsFor(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 && wallet != sample.DemoWallet {
		if records, err = s.recordsFor(ctx, sample.DemoWallet); err != nil {
			return nil, err
		}
	}

	trades := make([]models.Trade, 0, len(records))
	for _, r := range records {
		trades = append(trades, r.Trade())
	}
	return trades, nil
}

func (s *Store) recordsFor(ctx context.Context, wallet string) ([]models.TradeRecord, error) {
	var records []models.TradeRecord
	err := s.db.WithContext(ctx).
		Where("wallet = ?", wallet).
		Order("entry_time asc, id asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get trades for wallet '%s': %w", wallet, err)
	}
	return records, nil
}

// UpdateNotes replaces the notes of the trade with the given id and returns
// the updated trade.
func (s *Store) UpdateNotes(ctx context.Context, tradeID, notes string) (models.Trade, error) {
	var record models.TradeRecord
	err := s.db.WithContext(ctx).Where("trade_id = ?", tradeID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Trade{}, fmt.Errorf("%w: %s", ErrTradeNotFound, tradeID)
	}
	if err != nil {
		return models.Trade{}, fmt.Errorf("failed to load trade %s: %w", tradeID, err)
	}

	if err := s.db.WithContext(ctx).Model(&record).Update("notes", notes).Error; err != nil {
		return models.Trade{}, fmt.Errorf("failed to update notes for trade %s: %w", tradeID, err)
	}
	return record.Trade().WithNotes(notes), nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
