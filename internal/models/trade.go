package models

import (
	"time"

	"gorm.io/gorm"
)

// Direction is the side of a position.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// OrderType is the order kind used to open a position.
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStop      OrderType = "STOP"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

// Trade is a single journal entry as served by the trades API.
// A trade is closed once both ExitPrice and ExitTime are set.
type Trade struct {
	ID          string     `json:"id"`
	Symbol      string     `json:"symbol"`
	Direction   Direction  `json:"direction"`
	OrderType   OrderType  `json:"orderType"`
	Size        float64    `json:"size"` // base units
	EntryPrice  float64    `json:"entryPrice"`
	ExitPrice   *float64   `json:"exitPrice,omitempty"`
	EntryTime   time.Time  `json:"entryTime"`
	ExitTime    *time.Time `json:"exitTime,omitempty"`
	Fees        float64    `json:"fees"` // quote currency
	Notes       string     `json:"notes,omitempty"`
	StrategyTag string     `json:"strategyTag,omitempty"`
}

// IsClosed reports whether the trade has both an exit price and an exit time.
func (t Trade) IsClosed() bool {
	return t.ExitPrice != nil && t.ExitTime != nil
}

// WithNotes returns a copy of the trade with its notes replaced.
func (t Trade) WithNotes(notes string) Trade {
	t.Notes = notes
	return t
}

// TradeRecord is the persisted form of a Trade in the journal store.
type TradeRecord struct {
	gorm.Model
	TradeID     string `gorm:"uniqueIndex;not null"`
	Wallet      string `gorm:"index"`
	Symbol      string `gorm:"index;not null"`
	Direction   string `gorm:"not null"`
	OrderType   string `gorm:"not null"`
	Size        float64
	EntryPrice  float64 `gorm:"not null"`
	ExitPrice   *float64
	EntryTime   time.Time `gorm:"index;not null"`
	ExitTime    *time.Time
	Fees        float64
	Notes       string
	StrategyTag string
}

// NewTradeRecord converts a Trade into its persisted form.
func NewTradeRecord(wallet string, t Trade) TradeRecord {
	return TradeRecord{
		TradeID:     t.ID,
		Wallet:      wallet,
		Symbol:      t.Symbol,
		Direction:   string(t.Direction),
		OrderType:   string(t.OrderType),
		Size:        t.Size,
		EntryPrice:  t.EntryPrice,
		ExitPrice:   t.ExitPrice,
		EntryTime:   t.EntryTime.UTC(),
		ExitTime:    utcPtr(t.ExitTime),
		Fees:        t.Fees,
		Notes:       t.Notes,
		StrategyTag: t.StrategyTag,
	}
}

// Trade converts the record back into the API shape.
func (r TradeRecord) Trade() Trade {
	return Trade{
		ID:          r.TradeID,
		Symbol:      r.Symbol,
		Direction:   Direction(r.Direction),
		OrderType:   OrderType(r.OrderType),
		Size:        r.Size,
		EntryPrice:  r.EntryPrice,
		ExitPrice:   r.ExitPrice,
		EntryTime:   r.EntryTime.UTC(),
		ExitTime:    utcPtr(r.ExitTime),
		Fees:        r.Fees,
		Notes:       r.Notes,
		StrategyTag: r.StrategyTag,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
