// Package filter narrows a trade list before it reaches the analytics engine.
package filter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"trade-journal/internal/models"
)

var ErrInvalidDate = errors.New("invalid date")

const dateOnly = "2006-01-02"

// Filters selects trades. Zero-valued fields match everything.
// Date bounds are inclusive and compared against the entry time.
type Filters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Symbol    string
	Direction models.Direction
	OrderType models.OrderType
}

// Match reports whether t passes every set criterion.
func (f Filters) Match(t models.Trade) bool {
	if f.Symbol != "" && t.Symbol != f.Symbol {
		return false
	}
	if f.Direction != "" && t.Direction != f.Direction {
		return false
	}
	if f.OrderType != "" && t.OrderType != f.OrderType {
		return false
	}
	if f.StartDate != nil && t.EntryTime.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.EntryTime.After(*f.EndDate) {
		return false
	}
	return true
}

// Apply returns the matching trades in their original order.
func (f Filters) Apply(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ParseDate accepts RFC3339 timestamps or YYYY-MM-DD dates, which are read
// as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FromQuery reads filters from the start, end, symbol, direction and
// orderType query parameters.
func FromQuery(q url.Values) (Filters, error) {
	f := Filters{
		Symbol:    q.Get("symbol"),
		Direction: models.Direction(strings.ToUpper(q.Get("direction"))),
		OrderType: models.OrderType(strings.ToUpper(q.Get("orderType"))),
	}

	for key, dst := range map[string]**time.Time{"start": &f.StartDate, "end": &f.EndDate} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		t, err := ParseDate(raw)
		if err != nil {
			return Filters{}, fmt.Errorf("parse %s: %w", key, err)
		}
		*dst = &t
	}

	return f, nil
}
