package domain

import "time"

// Markup field constants for change tracking
const (
	FieldMarkupPercent = "percent"
)

// DealerMarkup is a dealer-scoped percentage applied to a cost basis to
// produce the displayed retail price. It lives on the dealer, not on the
// catalog, so one catalog serves many dealers at different markups. The
// percentage is clamped at storage and again at use.
type DealerMarkup struct {
	dealerID  string
	percent   float64
	updatedBy string
	updatedAt time.Time
	changes   *ChangeTracker
}

// NewDealerMarkup creates a clamped markup record. Only dealer-admin actors
// may set markups; the usecase enforces that before calling here.
func NewDealerMarkup(dealerID string, percent float64, actor Actor, now time.Time) *DealerMarkup {
	return &DealerMarkup{
		dealerID:  dealerID,
		percent:   ClampMarkup(percent),
		updatedBy: actor.ID,
		updatedAt: now,
		changes:   NewChangeTracker(),
	}
}

// ReconstructDealerMarkup rebuilds a markup from persisted state.
func ReconstructDealerMarkup(dealerID string, percent float64, updatedBy string, updatedAt time.Time) *DealerMarkup {
	return &DealerMarkup{
		dealerID:  dealerID,
		percent:   percent,
		updatedBy: updatedBy,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
	}
}

func (m *DealerMarkup) DealerID() string      { return m.dealerID }
func (m *DealerMarkup) UpdatedBy() string     { return m.updatedBy }
func (m *DealerMarkup) UpdatedAt() time.Time  { return m.updatedAt }
func (m *DealerMarkup) Changes() *ChangeTracker {
	return m.changes
}

// Percent returns the stored percentage, re-clamped in case an external
// update path wrote an out-of-range value.
func (m *DealerMarkup) Percent() float64 {
	return ClampMarkup(m.percent)
}

// SetPercent updates the percentage, clamping on the way in.
func (m *DealerMarkup) SetPercent(percent float64, actor Actor, now time.Time) {
	m.percent = ClampMarkup(percent)
	m.updatedBy = actor.ID
	m.updatedAt = now
	m.changes.MarkDirty(FieldMarkupPercent)
}
