package models

import "time"

// Claim statuses. pending is the only non-terminal state.
const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

// Claim records a user's assertion that an item belongs to them.
// The (item_id, claimer_id) unique index closes the concurrent
// double-submit race at the storage layer.
type Claim struct {
	ClaimID   int       `gorm:"primaryKey;column:claim_id" json:"claim_id"`
	ItemID    int       `gorm:"column:item_id;uniqueIndex:uniq_item_claimer" json:"item_id"`
	ClaimerID int       `gorm:"column:claimer_id;uniqueIndex:uniq_item_claimer" json:"claimer_id"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	Status    string    `gorm:"column:status;size:20;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Item    Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Claimer User `gorm:"foreignKey:ClaimerID" json:"claimer,omitempty"`
}

func (Claim) TableName() string {
	return "claims"
}

// Decided reports whether the claim has reached a terminal state.
func (c *Claim) Decided() bool {
	return c.Status != ClaimStatusPending
}
