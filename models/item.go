package models

import "time"

// Item statuses. Persisted as plain strings, never anything outside this set.
const (
	ItemStatusFound    = "found"
	ItemStatusClaimed  = "claimed"
	ItemStatusReturned = "returned"
)

type Item struct {
	ItemID        int       `gorm:"primaryKey;column:item_id" json:"item_id"`
	Name          string    `gorm:"column:name;size:140" json:"name"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	CategoryID    int       `gorm:"column:category_id" json:"category_id"`
	LocationFound string    `gorm:"column:location_found;size:140" json:"location_found"`
	DateFound     time.Time `gorm:"column:date_found" json:"date_found"`
	PhotoPath     string    `gorm:"column:photo_path;size:255" json:"photo_path,omitempty"`
	ReportedBy    int       `gorm:"column:reported_by" json:"reported_by"`
	Status        string    `gorm:"column:status;size:20;default:found" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Reporter User     `gorm:"foreignKey:ReportedBy" json:"reporter,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

// ValidItemStatus reports whether s is one of the persistable item statuses.
func ValidItemStatus(s string) bool {
	switch s {
	case ItemStatusFound, ItemStatusClaimed, ItemStatusReturned:
		return true
	}
	return false
}
