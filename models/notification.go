package models

import "time"

type Notification struct {
	NotificationID int       `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserID         int       `gorm:"column:user_id;index" json:"user_id"`
	Title          string    `gorm:"column:title;size:160" json:"title"`
	Body           string    `gorm:"column:body;type:text" json:"body"`
	IsRead         bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
