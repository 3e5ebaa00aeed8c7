package services

import (
	"time"

	"gorm.io/gorm"

	"lostfound-api/models"
)

// NotificationService is the in-app message sink. Rows are append-only
// except for the is_read flag.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify appends a notification for a user. Pass the caller's transaction
// handle as tx to make the insert part of a larger atomic unit; pass nil
// to write directly.
func (s *NotificationService) Notify(tx *gorm.DB, userID int, title, body string) error {
	if tx == nil {
		tx = s.db
	}
	n := models.Notification{
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	return tx.Create(&n).Error
}

// MarkAllRead returns every notification for the user, newest first, and
// flips is_read on the unread ones as part of the same read. The select
// and the update run in one transaction so concurrent views for the same
// user cannot lose the flip.
func (s *NotificationService) MarkAllRead(userID int) ([]models.Notification, error) {
	var notifications []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&notifications).Error; err != nil {
			return err
		}
		return tx.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).
			Update("is_read", true).Error
	})
	if err != nil {
		return nil, err
	}

	for i := range notifications {
		notifications[i].IsRead = true
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(userID int) (int64, error) {
	var n int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}
