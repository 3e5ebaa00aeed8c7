package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"lostfound-api/models"
)

// Claim decision actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// maxClaimMessageLen caps the claimer's message, in runes.
const maxClaimMessageLen = 1000

// Notification titles emitted by the workflow.
const (
	titleNewClaim      = "New Claim Request"
	titleClaimApproved = "Claim Approved"
	titleClaimRejected = "Claim Rejected"
)

// ClaimService runs the claim lifecycle: pending -> approved | rejected.
// Every operation executes as a single transaction; a failed call leaves
// all rows untouched.
type ClaimService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewClaimService(db *gorm.DB) *ClaimService {
	return &ClaimService{
		db:            db,
		notifications: NewNotificationService(db),
	}
}

// Submit files a pending claim on an item and notifies every active admin.
// The item must still be in status "found". A second claim by the same user
// on the same item returns ErrDuplicateClaim and writes nothing; the unique
// index on (item_id, claimer_id) backs the in-transaction check so two
// concurrent submits cannot both insert.
func (s *ClaimService) Submit(itemID, claimerID int, message string) (*models.Claim, error) {
	message = truncateRunes(message, maxClaimMessageLen)

	var claim models.Claim
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, "item_id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if item.Status != models.ItemStatusFound {
			return ErrNotClaimable
		}

		var count int64
		if err := tx.Model(&models.Claim{}).
			Where("item_id = ? AND claimer_id = ?", itemID, claimerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateClaim
		}

		claim = models.Claim{
			ItemID:    itemID,
			ClaimerID: claimerID,
			Message:   message,
			Status:    models.ClaimStatusPending,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&claim).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateClaim
			}
			return err
		}

		var admins []models.User
		if err := tx.Where("role = ? AND is_active = ?", models.RoleAdmin, true).
			Find(&admins).Error; err != nil {
			return err
		}
		body := fmt.Sprintf("A new claim was filed on %q (claim #%d).", item.Name, claim.ClaimID)
		for _, admin := range admins {
			if err := s.notifications.Notify(tx, admin.UserID, titleNewClaim, body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// Decide approves or rejects a pending claim. Approving also moves the
// item to "claimed" regardless of its current status; rejecting leaves the
// item untouched. Competing pending claims on the same item stay pending.
// Either way the claimer gets an in-app notification in the same
// transaction, and a best-effort email afterwards.
func (s *ClaimService) Decide(claimID int, action string) (*models.Claim, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, ErrInvalidAction
	}

	var (
		claim   models.Claim
		item    models.Item
		claimer models.User
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&claim, "claim_id = ?", claimID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if claim.Decided() {
			return ErrAlreadyDecided
		}

		if err := tx.First(&item, "item_id = ?", claim.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var title, body string
		switch action {
		case ActionApprove:
			if err := tx.Model(&models.Claim{}).
				Where("claim_id = ?", claimID).
				Update("status", models.ClaimStatusApproved).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Item{}).
				Where("item_id = ?", claim.ItemID).
				Update("status", models.ItemStatusClaimed).Error; err != nil {
				return err
			}
			claim.Status = models.ClaimStatusApproved
			item.Status = models.ItemStatusClaimed
			title = titleClaimApproved
			body = fmt.Sprintf("Your claim on %q was approved. Visit the office to pick it up.", item.Name)
		case ActionReject:
			if err := tx.Model(&models.Claim{}).
				Where("claim_id = ?", claimID).
				Update("status", models.ClaimStatusRejected).Error; err != nil {
				return err
			}
			claim.Status = models.ClaimStatusRejected
			title = titleClaimRejected
			body = fmt.Sprintf("Your claim on %q was rejected.", item.Name)
		}

		if err := s.notifications.Notify(tx, claim.ClaimerID, title, body); err != nil {
			return err
		}

		// Loaded here so the post-commit email needs no extra round trip.
		// A missing claimer row only suppresses the email.
		_ = tx.First(&claimer, "user_id = ?", claim.ClaimerID).Error
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emailDecision(claimer, item, claim.Status)
	return &claim, nil
}

// List returns claims for the admin queue, newest first, optionally
// filtered by status, with item and claimer loaded.
func (s *ClaimService) List(status string) ([]models.Claim, error) {
	q := s.db.Preload("Item").Preload("Claimer")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var claims []models.Claim
	if err := q.Order("created_at DESC").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

// ForClaimer returns a user's own claims, newest first, with items loaded.
func (s *ClaimService) ForClaimer(claimerID int) ([]models.Claim, error) {
	var claims []models.Claim
	if err := s.db.Preload("Item").
		Where("claimer_id = ?", claimerID).
		Order("created_at DESC").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
