package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"lostfound-api/models"
)

// ItemService owns found-item records and their status.
type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItemInput carries the report-item form fields. DateFound is the
// raw form value in YYYY-MM-DD format.
type CreateItemInput struct {
	Name          string
	Description   string
	CategoryID    int
	LocationFound string
	DateFound     string
	PhotoPath     string
	ReportedBy    int
}

// Create validates the input and registers a new item with status "found".
func (s *ItemService) Create(in CreateItemInput) (*models.Item, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	location := strings.TrimSpace(in.LocationFound)

	if name == "" {
		return nil, newValidationError("name", "is required")
	}
	if description == "" {
		return nil, newValidationError("description", "is required")
	}
	if location == "" {
		return nil, newValidationError("location_found", "is required")
	}
	if in.CategoryID <= 0 {
		return nil, newValidationError("category_id", "is required")
	}

	dateFound, err := time.Parse("2006-01-02", strings.TrimSpace(in.DateFound))
	if err != nil {
		return nil, newValidationError("date_found", "must be a valid date (YYYY-MM-DD)")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("category_id = ?", in.CategoryID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, newValidationError("category_id", "unknown category")
	}

	item := models.Item{
		Name:          name,
		Description:   description,
		CategoryID:    in.CategoryID,
		LocationFound: location,
		DateFound:     dateFound,
		PhotoPath:     strings.TrimSpace(in.PhotoPath),
		ReportedBy:    in.ReportedBy,
		Status:        models.ItemStatusFound,
		CreatedAt:     time.Now(),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Get returns the bare item row.
func (s *ItemService) Get(id int) (*models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, "item_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetWithCategory returns the item with its category eagerly loaded.
func (s *ItemService) GetWithCategory(id int) (*models.Item, error) {
	var item models.Item
	if err := s.db.Preload("Category").
		First(&item, "item_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ClaimsForItem returns all claims filed against an item, newest first,
// with the claimer loaded.
func (s *ItemService) ClaimsForItem(itemID int) ([]models.Claim, error) {
	var claims []models.Claim
	if err := s.db.Preload("Claimer").
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

// SetStatus moves an item to any status in the allowed set. The transition
// graph is deliberately not enforced here (claimed -> found is accepted);
// approval is the only path that sets "claimed" automatically.
func (s *ItemService) SetStatus(id int, status string) (*models.Item, error) {
	if !models.ValidItemStatus(status) {
		return nil, ErrInvalidTransition
	}

	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Item{}).
		Where("item_id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	item.Status = status
	return item, nil
}
