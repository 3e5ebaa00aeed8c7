package services

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"lostfound-api/models"
)

// Catalog sort orders.
const (
	SortDateDesc = "date_desc"
	SortDateAsc  = "date_asc"
	SortCategory = "category"
)

// CatalogService is the browse/search projection over items.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Search returns items matching the free-text query and category filter,
// in the requested order, with categories loaded. The result is
// materialized once per call; there is no pagination.
//
// text matches name, description or location_found case-insensitively.
// category is the raw query value; empty, "all", or anything non-numeric
// means no category filter. Unknown sort values fall back to newest-first.
func (s *CatalogService) Search(text, category, sort string) ([]models.Item, error) {
	q := s.db.Model(&models.Item{}).Preload("Category")

	if text = strings.TrimSpace(text); text != "" {
		pattern := "%" + strings.ToLower(text) + "%"
		q = q.Where(
			"LOWER(items.name) LIKE ? OR LOWER(items.description) LIKE ? OR LOWER(items.location_found) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if id := parseCategoryFilter(category); id > 0 {
		q = q.Where("items.category_id = ?", id)
	}

	switch sort {
	case SortDateAsc:
		q = q.Order("items.date_found ASC")
	case SortCategory:
		q = q.Joins("JOIN categories ON categories.category_id = items.category_id").
			Order("categories.name ASC").
			Order("items.date_found DESC")
	default: // SortDateDesc
		q = q.Order("items.date_found DESC")
	}

	var items []models.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func parseCategoryFilter(category string) int {
	category = strings.TrimSpace(strings.ToLower(category))
	if category == "" || category == "all" {
		return 0
	}
	id, err := strconv.Atoi(category)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
