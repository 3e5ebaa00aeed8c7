package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lostfound-api/config"
	"lostfound-api/models"
	"lostfound-api/services"
	"lostfound-api/utils"
)

// ReportItem registers a found item. Accepts a multipart form so an
// optional photo can ride along with the text fields.
func ReportItem(c *gin.Context) {
	uid, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	categoryID, _ := strconv.Atoi(c.PostForm("category_id"))
	input := services.CreateItemInput{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		CategoryID:    categoryID,
		LocationFound: c.PostForm("location_found"),
		DateFound:     c.PostForm("date_found"),
		ReportedBy:    uid,
	}

	// Photo is optional; a rejected upload fails the whole report so the
	// reporter can fix it rather than end up with a photo-less listing.
	if file, err := c.FormFile("photo"); err == nil {
		if file.Size > utils.MaxPhotoBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Photo exceeds the 8 MB limit"})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
			return
		}
		defer src.Close()

		name, err := utils.SavePhoto(src, config.UploadPath())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input.PhotoPath = name
	}

	item, err := services.NewItemService(getDB()).Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item reported successfully",
		"item":    item,
	})
}

// GetItem returns a single item with its category.
func GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	item, err := services.NewItemService(getDB()).GetWithCategory(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// ListItems is the public feed: every item, newest first, plain JSON.
func ListItems(c *gin.Context) {
	var items []models.Item
	if err := getDB().Preload("Category").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// SetItemStatus lets an admin move an item to any status in the allowed
// set (form field `status`). No transition-graph check beyond membership.
func SetItemStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	status := c.PostForm("status")
	item, err := services.NewItemService(getDB()).SetStatus(id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item status updated",
		"item":    item,
	})
}

// GetItemClaims returns the claims filed against an item (admin view).
func GetItemClaims(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	claims, err := services.NewItemService(getDB()).ClaimsForItem(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"claims": claims,
		"total":  len(claims),
	})
}
