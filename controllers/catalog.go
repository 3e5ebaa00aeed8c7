package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lostfound-api/services"
)

// BrowseItems is the catalog search: GET /browse?q=&category=&sort=
func BrowseItems(c *gin.Context) {
	items, err := services.NewCatalogService(getDB()).Search(
		c.Query("q"),
		c.Query("category"),
		c.Query("sort"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}
