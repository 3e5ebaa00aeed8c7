package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lostfound-api/models"
	"lostfound-api/services"
)

// SubmitClaim files a claim on an item: POST /claim/:item_id, form field
// `message`. A repeat submission by the same user is a no-op that surfaces
// an "already claimed" warning.
func SubmitClaim(c *gin.Context) {
	uid, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	claim, err := services.NewClaimService(getDB()).Submit(itemID, uid, c.PostForm("message"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Claim submitted. An administrator will review it.",
		"claim":   claim,
	})
}

// GetMyClaims returns the caller's own claims, newest first.
func GetMyClaims(c *gin.Context) {
	uid, ok := getCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	claims, err := services.NewClaimService(getDB()).ForClaimer(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"claims": claims,
		"total":  len(claims),
	})
}

// GetClaims is the admin queue, optionally filtered by ?status=.
func GetClaims(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", models.ClaimStatusPending, models.ClaimStatusApproved, models.ClaimStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	claims, err := services.NewClaimService(getDB()).List(status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"claims": claims,
		"total":  len(claims),
	})
}

// DecideClaim approves or rejects a claim:
// POST /admin/claims/:id/:action where action is approve or reject.
func DecideClaim(c *gin.Context) {
	claimID, err := strconv.Atoi(c.Param("id"))
	if err != nil || claimID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid claim id"})
		return
	}

	claim, err := services.NewClaimService(getDB()).Decide(claimID, c.Param("action"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Claim " + claim.Status,
		"claim":   claim,
	})
}
