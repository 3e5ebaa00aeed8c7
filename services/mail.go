package services

import (
	"fmt"
	"html/template"
	"log"

	"lostfound-api/config"
	"lostfound-api/models"
)

// emailDecision sends the claim outcome to the claimer. It runs after the
// workflow transaction commits and is best effort only: a send failure is
// logged, never surfaced.
func (s *ClaimService) emailDecision(claimer models.User, item models.Item, status string) {
	if claimer.Email == "" {
		return
	}

	var subject, verdict string
	switch status {
	case models.ClaimStatusApproved:
		subject = "Your claim was approved"
		verdict = "approved. Visit the lost and found office with your student ID to pick it up"
	case models.ClaimStatusRejected:
		subject = "Your claim was rejected"
		verdict = "rejected"
	default:
		return
	}

	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your claim on <strong>%s</strong> was %s.</p>",
		template.HTMLEscapeString(claimer.Name),
		template.HTMLEscapeString(item.Name),
		verdict,
	)
	if err := config.SendMail([]string{claimer.Email}, subject, html); err != nil {
		log.Printf("Warning: Failed to email claim decision to %s: %v", claimer.Email, err)
	}
}
