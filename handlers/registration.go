// handlers/registration.go - registration window and landing page data
package handlers

import (
	"time"

	"aiih/registration"

	"github.com/gofiber/fiber/v2"
)

var gate registration.Gate

// InitRegistrationHandlers wires the window gate used by the status
// endpoint.
func InitRegistrationHandlers(g registration.Gate) {
	gate = g
}

// GetRegistrationStatus reports whether the registration window is
// open right now.
// GET /api/registration/status
func GetRegistrationStatus(c *fiber.Ctx) error {
	status := gate.Status()
	return c.JSON(fiber.Map{
		"isAvailable":           status.IsAvailable,
		"isOpened":              status.IsOpened,
		"phase":                 status.Phase,
		"registrationOpenDate":  status.OpensAt.Format(time.RFC3339),
		"registrationCloseDate": status.ClosesAt.Format(time.RFC3339),
		"now":                   status.Now.UTC().Format(time.RFC3339),
	})
}

// GetChallengeInfo serves the fixed event data the landing page renders.
// GET /api/challenge
func GetChallengeInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        registration.ChallengeName,
		"headline":    registration.ChallengeHeadline,
		"tracks":      registration.Tracks,
		"prizes":      registration.Prizes,
		"timeline":    registration.Timeline,
		"eligibility": registration.EligibilityRules,
		"contact": fiber.Map{
			"email": registration.ContactEmail,
			"phone": registration.ContactPhone,
		},
	})
}
