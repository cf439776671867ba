// handlers/teams.go - team registration HTTP handlers
package handlers

import (
	"errors"
	"log"

	"aiih/database"
	"aiih/middleware"
	"aiih/models"
	"aiih/registration"
	"aiih/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var teamService *services.TeamService

// InitTeamHandlers initializes the team service
func InitTeamHandlers(gate registration.Gate, mailer *services.EmailService) {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitTeamHandlers")
	}
	teamService = services.NewTeamService(db, gate, mailer)
}

// CreateTeam submits a complete registration payload.
// POST /api/team/create
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var input models.CreateTeamInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	team, err := teamService.CreateTeam(userID, middleware.GetUserEmail(c), input)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(400).JSON(fiber.Map{"error": verr.Error()})
		case errors.Is(err, services.ErrDuplicateRegistration),
			errors.Is(err, services.ErrInvalidTeamSize),
			errors.Is(err, services.ErrRegistrationClosed):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("Create team error: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teamId":  team.ID,
	})
}

// CheckRegistration reports whether the caller already leads a team.
// Unauthenticated callers get false, not 401.
// GET /api/team/check-registration
func CheckRegistration(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.JSON(fiber.Map{"isRegistered": false})
	}

	registered, err := teamService.IsRegistered(userID)
	if err != nil {
		log.Printf("Check registration error: %v", err)
		return c.JSON(fiber.Map{"isRegistered": false})
	}

	return c.JSON(fiber.Map{"isRegistered": registered})
}

// GetTeam returns the caller's team with members, plus their profile.
// GET /api/team/get
func GetTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	team, profile, err := teamService.GetUserTeam(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Team not found"})
		}
		log.Printf("Get team error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	resp := fiber.Map{"team": team}
	if profile != nil {
		resp["profile"] = profile
	}
	return c.JSON(resp)
}
