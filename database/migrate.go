// database/migrate.go - registration schema migrations
package database

import (
	"log"

	"aiih/models"

	"gorm.io/gorm"
)

// RunMigrations creates the registration tables and indexes.
func RunMigrations() {
	log.Println("Running registration migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Profile{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := createRegistrationIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("✅ Registration migrations completed successfully")
}

func createRegistrationIndexes(db *gorm.DB) error {
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_status ON teams(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team ON team_members(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_user ON team_members(user_id)")

	// One team per leader, enforced in the database so two racing
	// submissions cannot both commit. The application pre-check alone
	// would be check-then-insert and race-prone. AutoMigrate already
	// creates this via the uniqueIndex tag; kept explicit for
	// databases migrated before the tag existed.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_leader ON teams(leader_id)",
	).Error
}
