// services/team_service.go - team registration business logic
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"aiih/models"
	"aiih/registration"
	"aiih/validation"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateRegistration = errors.New("You already have a team")
	ErrInvalidTeamSize       = errors.New("Team must have 3-5 members")
	ErrRegistrationClosed    = errors.New("Registration is not open")
)

// ValidationError names the first failing field of a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type TeamService struct {
	db     *gorm.DB
	gate   registration.Gate
	mailer *EmailService
}

func NewTeamService(db *gorm.DB, gate registration.Gate, mailer *EmailService) *TeamService {
	return &TeamService{db: db, gate: gate, mailer: mailer}
}

// CreateTeam runs the full submission pipeline for an authenticated
// leader: re-validate every field, enforce the one-team-per-leader and
// team-size invariants, then persist team, leader row, member rows and
// the leader profile as one transaction. A registration email goes out
// fire-and-forget on success.
//
// The duplicate pre-check is advisory; two racing submissions are
// resolved by the unique index on teams.leader_id, whose violation is
// mapped back to ErrDuplicateRegistration.
func (s *TeamService) CreateTeam(userID uint, leaderEmail string, input models.CreateTeamInput) (*models.Team, error) {
	if verr := ValidateCreateTeam(input); verr != nil {
		return nil, verr
	}

	if !s.gate.Status().IsAvailable {
		return nil, ErrRegistrationClosed
	}

	registered, err := s.IsRegistered(userID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrDuplicateRegistration
	}

	if n := input.TeamSize(); n < models.MinTeamSize || n > models.MaxTeamSize {
		return nil, ErrInvalidTeamSize
	}

	team := &models.Team{
		Name:      input.TeamName,
		Track:     input.Track,
		LeaderID:  userID,
		Status:    models.TeamStatusRegistered,
		CreatedAt: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		leaderID := userID
		leader := &models.TeamMember{
			TeamID:           team.ID,
			UserID:           &leaderID,
			Name:             input.LeaderFullName,
			Phone:            validation.NormalizePhone(input.LeaderProfile.Phone),
			EducationType:    input.LeaderProfile.EducationType,
			EducationDetails: input.LeaderProfile.EducationDetails,
			IsLeader:         true,
		}
		if err := tx.Create(leader).Error; err != nil {
			return err
		}

		for _, m := range input.Members {
			member := &models.TeamMember{
				TeamID:           team.ID,
				Name:             m.Name,
				Phone:            validation.NormalizePhone(m.Phone),
				EducationType:    m.EducationType,
				EducationDetails: m.EducationDetails,
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}

		profile := &models.Profile{
			UserID:           userID,
			Phone:            validation.NormalizePhone(input.LeaderProfile.Phone),
			EducationType:    input.LeaderProfile.EducationType,
			EducationDetails: input.LeaderProfile.EducationDetails,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(profile).Error
	})

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRegistration
		}
		return nil, err
	}

	s.sendRegistrationEmail(leaderEmail, input.TeamName, input.LeaderFullName, input.TeamSize())

	return team, nil
}

// IsRegistered reports whether the user already leads a team.
func (s *TeamService) IsRegistered(userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Team{}).
		Where("leader_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// GetUserTeam returns the team the user leads with members preloaded,
// plus their profile when one exists.
func (s *TeamService) GetUserTeam(userID uint) (*models.Team, *models.Profile, error) {
	var team models.Team
	err := s.db.Where("leader_id = ?", userID).
		Preload("Members").
		First(&team).Error
	if err != nil {
		return nil, nil, err
	}

	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &team, nil, nil
		}
		return nil, nil, err
	}

	return &team, &profile, nil
}

func (s *TeamService) sendRegistrationEmail(to, teamName, leaderName string, memberCount int) {
	if to == "" || s.mailer == nil {
		return
	}
	// Best effort: a failed notification must never fail the request.
	go func() {
		if err := s.mailer.SendTeamRegistration(to, teamName, leaderName, memberCount); err != nil {
			log.Printf("Failed to send registration email to %s: %v", to, err)
		}
	}()
}

// ValidateCreateTeam re-runs every field rule server-side and reports
// the first violation. Client validation is never trusted.
func ValidateCreateTeam(input models.CreateTeamInput) *ValidationError {
	if reason := validation.Required(input.TeamName); reason != "" {
		return &ValidationError{Field: "teamName", Reason: reason}
	}
	if reason := validation.MinLength(input.TeamName, 3); reason != "" {
		return &ValidationError{Field: "teamName", Reason: reason}
	}
	if reason := validation.MaxLength(input.TeamName, 50); reason != "" {
		return &ValidationError{Field: "teamName", Reason: reason}
	}
	if !input.Track.Valid() {
		return &ValidationError{Field: "track", Reason: "must be agro_medicine or bioinnovation"}
	}
	if reason := validation.Required(input.LeaderFullName); reason != "" {
		return &ValidationError{Field: "leaderFullName", Reason: reason}
	}
	if verr := validateProfileFields("leaderProfile", input.LeaderProfile.Phone,
		input.LeaderProfile.EducationType, input.LeaderProfile.EducationDetails); verr != nil {
		return verr
	}
	for i, m := range input.Members {
		prefix := fmt.Sprintf("members[%d]", i)
		if reason := validation.Required(m.Name); reason != "" {
			return &ValidationError{Field: prefix + ".name", Reason: reason}
		}
		if verr := validateProfileFields(prefix, m.Phone, m.EducationType, m.EducationDetails); verr != nil {
			return verr
		}
	}
	return nil
}

func validateProfileFields(prefix, phone string, typ models.EducationType, details models.EducationDetails) *ValidationError {
	if reason := validation.ThaiPhone(phone); reason != "" {
		return &ValidationError{Field: prefix + ".phone", Reason: reason}
	}
	if !typ.Valid() {
		return &ValidationError{Field: prefix + ".educationType", Reason: "must be high_school or university"}
	}
	if details.Type != typ {
		return &ValidationError{Field: prefix + ".educationDetails", Reason: "does not match the education type"}
	}
	switch typ {
	case models.EducationHighSchool:
		hs := details.HighSchool
		if hs == nil || validation.Required(hs.SchoolName) != "" {
			return &ValidationError{Field: prefix + ".educationDetails.schoolName", Reason: "is required"}
		}
		if validation.OneOf(hs.Grade, models.Grades...) != "" {
			return &ValidationError{Field: prefix + ".educationDetails.grade", Reason: "must be M.4, M.5 or M.6"}
		}
	case models.EducationUniversity:
		uni := details.University
		if uni == nil || validation.Required(uni.University) != "" {
			return &ValidationError{Field: prefix + ".educationDetails.university", Reason: "is required"}
		}
		if validation.Required(uni.Faculty) != "" {
			return &ValidationError{Field: prefix + ".educationDetails.faculty", Reason: "is required"}
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
