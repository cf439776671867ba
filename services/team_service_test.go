package services

import (
	"testing"
	"time"

	"aiih/models"
	"aiih/registration"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func openGate() registration.Gate {
	opens := time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC)
	return registration.Gate{
		OpensAt:  opens,
		ClosesAt: opens.Add(7 * 24 * time.Hour),
		Now:      func() time.Time { return opens.Add(24 * time.Hour) },
	}
}

func closedGate() registration.Gate {
	g := openGate()
	g.Now = func() time.Time { return g.ClosesAt.Add(24 * time.Hour) }
	return g
}

func setupService(t *testing.T, gate registration.Gate) (*TeamService, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamService(db, gate, nil), mock
}

func validInput(memberCount int) models.CreateTeamInput {
	members := make([]models.MemberInput, 0, memberCount)
	for i := 0; i < memberCount; i++ {
		members = append(members, models.MemberInput{
			Name:             "Member",
			Phone:            "0812345678",
			EducationType:    models.EducationHighSchool,
			EducationDetails: models.NewHighSchoolDetails("Triam Udom", "M.6"),
		})
	}
	return models.CreateTeamInput{
		TeamName:       "Neural Farmers",
		Track:          models.TrackAgroMedicine,
		LeaderFullName: "Somchai Jaidee",
		LeaderProfile: models.LeaderProfile{
			Phone:            "081-234-5678",
			EducationType:    models.EducationUniversity,
			EducationDetails: models.NewUniversityDetails("Kasetsart University", "Science", ""),
		},
		Members: members,
	}
}

func expectLeaderCount(mock sqlmock.Sqlmock, count int64) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teams"`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestCreateTeamValidation(t *testing.T) {
	svc, _ := setupService(t, openGate())

	t.Run("team name too short", func(t *testing.T) {
		input := validInput(2)
		input.TeamName = "ab"
		_, err := svc.CreateTeam(1, "lead@ku.th", input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "teamName", verr.Field)
	})

	t.Run("unknown track", func(t *testing.T) {
		input := validInput(2)
		input.Track = "robotics"
		_, err := svc.CreateTeam(1, "lead@ku.th", input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "track", verr.Field)
	})

	t.Run("member phone invalid", func(t *testing.T) {
		input := validInput(2)
		input.Members[1].Phone = "12345"
		_, err := svc.CreateTeam(1, "lead@ku.th", input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "members[1].phone", verr.Field)
	})

	t.Run("education details mismatch", func(t *testing.T) {
		input := validInput(2)
		input.Members[0].EducationType = models.EducationUniversity
		_, err := svc.CreateTeam(1, "lead@ku.th", input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "members[0].educationDetails", verr.Field)
	})

	t.Run("grade outside allowed set", func(t *testing.T) {
		input := validInput(2)
		input.Members[0].EducationDetails = models.NewHighSchoolDetails("Triam Udom", "M.3")
		_, err := svc.CreateTeam(1, "lead@ku.th", input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "members[0].educationDetails.grade", verr.Field)
	})
}

func TestCreateTeamWindowClosed(t *testing.T) {
	svc, _ := setupService(t, closedGate())

	_, err := svc.CreateTeam(1, "lead@ku.th", validInput(2))
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestCreateTeamSizeBounds(t *testing.T) {
	// 1 extra member = 2 total, 5 extra = 6 total: both out of bounds.
	for _, memberCount := range []int{1, 5} {
		svc, mock := setupService(t, openGate())
		expectLeaderCount(mock, 0)

		_, err := svc.CreateTeam(1, "lead@ku.th", validInput(memberCount))
		assert.ErrorIs(t, err, ErrInvalidTeamSize)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestCreateTeamDuplicate(t *testing.T) {
	svc, mock := setupService(t, openGate())
	expectLeaderCount(mock, 1)

	_, err := svc.CreateTeam(1, "lead@ku.th", validInput(2))
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamSuccess(t *testing.T) {
	svc, mock := setupService(t, openGate())
	expectLeaderCount(mock, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	// Leader row first, then the two members.
	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`INSERT INTO "team_members"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
	}
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	team, err := svc.CreateTeam(1, "lead@ku.th", validInput(2))
	require.NoError(t, err)
	assert.Equal(t, uint(7), team.ID)
	assert.Equal(t, models.TeamStatusRegistered, team.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamRaceLosesToUniqueIndex(t *testing.T) {
	// Two requests race past the advisory pre-check; the loser trips
	// the unique index on teams.leader_id and must surface as a
	// duplicate, not a generic failure.
	svc, mock := setupService(t, openGate())
	expectLeaderCount(mock, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_teams_leader"})
	mock.ExpectRollback()

	_, err := svc.CreateTeam(1, "lead@ku.th", validInput(2))
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamPersistenceFailure(t *testing.T) {
	svc, mock := setupService(t, openGate())
	expectLeaderCount(mock, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.CreateTeam(1, "lead@ku.th", validInput(2))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateRegistration)
}

func TestIsRegistered(t *testing.T) {
	svc, mock := setupService(t, openGate())

	expectLeaderCount(mock, 0)
	registered, err := svc.IsRegistered(1)
	require.NoError(t, err)
	assert.False(t, registered)

	expectLeaderCount(mock, 1)
	registered, err = svc.IsRegistered(1)
	require.NoError(t, err)
	assert.True(t, registered)
}

func TestGetUserTeamNotFound(t *testing.T) {
	svc, mock := setupService(t, openGate())

	mock.ExpectQuery(`SELECT \* FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := svc.GetUserTeam(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
