package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"aiih/models"
	"aiih/registration"
	"aiih/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func teamApp(t *testing.T, gate registration.Gate, authed bool) (*fiber.App, sqlmock.Sqlmock) {
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

	teamService = services.NewTeamService(db, gate, nil)

	app := fiber.New()
	if authed {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userId", float64(1))
			c.Locals("email", "lead@ku.th")
			return c.Next()
		})
	}
	app.Post("/api/team/create", CreateTeam)
	app.Get("/api/team/check-registration", CheckRegistration)
	return app, mock
}

func teamGate(open bool) registration.Gate {
	opens := time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC)
	now := opens.Add(24 * time.Hour)
	if !open {
		now = opens.Add(30 * 24 * time.Hour)
	}
	return registration.Gate{
		OpensAt:  opens,
		ClosesAt: opens.Add(7 * 24 * time.Hour),
		Now:      func() time.Time { return now },
	}
}

func teamPayload(t *testing.T, mutate func(*models.CreateTeamInput)) *bytes.Reader {
	t.Helper()
	input := models.CreateTeamInput{
		TeamName:       "Neural Farmers",
		Track:          models.TrackAgroMedicine,
		LeaderFullName: "Somchai Jaidee",
		LeaderProfile: models.LeaderProfile{
			Phone:            "0812345678",
			EducationType:    models.EducationUniversity,
			EducationDetails: models.NewUniversityDetails("Kasetsart University", "Science", ""),
		},
		Members: []models.MemberInput{
			{
				Name:             "Member One",
				Phone:            "0812345671",
				EducationType:    models.EducationHighSchool,
				EducationDetails: models.NewHighSchoolDetails("Triam Udom", "M.6"),
			},
			{
				Name:             "Member Two",
				Phone:            "0812345672",
				EducationType:    models.EducationHighSchool,
				EducationDetails: models.NewHighSchoolDetails("Triam Udom", "M.5"),
			},
		},
	}
	if mutate != nil {
		mutate(&input)
	}
	body, err := json.Marshal(input)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func postCreate(t *testing.T, app *fiber.App, body *bytes.Reader) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/team/create", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestCreateTeamHandlerUnauthorized(t *testing.T) {
	app, _ := teamApp(t, teamGate(true), false)

	status, body := postCreate(t, app, teamPayload(t, nil))
	assert.Equal(t, 401, status)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestCreateTeamHandlerBadBody(t *testing.T) {
	app, _ := teamApp(t, teamGate(true), true)

	req := httptest.NewRequest("POST", "/api/team/create", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateTeamHandlerValidationError(t *testing.T) {
	app, _ := teamApp(t, teamGate(true), true)

	status, body := postCreate(t, app, teamPayload(t, func(in *models.CreateTeamInput) {
		in.TeamName = "ab"
	}))
	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "teamName")
}

func TestCreateTeamHandlerWindowClosed(t *testing.T) {
	app, _ := teamApp(t, teamGate(false), true)

	status, body := postCreate(t, app, teamPayload(t, nil))
	assert.Equal(t, 400, status)
	assert.Equal(t, "Registration is not open", body["error"])
}

func TestCreateTeamHandlerDuplicate(t *testing.T) {
	app, mock := teamApp(t, teamGate(true), true)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teams"`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	status, body := postCreate(t, app, teamPayload(t, nil))
	assert.Equal(t, 400, status)
	assert.Equal(t, "You already have a team", body["error"])
}

func TestCreateTeamHandlerInvalidSize(t *testing.T) {
	app, mock := teamApp(t, teamGate(true), true)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teams"`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	status, body := postCreate(t, app, teamPayload(t, func(in *models.CreateTeamInput) {
		in.Members = in.Members[:1]
	}))
	assert.Equal(t, 400, status)
	assert.Equal(t, "Team must have 3-5 members", body["error"])
}

func TestCreateTeamHandlerPersistenceFailure(t *testing.T) {
	app, mock := teamApp(t, teamGate(true), true)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teams"`).
		WithArgs(1).
		WillReturnError(assert.AnError)

	status, body := postCreate(t, app, teamPayload(t, nil))
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestCreateTeamHandlerSuccess(t *testing.T) {
	app, mock := teamApp(t, teamGate(true), true)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teams"`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`INSERT INTO "team_members"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
	}
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	status, body := postCreate(t, app, teamPayload(t, nil))
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(7), body["teamId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRegistrationHandlerUnauthenticated(t *testing.T) {
	// Unauthenticated callers get false, not 401.
	app, _ := teamApp(t, teamGate(true), false)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/team/check-registration", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["isRegistered"])
}
