// models/input.go - registration payload shapes shared by the wizard
// and the submission service
package models

// TeamInfo is the first wizard step: team name and competition track.
// Immutable once submitted.
type TeamInfo struct {
	TeamName string `json:"teamName"`
	Track    Track  `json:"track"`
}

// LeaderProfile is the leader's contact and education info. Name and
// email come from the authenticated session, not from this struct.
type LeaderProfile struct {
	Phone            string           `json:"phone"`
	EducationType    EducationType    `json:"educationType"`
	EducationDetails EducationDetails `json:"educationDetails"`
}

type MemberInput struct {
	Name             string           `json:"name"`
	Phone            string           `json:"phone"`
	EducationType    EducationType    `json:"educationType"`
	EducationDetails EducationDetails `json:"educationDetails"`
}

// ConsentRecord holds the three independent agreement flags. All three
// must be set before the wizard allows proceeding to the summary.
type ConsentRecord struct {
	Rules bool `json:"rules"`
	Photo bool `json:"photo"`
	Data  bool `json:"data"`
}

func (c ConsentRecord) All() bool {
	return c.Rules && c.Photo && c.Data
}

// CreateTeamInput is the full submission payload sent to the
// team-create endpoint.
type CreateTeamInput struct {
	TeamName       string        `json:"teamName"`
	Track          Track         `json:"track"`
	LeaderFullName string        `json:"leaderFullName"`
	LeaderProfile  LeaderProfile `json:"leaderProfile"`
	Members        []MemberInput `json:"members"`
}

// TeamSize is the total head count including the leader.
func (in CreateTeamInput) TeamSize() int {
	return len(in.Members) + 1
}

const (
	MinTeamSize = 3
	MaxTeamSize = 5
)
