// models/team_member.go
package models

// TeamMember is one registered person on a team. The leader row carries
// the authenticated user's ID and is_leader=true; ordinary member rows
// have no user account. One-team-per-leader is owned by the unique
// index on teams.leader_id, not by this flag.
type TeamMember struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	TeamID           uint             `json:"team_id" gorm:"not null;index"`
	Team             *Team            `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	UserID           *uint            `json:"user_id,omitempty" gorm:"index"`
	Name             string           `json:"name" gorm:"not null"`
	Phone            string           `json:"phone" gorm:"not null"`
	EducationType    EducationType    `json:"education_type" gorm:"not null;size:20"`
	EducationDetails EducationDetails `json:"education_details" gorm:"type:text;not null"`
	IsLeader         bool             `json:"is_leader" gorm:"default:false"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
