// models/team.go
package models

import "time"

type Track string

const (
	TrackAgroMedicine  Track = "agro_medicine"
	TrackBioinnovation Track = "bioinnovation"
)

func (t Track) Valid() bool {
	return t == TrackAgroMedicine || t == TrackBioinnovation
}

type TeamStatus string

const (
	TeamStatusRegistered TeamStatus = "registered"
	TeamStatusSubmitted  TeamStatus = "submitted"
	TeamStatusFinalized  TeamStatus = "finalized"
)

type Team struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"not null;size:50"`
	Track     Track        `json:"track" gorm:"not null;size:20"`
	LeaderID  uint         `json:"leader_id" gorm:"uniqueIndex;not null"`
	Status    TeamStatus   `json:"status" gorm:"not null;default:'registered';size:20"`
	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt time.Time    `json:"created_at"`
}

func (Team) TableName() string {
	return "teams"
}
