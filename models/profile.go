// models/profile.go
package models

import "time"

// Profile is the leader's own contact and education snapshot, keyed by
// user. Written once at registration alongside the team rows.
type Profile struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	UserID           uint             `json:"user_id" gorm:"uniqueIndex;not null"`
	Phone            string           `json:"phone" gorm:"not null"`
	EducationType    EducationType    `json:"education_type" gorm:"not null;size:20"`
	EducationDetails EducationDetails `json:"education_details" gorm:"type:text;not null"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
