// wizard/steps.go - per-step form models and their validation
package wizard

import (
	"aiih/models"
	"aiih/validation"

	"github.com/google/uuid"
)

// FieldErrors maps field name to the first failing reason. An empty map
// means the form is valid.
type FieldErrors map[string]string

// TeamInfoForm is step 1: team name and track.
type TeamInfoForm struct {
	TeamName string
	Track    models.Track
}

func (f TeamInfoForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if reason := validation.Required(f.TeamName); reason != "" {
		errs["teamName"] = "Team name " + reason
	} else if reason := validation.MinLength(f.TeamName, 3); reason != "" {
		errs["teamName"] = "Team name " + reason
	} else if reason := validation.MaxLength(f.TeamName, 50); reason != "" {
		errs["teamName"] = "Team name " + reason
	}
	if !f.Track.Valid() {
		errs["track"] = "Please select a track"
	}
	return errs
}

// TeamLeadForm is step 2: the authenticated user's contact and
// education details. FullName is pre-filled from the session but stays
// editable.
type TeamLeadForm struct {
	FullName         string
	Phone            string
	EducationType    models.EducationType
	EducationDetails models.EducationDetails
}

func (f TeamLeadForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if reason := validation.Required(f.FullName); reason != "" {
		errs["fullName"] = "Full name " + reason
	}
	if reason := validation.ThaiPhone(f.Phone); reason != "" {
		errs["phone"] = "Phone number " + reason
	}
	validateEducation(errs, f.EducationType, f.EducationDetails)
	return errs
}

// MemberEntry is one row of the dynamic members list. The ID keys
// per-entry errors so removing a row also drops its errors.
type MemberEntry struct {
	ID               string
	Name             string
	Phone            string
	EducationType    models.EducationType
	EducationDetails models.EducationDetails
}

func newMemberEntry() MemberEntry {
	return MemberEntry{
		ID:               uuid.NewString(),
		EducationType:    models.EducationUniversity,
		EducationDetails: models.NewUniversityDetails("", "", ""),
	}
}

func (e MemberEntry) validate() FieldErrors {
	errs := FieldErrors{}
	if reason := validation.Required(e.Name); reason != "" {
		errs["name"] = "Name " + reason
	}
	if reason := validation.ThaiPhone(e.Phone); reason != "" {
		errs["phone"] = "Phone " + reason
	}
	validateEducation(errs, e.EducationType, e.EducationDetails)
	return errs
}

func (e MemberEntry) input() models.MemberInput {
	return models.MemberInput{
		Name:             e.Name,
		Phone:            e.Phone,
		EducationType:    e.EducationType,
		EducationDetails: e.EducationDetails,
	}
}

// TeamMembersForm is step 3: 2-4 additional members so the total team
// size stays 3-5 counting the leader.
type TeamMembersForm struct {
	Entries []MemberEntry
	Errors  map[string]FieldErrors
}

const (
	minMemberEntries = models.MinTeamSize - 1
	maxMemberEntries = models.MaxTeamSize - 1
)

func NewTeamMembersForm() *TeamMembersForm {
	f := &TeamMembersForm{Errors: map[string]FieldErrors{}}
	for i := 0; i < minMemberEntries; i++ {
		f.Entries = append(f.Entries, newMemberEntry())
	}
	return f
}

// Add appends an empty entry; no-op once the list is full.
func (f *TeamMembersForm) Add() bool {
	if len(f.Entries) >= maxMemberEntries {
		return false
	}
	f.Entries = append(f.Entries, newMemberEntry())
	return true
}

// Remove deletes the entry and clears its stored errors.
func (f *TeamMembersForm) Remove(id string) bool {
	for i, e := range f.Entries {
		if e.ID == id {
			f.Entries = append(f.Entries[:i], f.Entries[i+1:]...)
			delete(f.Errors, id)
			return true
		}
	}
	return false
}

func (f *TeamMembersForm) Entry(id string) *MemberEntry {
	for i := range f.Entries {
		if f.Entries[i].ID == id {
			return &f.Entries[i]
		}
	}
	return nil
}

// Validate checks every entry independently and stores per-entry
// errors keyed by entry ID.
func (f *TeamMembersForm) Validate() bool {
	f.Errors = map[string]FieldErrors{}
	for _, e := range f.Entries {
		if errs := e.validate(); len(errs) > 0 {
			f.Errors[e.ID] = errs
		}
	}
	return len(f.Errors) == 0
}

func (f *TeamMembersForm) inputs() []models.MemberInput {
	out := make([]models.MemberInput, 0, len(f.Entries))
	for _, e := range f.Entries {
		out = append(out, e.input())
	}
	return out
}

// ConsentForm is step 4: all three agreements must be checked.
type ConsentForm struct {
	models.ConsentRecord
}

func (f ConsentForm) Validate() FieldErrors {
	if !f.All() {
		return FieldErrors{"consent": "Please accept all terms to continue"}
	}
	return FieldErrors{}
}

func validateEducation(errs FieldErrors, typ models.EducationType, details models.EducationDetails) {
	if !typ.Valid() {
		errs["educationType"] = "Education level is required"
		return
	}
	if details.Type != typ {
		errs["educationType"] = "Education details do not match the selected level"
		return
	}
	switch typ {
	case models.EducationHighSchool:
		hs := details.HighSchool
		if hs == nil || validation.Required(hs.SchoolName) != "" {
			errs["schoolName"] = "School name is required"
		}
		if hs == nil || validation.OneOf(hs.Grade, models.Grades...) != "" {
			errs["grade"] = "Grade is required"
		}
	case models.EducationUniversity:
		uni := details.University
		if uni == nil || validation.Required(uni.University) != "" {
			errs["university"] = "University name is required"
		}
		if uni == nil || validation.Required(uni.Faculty) != "" {
			errs["faculty"] = "Faculty is required"
		}
	}
}
