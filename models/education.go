// models/education.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

type EducationType string

const (
	EducationHighSchool EducationType = "high_school"
	EducationUniversity EducationType = "university"
)

func (t EducationType) Valid() bool {
	return t == EducationHighSchool || t == EducationUniversity
}

// Grades eligible for the high-school bracket (M.4 = grade 10).
var Grades = []string{"M.4", "M.5", "M.6"}

type HighSchoolDetails struct {
	SchoolName string `json:"schoolName"`
	Grade      string `json:"grade"`
}

type UniversityDetails struct {
	University string `json:"university"`
	Faculty    string `json:"faculty"`
	StudentID  string `json:"studentId,omitempty"`
}

// EducationDetails is a tagged union: exactly one of HighSchool or
// University is set, consistent with Type. The wire and storage format
// is a single flat JSON object keyed by "type", e.g.
// {"type":"high_school","schoolName":"...","grade":"M.5"}.
type EducationDetails struct {
	Type       EducationType
	HighSchool *HighSchoolDetails
	University *UniversityDetails
}

func NewHighSchoolDetails(schoolName, grade string) EducationDetails {
	return EducationDetails{
		Type:       EducationHighSchool,
		HighSchool: &HighSchoolDetails{SchoolName: schoolName, Grade: grade},
	}
}

func NewUniversityDetails(university, faculty, studentID string) EducationDetails {
	return EducationDetails{
		Type:       EducationUniversity,
		University: &UniversityDetails{University: university, Faculty: faculty, StudentID: studentID},
	}
}

// educationDetailsWire is the flat on-the-wire shape shared by both variants.
type educationDetailsWire struct {
	Type       EducationType `json:"type"`
	SchoolName string        `json:"schoolName,omitempty"`
	Grade      string        `json:"grade,omitempty"`
	University string        `json:"university,omitempty"`
	Faculty    string        `json:"faculty,omitempty"`
	StudentID  string        `json:"studentId,omitempty"`
}

func (d EducationDetails) MarshalJSON() ([]byte, error) {
	wire := educationDetailsWire{Type: d.Type}
	switch d.Type {
	case EducationHighSchool:
		if d.HighSchool != nil {
			wire.SchoolName = d.HighSchool.SchoolName
			wire.Grade = d.HighSchool.Grade
		}
	case EducationUniversity:
		if d.University != nil {
			wire.University = d.University.University
			wire.Faculty = d.University.Faculty
			wire.StudentID = d.University.StudentID
		}
	default:
		return nil, fmt.Errorf("unknown education type %q", d.Type)
	}
	return json.Marshal(wire)
}

func (d *EducationDetails) UnmarshalJSON(data []byte) error {
	var wire educationDetailsWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Type {
	case EducationHighSchool:
		*d = NewHighSchoolDetails(wire.SchoolName, wire.Grade)
	case EducationUniversity:
		*d = NewUniversityDetails(wire.University, wire.Faculty, wire.StudentID)
	default:
		return fmt.Errorf("unknown education type %q", wire.Type)
	}
	return nil
}

// Value serializes the union for the education_details text column.
func (d EducationDetails) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *EducationDetails) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), d)
	case []byte:
		return json.Unmarshal(v, d)
	case nil:
		return errors.New("education details is null")
	default:
		return fmt.Errorf("cannot scan education details from %T", value)
	}
}
