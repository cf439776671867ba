// wizard/wizard.go - the multi-step registration state machine.
//
// Steps run teamInfo -> teamLead -> teamMembers -> consent -> summary.
// Each completed step's validated data is kept in the wizard, so
// navigating backward and forward again re-populates the forms. The
// machine holds nothing beyond the current step, one nullable data
// slot per step, and the in-flight/error flags for the final submit.
// One Wizard is constructed per registration session; there are no
// package-level singletons.
package wizard

import (
	"errors"

	"aiih/models"
)

type Step int

const (
	StepTeamInfo Step = iota
	StepTeamLead
	StepTeamMembers
	StepConsent
	StepSummary
)

var stepNames = [...]string{"teamInfo", "teamLead", "teamMembers", "consent", "summary"}

func (s Step) String() string {
	if s < StepTeamInfo || s > StepSummary {
		return "unknown"
	}
	return stepNames[s]
}

var (
	ErrTooFewMembers  = errors.New("you need at least 2 team members (3-5 total including team lead)")
	ErrTooManyMembers = errors.New("you can have at most 4 team members (3-5 total including team lead)")
	ErrInvalidMembers = errors.New("one or more members have invalid fields")
	ErrIncomplete     = errors.New("registration is incomplete")
	ErrSubmitting     = errors.New("submission already in flight")
	ErrTeamSize       = errors.New("team must have 3-5 members")
)

// Identity is what the auth session supplies about the signed-in user.
type Identity struct {
	Name  string
	Email string
	Image string
}

// LeadData is the validated output of the team-lead step.
type LeadData struct {
	FullName string
	Profile  models.LeaderProfile
}

type Wizard struct {
	identity Identity
	current  Step

	teamInfo *models.TeamInfo
	teamLead *LeadData
	members  []models.MemberInput
	consent  *models.ConsentRecord

	submitting bool
	submitErr  string
}

// New builds a wizard for the given authenticated user, positioned on
// the first step.
func New(identity Identity) *Wizard {
	return &Wizard{identity: identity, current: StepTeamInfo}
}

func (w *Wizard) Identity() Identity { return w.identity }
func (w *Wizard) Current() Step     { return w.current }

// ---- step completion ----

// SubmitTeamInfo validates step 1 and advances to the team-lead step.
// A non-empty return leaves the wizard where it is.
func (w *Wizard) SubmitTeamInfo(f TeamInfoForm) FieldErrors {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}
	w.teamInfo = &models.TeamInfo{TeamName: f.TeamName, Track: f.Track}
	w.current = StepTeamLead
	return nil
}

// SubmitTeamLead validates step 2 and advances to the members step.
func (w *Wizard) SubmitTeamLead(f TeamLeadForm) FieldErrors {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}
	w.teamLead = &LeadData{
		FullName: f.FullName,
		Profile: models.LeaderProfile{
			Phone:            f.Phone,
			EducationType:    f.EducationType,
			EducationDetails: f.EducationDetails,
		},
	}
	w.current = StepTeamMembers
	return nil
}

// SubmitTeamMembers validates step 3 and advances to the consent step.
// On ErrInvalidMembers the per-entry reasons are left in f.Errors.
func (w *Wizard) SubmitTeamMembers(f *TeamMembersForm) error {
	if len(f.Entries) < minMemberEntries {
		return ErrTooFewMembers
	}
	if len(f.Entries) > maxMemberEntries {
		return ErrTooManyMembers
	}
	if !f.Validate() {
		return ErrInvalidMembers
	}
	w.members = f.inputs()
	w.current = StepConsent
	return nil
}

// SubmitConsent validates step 4 and advances to the summary. All
// three flags must be set; toggling any one off re-blocks progression.
func (w *Wizard) SubmitConsent(f ConsentForm) FieldErrors {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}
	record := f.ConsentRecord
	w.consent = &record
	w.current = StepSummary
	return nil
}

// ---- navigation ----

// Back returns to the immediately preceding step. Data already stored
// for the current or any later step is kept.
func (w *Wizard) Back() {
	if w.current > StepTeamInfo {
		w.current--
	}
}

// Filled reports whether a step already holds validated data.
func (w *Wizard) Filled(s Step) bool {
	switch s {
	case StepTeamInfo:
		return w.teamInfo != nil
	case StepTeamLead:
		return w.teamLead != nil
	case StepTeamMembers:
		return len(w.members) >= minMemberEntries
	case StepConsent:
		return w.consent != nil
	case StepSummary:
		return w.teamInfo != nil && w.teamLead != nil &&
			len(w.members) >= minMemberEntries && w.consent != nil
	}
	return false
}

// CanGo reports whether a step is reachable by direct click: anything
// at or before the current step, or a step completed earlier (so a
// user who navigated backward can jump forward again).
func (w *Wizard) CanGo(s Step) bool {
	return s <= w.current || w.Filled(s)
}

// Go jumps to a reachable step.
func (w *Wizard) Go(s Step) bool {
	if s < StepTeamInfo || s > StepSummary || !w.CanGo(s) {
		return false
	}
	w.current = s
	return true
}

// ---- stored data, for re-populating forms ----

func (w *Wizard) TeamInfo() *models.TeamInfo {
	if w.teamInfo == nil {
		return nil
	}
	v := *w.teamInfo
	return &v
}

func (w *Wizard) TeamLead() *LeadData {
	if w.teamLead == nil {
		return nil
	}
	v := *w.teamLead
	return &v
}

func (w *Wizard) Members() []models.MemberInput {
	out := make([]models.MemberInput, len(w.members))
	copy(out, w.members)
	return out
}

func (w *Wizard) Consent() *models.ConsentRecord {
	if w.consent == nil {
		return nil
	}
	v := *w.consent
	return &v
}

// TeamLeadForm returns the lead step pre-filled from stored data, or
// from the session identity on first visit.
func (w *Wizard) TeamLeadForm() TeamLeadForm {
	if w.teamLead != nil {
		return TeamLeadForm{
			FullName:         w.teamLead.FullName,
			Phone:            w.teamLead.Profile.Phone,
			EducationType:    w.teamLead.Profile.EducationType,
			EducationDetails: w.teamLead.Profile.EducationDetails,
		}
	}
	return TeamLeadForm{
		FullName:         w.identity.Name,
		EducationType:    models.EducationUniversity,
		EducationDetails: models.NewUniversityDetails("", "", ""),
	}
}

// TeamMembersForm returns the members step re-populated from stored
// data, or a fresh form with the minimum entries on first visit.
func (w *Wizard) TeamMembersForm() *TeamMembersForm {
	if len(w.members) == 0 {
		return NewTeamMembersForm()
	}
	f := &TeamMembersForm{Errors: map[string]FieldErrors{}}
	for _, m := range w.members {
		e := newMemberEntry()
		e.Name = m.Name
		e.Phone = m.Phone
		e.EducationType = m.EducationType
		e.EducationDetails = m.EducationDetails
		f.Entries = append(f.Entries, e)
	}
	return f
}

// ---- summary & submission ----

// TeamSize is the head count including the leader, re-derived for the
// summary display.
func (w *Wizard) TeamSize() int {
	return len(w.members) + 1
}

func (w *Wizard) TeamSizeValid() bool {
	n := w.TeamSize()
	return n >= models.MinTeamSize && n <= models.MaxTeamSize
}

func (w *Wizard) Submitting() bool    { return w.submitting }
func (w *Wizard) SubmitError() string { return w.submitErr }

// CanSubmit guards the single submit action on the summary step.
func (w *Wizard) CanSubmit() bool {
	return w.Filled(StepSummary) && w.TeamSizeValid() && !w.submitting
}

// Payload assembles the full submission body from the stored steps.
func (w *Wizard) Payload() (models.CreateTeamInput, error) {
	if !w.Filled(StepSummary) {
		return models.CreateTeamInput{}, ErrIncomplete
	}
	return models.CreateTeamInput{
		TeamName:       w.teamInfo.TeamName,
		Track:          w.teamInfo.Track,
		LeaderFullName: w.teamLead.FullName,
		LeaderProfile:  w.teamLead.Profile,
		Members:        w.Members(),
	}, nil
}

// BeginSubmit flips the in-flight flag; a second call before
// FinishSubmit fails, which is what disables double-submit.
func (w *Wizard) BeginSubmit() error {
	if w.submitting {
		return ErrSubmitting
	}
	if !w.Filled(StepSummary) {
		return ErrIncomplete
	}
	if !w.TeamSizeValid() {
		return ErrTeamSize
	}
	w.submitting = true
	w.submitErr = ""
	return nil
}

// FinishSubmit records the outcome of the network call and returns
// control to the user.
func (w *Wizard) FinishSubmit(err error) {
	w.submitting = false
	if err != nil {
		w.submitErr = err.Error()
	}
}
