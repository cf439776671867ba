// registration/constants.go - fixed event data the landing page,
// emails and the window gate draw from
package registration

import "time"

// Bangkok is the event's reference timezone (UTC+7).
var Bangkok = time.FixedZone("ICT", 7*60*60)

const (
	ChallengeName     = "KU MedAI Innovation Challenge 2026"
	ChallengeHeadline = "Innovate for Health. Empower with AI."
	ContactEmail      = "aiih.sci@ku.th"
	ContactPhone      = "02-562-5555 ext. 647209, 647210"
)

var (
	RegistrationOpens  = time.Date(2026, time.January, 26, 0, 0, 0, 0, Bangkok)
	RegistrationCloses = time.Date(2026, time.February, 7, 23, 59, 59, 0, Bangkok)
	FinalPitchDate     = time.Date(2026, time.March, 7, 0, 0, 0, 0, Bangkok)
)

type TrackInfo struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Focus      string   `json:"focus"`
	Challenges []string `json:"challenges"`
}

var Tracks = []TrackInfo{
	{
		ID:       "agro_medicine",
		Title:    "Agro-medicine",
		Subtitle: "Smart Health for Agriculture",
		Focus:    "Protecting the backbone of our nation—the farmers.",
		Challenges: []string{
			"Preventing health risks from chemicals or farming machinery",
			"Health monitoring systems for remote agricultural workers",
			"Food production safety standards using AI",
		},
	},
	{
		ID:       "bioinnovation",
		Title:    "Bioinnovation",
		Subtitle: "Medical AI & Tech",
		Focus:    "Cutting-edge biology meets digital intelligence.",
		Challenges: []string{
			"AI Diagnostics: Screening tools and image analysis (X-ray/MRI)",
			"Predictive Health: AI models to assess disease risks",
			"Telemedicine: Remote care platforms",
			"Assistive Tech: Smart devices for the elderly or disabled",
		},
	},
}

type Prize struct {
	Placement string `json:"placement"`
	Prize     string `json:"prize"`
	Badge     string `json:"badge"`
}

var Prizes = []Prize{
	{Placement: "Winner", Prize: "30,000 THB", Badge: "🥇"},
	{Placement: "1st Runner Up", Prize: "15,000 THB", Badge: "🥈"},
	{Placement: "2nd Runner Up", Prize: "10,000 THB", Badge: "🥉"},
	{Placement: "Consolation (x2)", Prize: "5,000 THB", Badge: "🎖️"},
}

type TimelineEntry struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

var Timeline = []TimelineEntry{
	{Date: "Jan 26, 2026", Label: "Registration Opens"},
	{Date: "Feb 07, 2026", Label: "Workshop & Mentoring", Description: "Learn the basics of MedAI"},
	{Date: "Feb 09, 2026", Label: "Submission System Opens"},
	{Date: "Mar 05, 2026", Label: "Initial Screening", Description: "Selection of Top Teams"},
	{Date: "Mar 06, 2026", Label: "Finalists Announced"},
	{Date: "Mar 07, 2026", Label: "Demo Day & Pitching", Description: "On-site at Kasetsart University"},
}

type Eligibility struct {
	Who         string `json:"who"`
	TeamSize    string `json:"team_size"`
	Composition string `json:"composition"`
	Output      string `json:"output"`
}

var EligibilityRules = Eligibility{
	Who:         "High School Students (M. 4-6) & University Students (Undergrad, All Faculties)",
	TeamSize:    "3 - 5 members per team",
	Composition: "We strongly recommend mixing skills! (e.g., 1 Developer + 1 Biology/Health Student + 1 Business/Creative)",
	Output:      "Teams must produce a concept/prototype relevant to the categories",
}
