// registration/gate.go - the time window during which new team
// submissions are accepted
package registration

import (
	"os"
	"time"
)

// Phase drives the landing page call-to-action: one label before the
// window opens, the live action inside it, closed after.
type Phase string

const (
	PhaseComingSoon Phase = "coming_soon"
	PhaseOpen       Phase = "open"
	PhaseClosed     Phase = "closed"
)

// Gate compares the current time against the configured open/close
// timestamps. It is read-only: status is computed fresh per request and
// never persisted.
type Gate struct {
	OpensAt  time.Time
	ClosesAt time.Time
	Now      func() time.Time
}

type Status struct {
	IsAvailable bool      `json:"isAvailable"`
	IsOpened    bool      `json:"isOpened"`
	IsClosed    bool      `json:"isClosed"`
	Phase       Phase     `json:"phase"`
	OpensAt     time.Time `json:"registrationOpenDate"`
	ClosesAt    time.Time `json:"registrationCloseDate"`
	Now         time.Time `json:"now"`
}

// NewGate builds the gate from the challenge constants, with
// REGISTRATION_OPENS_AT / REGISTRATION_CLOSES_AT (RFC 3339) overrides
// for staging environments.
func NewGate() Gate {
	opens := RegistrationOpens
	closes := RegistrationCloses
	if v := os.Getenv("REGISTRATION_OPENS_AT"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			opens = t
		}
	}
	if v := os.Getenv("REGISTRATION_CLOSES_AT"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			closes = t
		}
	}
	return Gate{OpensAt: opens, ClosesAt: closes, Now: time.Now}
}

// Status reports the window state at the gate's current time.
// IsClosed is independent of IsAvailable: a window that never opened is
// not reported as closed.
func (g Gate) Status() Status {
	now := g.Now()
	opened := !now.Before(g.OpensAt)
	closed := now.After(g.ClosesAt)

	phase := PhaseComingSoon
	switch {
	case closed:
		phase = PhaseClosed
	case opened:
		phase = PhaseOpen
	}

	return Status{
		IsAvailable: opened && !closed,
		IsOpened:    opened,
		IsClosed:    closed,
		Phase:       phase,
		OpensAt:     g.OpensAt,
		ClosesAt:    g.ClosesAt,
		Now:         now,
	}
}
